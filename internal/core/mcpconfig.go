package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tailscale/hujson"
	"github.com/tidwall/gjson"
)

// mcpServersKey is the top-level JSON key holding service entries.
const mcpServersKey = "mcpServers"

// ErrAlreadyExists is returned when a service entry is already configured.
var ErrAlreadyExists = errors.New("entry already exists")

// AddServiceEntry inserts one service entry into the MCP config file at
// path, creating the file if needed. The edit goes through a JWCC AST so
// comments and formatting in a hand-edited config survive. With force the
// entry is replaced when already present; otherwise ErrAlreadyExists.
func AddServiceEntry(path string, svc ServiceDef, home string, force bool) error {
	content, err := readConfigFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if content == "" {
		content = "{}"
	}

	root, err := hujson.Parse([]byte(content))
	if err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	entryPtr := "/" + jsonPointerEscape(mcpServersKey) + "/" + jsonPointerEscape(svc.Name)
	op := "add"
	if root.Find(entryPtr) != nil {
		if !force {
			return ErrAlreadyExists
		}
		op = "replace"
	}

	// Ensure the top-level servers object exists.
	topKeyPtr := "/" + jsonPointerEscape(mcpServersKey)
	if root.Find(topKeyPtr) == nil {
		topKeyPatch := fmt.Sprintf(`[{"op":"add","path":%q,"value":{}}]`, topKeyPtr)
		if err := root.Patch([]byte(topKeyPatch)); err != nil {
			return fmt.Errorf("creating config key %q: %w", mcpServersKey, err)
		}
	}

	patch := fmt.Sprintf(`[{"op":%q,"path":%q,"value":%s}]`, op, entryPtr, serviceEntryJSON(svc, home))
	if err := root.Patch([]byte(patch)); err != nil {
		return fmt.Errorf("writing service entry: %w", err)
	}

	return writeConfigFile(path, string(finalizeConfig(&root)))
}

// RemoveServiceEntry deletes a service entry from the config file. Returns
// false when the file or the entry does not exist.
func RemoveServiceEntry(path string, name string) (bool, error) {
	content, err := readConfigFile(path)
	if err != nil {
		return false, fmt.Errorf("reading config: %w", err)
	}
	if content == "" {
		return false, nil
	}

	root, err := hujson.Parse([]byte(content))
	if err != nil {
		return false, fmt.Errorf("parsing config: %w", err)
	}

	entryPtr := "/" + jsonPointerEscape(mcpServersKey) + "/" + jsonPointerEscape(name)
	if root.Find(entryPtr) == nil {
		return false, nil
	}

	patch := fmt.Sprintf(`[{"op":"remove","path":%q}]`, entryPtr)
	if err := root.Patch([]byte(patch)); err != nil {
		return false, fmt.Errorf("removing service entry: %w", err)
	}

	if err := writeConfigFile(path, string(finalizeConfig(&root))); err != nil {
		return false, err
	}
	return true, nil
}

// ConfiguredServices returns the service names present in the config file,
// sorted. A missing file yields an empty list.
func ConfiguredServices(path string) ([]string, error) {
	content, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if content == "" {
		return nil, nil
	}

	// The file may carry comments; standardize before querying.
	std, err := hujson.Standardize([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	var names []string
	gjson.GetBytes(std, mcpServersKey).ForEach(func(key, _ gjson.Result) bool {
		names = append(names, key.String())
		return true
	})
	sort.Strings(names)
	return names, nil
}

// serviceEntryJSON builds the config value for one service, substituting the
// home-directory placeholder inside string values.
func serviceEntryJSON(svc ServiceDef, home string) string {
	args := make([]string, len(svc.Args))
	for i, a := range svc.Args {
		args[i] = strings.ReplaceAll(a, HomePlaceholder, home)
	}

	m := map[string]interface{}{
		"command": svc.Command,
		"args":    args,
	}
	if len(svc.Env) > 0 {
		env := make(map[string]string, len(svc.Env))
		for k, v := range svc.Env {
			env[k] = strings.ReplaceAll(v, HomePlaceholder, home)
		}
		m["env"] = env
	}

	data, _ := json.Marshal(m)
	return string(data)
}

// finalizeConfig formats the JWCC AST and produces the output bytes.
// Comments are kept: a user's annotated config stays annotated.
func finalizeConfig(root *hujson.Value) []byte {
	root.Format()
	removeTrailingCommas(root)
	return root.Pack()
}

// jsonPointerEscape escapes a string for use as a JSON Pointer token (RFC 6901).
func jsonPointerEscape(s string) string {
	result := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '~':
			result = append(result, '~', '0')
		case '/':
			result = append(result, '~', '1')
		default:
			result = append(result, s[i])
		}
	}
	return string(result)
}

// removeTrailingCommas walks the JWCC AST and removes trailing commas.
func removeTrailingCommas(v *hujson.Value) {
	switch vv := v.Value.(type) {
	case *hujson.Object:
		for i := range vv.Members {
			removeTrailingCommas(&vv.Members[i].Name)
			removeTrailingCommas(&vv.Members[i].Value)
		}
		if len(vv.Members) > 0 {
			vv.Members[len(vv.Members)-1].Value.AfterExtra = nil
		}
	case *hujson.Array:
		for i := range vv.Elements {
			removeTrailingCommas(&vv.Elements[i])
		}
		if len(vv.Elements) > 0 {
			vv.Elements[len(vv.Elements)-1].AfterExtra = nil
		}
	}
}
