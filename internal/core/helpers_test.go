package core

import (
	"testing"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"code-reviewer", "code-reviewer"},
		{"Code Reviewer", "code-reviewer"},
		{"my_bundle", "my-bundle"},
		{"My.Bundle.v2", "my-bundle-v2"},
		{"---leading-trailing---", "leading-trailing"},
		{"../../escaped", "escaped"},
		{"..", "unnamed-bundle"},
		{"", "unnamed-bundle"},
		{"UPPERCASE", "uppercase"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := sanitizeName(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
