package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"long flag", []string{"--version"}, true},
		{"single dash", []string{"-version"}, true},
		{"short flag", []string{"-V"}, true},
		{"after other flags", []string{"-q", "--version"}, true},
		{"absent", []string{"-repl", "-q"}, false},
		{"lowercase v is verbose", []string{"-v"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasVersionFlag(tt.args); got != tt.want {
				t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf)

	output := buf.String()
	if !strings.Contains(output, "calckit") {
		t.Errorf("version output missing program name: %q", output)
	}
	if !strings.Contains(output, Version) {
		t.Errorf("version output missing version %q: %q", Version, output)
	}
}
