package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shell    string
		contains []string
	}{
		{
			shell: "bash",
			contains: []string{
				"_calckit_completions",
				"complete -F _calckit_completions calckit",
				"--theme",
				`compgen -W "dark light orange none"`,
				`compgen -W "bash zsh fish powershell"`,
				"--bench-size",
			},
		},
		{
			shell: "zsh",
			contains: []string{
				"#compdef calckit",
				"_arguments",
				"(-i --repl)",
				"(dark light orange none)",
				"[Time limit for benchmark and TUI sessions]",
			},
		},
		{
			shell: "fish",
			contains: []string{
				"complete -c calckit -f",
				"-l theme",
				"-xa 'dark light orange none'",
				"# Benchmark tuning",
				"-s q -l quiet",
			},
		},
		{
			shell: "powershell",
			contains: []string{
				"Register-ArgumentCompleter -CommandName 'calckit'",
				"'--theme'",
				"'dark', 'light', 'orange', 'none'",
				"@{Name = '--no-color'",
			},
		},
		{
			shell:    "ps",
			contains: []string{"Register-ArgumentCompleter"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q) returned error: %v", tt.shell, err)
			}
			output := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(output, s) {
					t.Errorf("Expected %s completion to contain %q, but got:\n%s", tt.shell, s, output)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	err := GenerateCompletion(io.Discard, "tcsh")
	if err == nil {
		t.Fatal("expected an error for an unsupported shell, got nil")
	}
	if !strings.Contains(err.Error(), "unsupported shell") {
		t.Errorf("error = %v, want it to name the unsupported shell", err)
	}
}
