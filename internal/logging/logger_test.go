package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestFieldHelpers(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		field     Field
		wantKey   string
		wantValue any
	}{
		{"String", String("op", "stats.Mean"), "op", "stats.Mean"},
		{"Int", Int("terms", 15), "terms", 15},
		{"Uint64", Uint64("n", 12200160415121876738), "n", uint64(12200160415121876738)},
		{"Float64", Float64("mean", 26.75), "mean", 26.75},
		{"Err nil keeps the error key", Err(nil), "error", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.field.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.wantKey)
			}
			if tt.field.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.wantValue)
			}
		})
	}

	t.Run("Err wraps the error itself", func(t *testing.T) {
		t.Parallel()
		failure := errors.New("empty dataset")
		f := Err(failure)
		if f.Key != "error" || f.Value != failure {
			t.Errorf("Err() = %+v, want key %q and the original error", f, "error")
		}
	})
}

func TestNewLogger_TagsComponent(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewLogger(&buf, "repl")

	logger.Info("session started")

	output := buf.String()
	for _, want := range []string{"repl", "session started", "info"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

func TestNewDefaultLogger(t *testing.T) {
	t.Parallel()
	if NewDefaultLogger() == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}

func TestZerologAdapter_Info(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		msg      string
		fields   []Field
		contains []string
	}{
		{
			name:     "no fields",
			msg:      "demo finished",
			contains: []string{"demo finished", "info"},
		},
		{
			name:     "with fields",
			msg:      "sequence generated",
			fields:   []Field{Int("terms", 15), Uint64("last", 377)},
			contains: []string{"sequence generated", "15", "377"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			logger.Info(tt.msg, tt.fields...)

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

func TestZerologAdapter_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		fields   []Field
		contains []string
	}{
		{
			name:     "with error",
			err:      errors.New("dataset must not be empty"),
			contains: []string{"operation failed", "dataset must not be empty", "error"},
		},
		{
			name:     "nil error still logs at error level",
			err:      nil,
			contains: []string{"operation failed", "error"},
		},
		{
			name:     "error plus fields",
			err:      errors.New("division by zero"),
			fields:   []Field{String("op", "calc.Divide"), Float64("a", 1)},
			contains: []string{"division by zero", "calc.Divide"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			logger.Error("operation failed", tt.err, tt.fields...)

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

func TestZerologAdapter_Debug(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	zl := zerolog.New(&buf).Level(zerolog.DebugLevel)
	logger := NewZerologAdapter(zl)

	logger.Debug("probing op", String("op", "aggregate.Summarize"))

	output := buf.String()
	if !strings.Contains(output, "probing op") || !strings.Contains(output, "debug") {
		t.Errorf("Debug output missing message or level, got: %s", output)
	}
}

func TestZerologAdapter_PrintfPrintln(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Printf("computed %d terms in %s", 93, "12µs")
	logger.Println("done")

	output := buf.String()
	if !strings.Contains(output, "computed 93 terms in 12µs") {
		t.Errorf("Printf should format message, got: %s", output)
	}
	if !strings.Contains(output, "done") {
		t.Errorf("Println should include arguments, got: %s", output)
	}
}

func TestZerologAdapter_FieldTypes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string", Field{Key: "mode", Value: "bench"}, "bench"},
		{"int", Field{Key: "count", Value: 11}, "11"},
		{"int64", Field{Key: "nanos", Value: int64(9223372036854775807)}, "9223372036854775807"},
		{"uint64", Field{Key: "term", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64", Field{Key: "sigma", Value: 27.93}, "27.93"},
		{"error", Field{Key: "cause", Value: errors.New("bad modulus")}, "bad modulus"},
		{"bool", Field{Key: "quiet", Value: true}, "true"},
		{"fallback interface", Field{Key: "summary", Value: struct{ Sum float64 }{Sum: 17.3}}, "17.3"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			logger.Info("typed", tt.field)

			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("output should contain %q, got: %s", tt.contains, buf.String())
			}
		})
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		log      func(adapter *StdLoggerAdapter)
		contains []string
	}{
		{
			name:     "Info prefixes and renders fields",
			log:      func(a *StdLoggerAdapter) { a.Info("freq counted", Int("tokens", 11)) },
			contains: []string{"[INFO]", "freq counted", "tokens", "11"},
		},
		{
			name:     "Error appends the error as a field",
			log:      func(a *StdLoggerAdapter) { a.Error("filter failed", errors.New("negative k")) },
			contains: []string{"[ERROR]", "filter failed", "negative k"},
		},
		{
			name:     "Debug prefixes",
			log:      func(a *StdLoggerAdapter) { a.Debug("entering repl") },
			contains: []string{"[DEBUG]", "entering repl"},
		},
		{
			name:     "Printf formats without a prefix",
			log:      func(a *StdLoggerAdapter) { a.Printf("median is %.1f", 17.5) },
			contains: []string{"median is 17.5"},
		},
		{
			name:     "Println joins arguments",
			log:      func(a *StdLoggerAdapter) { a.Println("bye", "now") },
			contains: []string{"bye", "now"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			adapter := NewStdLoggerAdapter(log.New(&buf, "", 0))

			tt.log(adapter)

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}
