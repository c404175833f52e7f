package metrics

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

// TestNewRecorder verifies recorder construction and registry isolation.
func TestNewRecorder(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	if r == nil {
		t.Fatal("NewRecorder returned nil")
	}

	// Private registries must not collide; a second recorder would panic
	// on duplicate registration if the registry were shared.
	defer func() {
		if rec := recover(); rec != nil {
			t.Errorf("second NewRecorder panicked: %v", rec)
		}
	}()
	_ = NewRecorder()
}

// TestRecorder_Observe verifies counter bookkeeping for successes and failures.
func TestRecorder_Observe(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.Observe("fib", time.Millisecond, nil)
	r.Observe("fib", time.Millisecond, nil)
	r.Observe("stats", 2*time.Millisecond, errors.New("empty dataset"))

	totals := r.Totals()
	if totals.Operations != 3 {
		t.Errorf("Operations = %d, want 3", totals.Operations)
	}
	if totals.Failures != 1 {
		t.Errorf("Failures = %d, want 1", totals.Failures)
	}
}

// TestRecorder_Render verifies the text exposition output.
func TestRecorder_Render(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.Observe("fib", 500*time.Microsecond, nil)
	r.Observe("reverse", time.Microsecond, errors.New("boom"))
	r.SessionStarted()

	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	body := buf.String()

	t.Run("Contains operation counter", func(t *testing.T) {
		if !strings.Contains(body, `calckit_operations_total{op="fib"} 1`) {
			t.Errorf("output missing fib operation counter:\n%s", body)
		}
	})

	t.Run("Contains error counter", func(t *testing.T) {
		if !strings.Contains(body, `calckit_errors_total{op="reverse"} 1`) {
			t.Errorf("output missing reverse error counter:\n%s", body)
		}
	})

	t.Run("Contains session gauge", func(t *testing.T) {
		if !strings.Contains(body, "calckit_session_active 1") {
			t.Errorf("output missing active session gauge:\n%s", body)
		}
	})

	t.Run("Contains duration histogram", func(t *testing.T) {
		if !strings.Contains(body, "calckit_operation_duration_seconds") {
			t.Error("output missing duration histogram")
		}
	})

	t.Run("Contains Go runtime metrics", func(t *testing.T) {
		if !strings.Contains(body, "go_") {
			t.Error("output should contain Go runtime metrics")
		}
	})
}

// TestRecorder_SessionGauge verifies the gauge moves both ways.
func TestRecorder_SessionGauge(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.SessionStarted()
	r.SessionEnded()

	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(buf.String(), "calckit_session_active 0") {
		t.Error("gauge should return to 0 after the session ends")
	}
}

// TestRecorder_ConcurrentObserve exercises the recorder under contention.
// Run with -race.
func TestRecorder_ConcurrentObserve(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	const goroutines = 8
	const perGoroutine = 250

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				var err error
				if j%5 == 0 {
					err = errors.New("probe failure")
				}
				r.Observe("agg", time.Microsecond, err)
			}
		}(i)
	}
	wg.Wait()

	totals := r.Totals()
	if want := uint64(goroutines * perGoroutine); totals.Operations != want {
		t.Errorf("Operations = %d, want %d", totals.Operations, want)
	}
	if want := uint64(goroutines * perGoroutine / 5); totals.Failures != want {
		t.Errorf("Failures = %d, want %d", totals.Failures, want)
	}
}
