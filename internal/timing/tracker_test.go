package timing

import (
	"testing"
	"time"
)

func TestTracker(t *testing.T) {
	tt := NewTracker()
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tt.now = func() time.Time { return clock }

	stop := tt.Start("load")
	clock = clock.Add(2 * time.Second)
	if got := stop(); got != 2*time.Second {
		t.Fatalf("stop() = %v, want 2s", got)
	}

	stop = tt.Start("load")
	clock = clock.Add(4 * time.Second)
	stop()

	if got := tt.Average("load"); got != 3*time.Second {
		t.Fatalf("Average = %v, want 3s", got)
	}
	if got := len(tt.Timings("load")); got != 2 {
		t.Fatalf("Timings len = %d, want 2", got)
	}
	if tt.Average("save") != 0 || tt.Timings("save") != nil {
		t.Fatal("unknown operation should have no timings")
	}

	tt.Reset("load")
	if tt.Timings("load") != nil {
		t.Fatal("Reset should forget the operation")
	}
}
