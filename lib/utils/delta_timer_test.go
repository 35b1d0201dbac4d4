package utils

import (
	"testing"
	"time"
)

func TestDeltaTimerFirstCallIsZero(t *testing.T) {
	var d DeltaTimer
	if dt := d.Next(); dt != 0 {
		t.Errorf("first Next() = %v, want 0", dt)
	}
}

func TestDeltaTimerMeasuresElapsed(t *testing.T) {
	var d DeltaTimer
	d.Next()
	time.Sleep(10 * time.Millisecond)
	dt := d.Next()
	if dt < 5*time.Millisecond {
		t.Errorf("Next() = %v, want at least 5ms", dt)
	}
	if dt > time.Second {
		t.Errorf("Next() = %v, unreasonably large", dt)
	}
}
