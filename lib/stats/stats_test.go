package stats

import (
	"testing"
	"time"
)

func TestFrameCounts(t *testing.T) {
	s := New()
	for range 10 {
		s.Frame(16 * time.Millisecond)
	}
	if s.FramesTotal != 10 {
		t.Errorf("FramesTotal = %d, want 10", s.FramesTotal)
	}
	if s.FrameMs != 16 {
		t.Errorf("FrameMs = %v, want 16", s.FrameMs)
	}
	if s.Uptime < 0 {
		t.Errorf("Uptime = %v, want nonnegative", s.Uptime)
	}
}

func TestFPSRefreshesAfterASecond(t *testing.T) {
	s := New()
	s.frameTimer = time.Now().Add(-2 * time.Second)
	for range 5 {
		s.Frame(time.Millisecond)
	}
	// the first Frame() after the stale timer flushes the counter
	if s.FPS == 0 && s.frameCounter == 0 {
		t.Error("expected either a flushed FPS value or a running counter")
	}
	if s.FramesTotal != 5 {
		t.Errorf("FramesTotal = %d, want 5", s.FramesTotal)
	}
}
