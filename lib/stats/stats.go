package stats

import (
	"time"
)

// Stats is the per-frame bookkeeping the render loop updates and the api
// reads. Updated once per frame, on the render thread.
type Stats struct {
	FramesTotal    uint64  `json:"frames_total"`
	FPS            uint64  `json:"fps"`
	FrameMs        float64 `json:"frame_ms"`
	Uptime         float64 `json:"uptime"`
	ShaderRebuilds uint64  `json:"shader_rebuilds"`
	WsClients      int     `json:"ws_clients"`

	frameCounter uint64
	frameTimer   time.Time
	start        time.Time
}

func New() *Stats {
	s := &Stats{}
	s.start = time.Now()
	s.frameTimer = time.Now()
	return s
}

// Frame records one presented frame and the time it took, refreshing the
// FPS figure once per second.
func (s *Stats) Frame(dt time.Duration) {
	s.FramesTotal++
	s.FrameMs = float64(dt.Nanoseconds()) / 1e6
	s.frameCounter++
	if time.Since(s.frameTimer) > 1*time.Second {
		s.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = time.Now()
	}

	s.Uptime = float64(time.Since(s.start).Nanoseconds()) / 1e9
}
