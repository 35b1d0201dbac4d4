package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fosdem/kwartel/lib/config"
	"github.com/fosdem/kwartel/lib/viewer"
)

func testApi() (*Api, *viewer.Viewer) {
	v := viewer.New(config.Default())
	return New(&config.ApiCfg{Bind: "127.0.0.1:0"}, v), v
}

func TestGetStats(t *testing.T) {
	a, v := testApi()
	v.Stats.Frame(16 * time.Millisecond)
	v.Stats.Frame(16 * time.Millisecond)

	rec := httptest.NewRecorder()
	a.getStats(rec, httptest.NewRequest("GET", "/api/stats", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		FramesTotal uint64 `json:"frames_total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not json: %s", err)
	}
	if body.FramesTotal != 2 {
		t.Errorf("frames_total = %d, want 2", body.FramesTotal)
	}
}

func TestGetConfig(t *testing.T) {
	a, _ := testApi()

	rec := httptest.NewRecorder()
	a.getConfig(rec, httptest.NewRequest("GET", "/api/config", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body Config
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not json: %s", err)
	}
	if body.Width != 640 || body.Height != 480 {
		t.Errorf("size = %dx%d, want 640x480", body.Width, body.Height)
	}
	if body.Shaders != "built-in" {
		t.Errorf("shaders = %q, want built-in", body.Shaders)
	}
}

func TestKillRequestsShutdown(t *testing.T) {
	a, v := testApi()

	rec := httptest.NewRecorder()
	a.kill(rec, httptest.NewRequest("POST", "/api/kill", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !v.ShutdownRequested {
		t.Error("kill did not request a shutdown")
	}
}
