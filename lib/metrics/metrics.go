package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kwartel_frames_rendered_total",
		Help: "Total number of frames presented to the window",
	})
	ShaderRebuilds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kwartel_shader_rebuilds_total",
		Help: "Total number of shader program rebuilds triggered by file watches",
	})
	ShaderRebuildFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kwartel_shader_rebuild_failures_total",
		Help: "Total number of shader program rebuilds that produced diagnostics",
	})
)

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
