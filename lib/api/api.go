package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/pprof"
	"time"

	"github.com/fosdem/kwartel/lib/config"
	"github.com/fosdem/kwartel/lib/log"
	"github.com/fosdem/kwartel/lib/metrics"
	"github.com/fosdem/kwartel/lib/viewer"
	"github.com/gorilla/websocket"
)

// Api exposes the viewer's stats and a couple of controls over HTTP. It
// only exists when the config has an api section.
type Api struct {
	srv    http.Server
	mux    *http.ServeMux
	cfg    *config.ApiCfg
	viewer *viewer.Viewer

	wsClients map[*websocket.Conn]bool
}

func New(cfg *config.ApiCfg, v *viewer.Viewer) *Api {
	a := &Api{}
	a.cfg = cfg
	a.mux = http.NewServeMux()
	a.viewer = v
	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux
	a.wsClients = make(map[*websocket.Conn]bool)
	return a
}

func (a *Api) Serve() error {
	if a.cfg.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("/api/kill", a.kill)
	a.mux.HandleFunc("/api/stats", a.getStats)
	a.mux.HandleFunc("/api/config", a.getConfig)
	a.mux.HandleFunc("/api/ws", a.handleWebsocket)
	a.mux.Handle("/metrics", metrics.Handler())
	return a.srv.ListenAndServe()
}

func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

func (a *Api) kill(w http.ResponseWriter, _ *http.Request) {
	log.For("api").Info("shutting down as per api request")
	a.viewer.RequestShutdown()
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		log.For("api").Error("could not write response: " + err.Error())
		return
	}
}

func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.viewer.Stats)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode stats: %s", err), http.StatusInternalServerError)
		return
	}
}

// Config is the subset of the viewer config the api reports back.
type Config struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Title      string `json:"title"`
	Fullscreen bool   `json:"fullscreen"`
	Shaders    string `json:"shaders"`
}

func (a *Api) getConfig(w http.ResponseWriter, _ *http.Request) {
	cfg := a.viewer.Cfg
	result := &Config{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		Fullscreen: cfg.Window.Fullscreen,
		Shaders:    "built-in",
	}
	if cfg.Shaders != nil {
		result.Shaders = fmt.Sprintf("%s + %s", cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	}
	encoder := json.NewEncoder(w)
	err := encoder.Encode(result)
	if err != nil {
		http.Error(w, fmt.Sprintf("couldn't encode config: %s", err), http.StatusInternalServerError)
		return
	}
}

// ServeInBackground starts the api server if the config asks for one.
func ServeInBackground(v *viewer.Viewer, cfg *config.ApiCfg) *Api {
	var theApi *Api
	if cfg != nil {
		theApi = New(cfg, v)

		log.For("api").Info("starting web server on " + cfg.Bind)
		go func() {
			err := theApi.Serve()
			if err != nil {
				log.For("api").Error("web server died: " + err.Error())
			}
		}()
	}
	return theApi
}
