package viewer

import (
	"fmt"
	"sync/atomic"

	"github.com/fosdem/kwartel/lib/config"
	"github.com/fosdem/kwartel/lib/log"
	"github.com/fosdem/kwartel/lib/metrics"
	"github.com/fosdem/kwartel/lib/rendering"
	"github.com/fosdem/kwartel/lib/rendering/shaders"
	"github.com/fosdem/kwartel/lib/stats"
	"github.com/fosdem/kwartel/lib/utils"
	"github.com/fosdem/kwartel/lib/window"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Viewer owns the window, the quad and the shader program, and runs the
// render loop until the window closes or a shutdown is requested.
type Viewer struct {
	Cfg   *config.Config
	Stats *stats.Stats

	// ShutdownRequested ends the loop after the current frame. Written
	// from the api, read on the render thread.
	ShutdownRequested bool

	rebuildRequested atomic.Bool

	win     *window.Window
	quad    *rendering.Quad
	program uint32
}

func New(cfg *config.Config) *Viewer {
	return &Viewer{
		Cfg:   cfg,
		Stats: stats.New(),
	}
}

func (v *Viewer) RequestShutdown() {
	v.ShutdownRequested = true
}

// RequestShaderRebuild asks the render loop to rebuild the shader program
// between frames. Safe to call from any goroutine.
func (v *Viewer) RequestShaderRebuild() {
	v.rebuildRequested.Store(true)
}

// Run creates the window and the GPU resources and loops until closed. It
// must be called on the locked main thread.
func (v *Viewer) Run() error {
	logger := log.For("viewer")

	input := &window.InputState{}
	win, err := window.New(&v.Cfg.Window, input)
	if err != nil {
		return fmt.Errorf("could not create window: %w", err)
	}
	v.win = win

	err = rendering.Init()
	if err != nil {
		return fmt.Errorf("could not initialise renderer: %w", err)
	}

	shaderData := &shaders.ShaderData{QuadColour: utils.ColourVec4(v.Cfg.QuadColour)}
	v.program, err = shaders.BuildGLProgram(shaderData, v.Cfg.Shaders)
	if err != nil {
		// the program handle stays usable as a bind target; drawing with
		// it just produces garbage, which is survivable for a demo
		logger.Warn("shader diagnostics: " + err.Error())
	}

	v.quad = rendering.UploadQuad()

	if v.Cfg.Shaders != nil && v.Cfg.Shaders.Watch {
		go shaders.Watch(v.Cfg.Shaders, v.RequestShaderRebuild)
	}

	clear := utils.ColourVec4(v.Cfg.ClearColour)
	gl.ClearColor(clear.X(), clear.Y(), clear.Z(), clear.W())

	var deltaTimer utils.DeltaTimer
	for !v.ShutdownRequested && !win.ShouldClose() {
		if v.rebuildRequested.Swap(false) {
			v.rebuildProgram(shaderData)
		}

		width, height := win.FramebufferSize()
		gl.Viewport(0, 0, int32(width), int32(height))
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.UseProgram(v.program)
		v.quad.Draw()

		win.SwapBuffers()
		window.Poll()

		v.Stats.Frame(deltaTimer.Next())
		metrics.FramesRendered.Inc()
	}

	v.teardown()
	return nil
}

// rebuildProgram swaps in a freshly built program, keeping the old one when
// the new build has diagnostics.
func (v *Viewer) rebuildProgram(shaderData *shaders.ShaderData) {
	logger := log.For("viewer")
	metrics.ShaderRebuilds.Inc()
	v.Stats.ShaderRebuilds++

	program, err := shaders.BuildGLProgram(shaderData, v.Cfg.Shaders)
	if err != nil {
		metrics.ShaderRebuildFailures.Inc()
		logger.Warn("shader rebuild failed, keeping previous program: " + err.Error())
		gl.DeleteProgram(program)
		return
	}

	gl.DeleteProgram(v.program)
	v.program = program
	logger.Info("shader program rebuilt")
}

func (v *Viewer) teardown() {
	v.win.Destroy()

	// optional cleanup, the context goes away with the process anyway
	v.quad.Release()
	gl.DeleteProgram(v.program)

	window.Terminate()
}
