package window

import (
	"fmt"

	"github.com/fosdem/kwartel/lib/config"
	"github.com/fosdem/kwartel/lib/log"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window wraps the GLFW window plus the input state shared with the render
// loop. All methods must be called from the thread that owns the GL context.
type Window struct {
	Glfw  *glfw.Window
	Input *InputState
}

// New initialises GLFW and creates a window with a current GL context. The
// key callback is installed here, so after New the only input behaviour left
// to the caller is polling.
func New(cfg *config.WindowCfg, input *InputState) (*Window, error) {
	logger := log.For("window")
	logger.Debug("Initializing window")

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	if cfg.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("could not create window: %w", err)
	}

	win.MakeContextCurrent()

	if cfg.Vsync == nil || *cfg.Vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{Glfw: win, Input: input}
	win.SetKeyCallback(w.keyCallback)

	logger.Info(fmt.Sprintf("Created %dx%d window %q", cfg.Width, cfg.Height, cfg.Title))
	return w, nil
}

func (w *Window) keyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	w.Input.Note(key, action)
	if closeKey(key, action) {
		win.SetShouldClose(true)
	}
}

func (w *Window) ShouldClose() bool {
	return w.Glfw.ShouldClose()
}

// FramebufferSize returns the drawable size in pixels, which differs from
// the window size under display scaling.
func (w *Window) FramebufferSize() (int, int) {
	return w.Glfw.GetFramebufferSize()
}

func (w *Window) SwapBuffers() {
	w.Glfw.SwapBuffers()
}

func (w *Window) Destroy() {
	w.Glfw.Destroy()
}

// Poll processes pending window events, firing the installed callbacks.
func Poll() {
	glfw.PollEvents()
}

// Terminate shuts GLFW down. Must be the last window call of the process.
func Terminate() {
	glfw.Terminate()
}
