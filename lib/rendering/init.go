package rendering

import (
	"fmt"

	"github.com/fosdem/kwartel/lib/log"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Init loads the GL function pointers. Requires a current context.
func Init() error {
	err := gl.Init()
	if err != nil {
		return fmt.Errorf("could not initialise OpenGL context: %w", err)
	}

	vendor := gl.GoStr(gl.GetString(gl.VENDOR))
	renderer := gl.GoStr(gl.GetString(gl.RENDERER))
	version := gl.GoStr(gl.GetString(gl.VERSION))
	log.For("rendering").Info(fmt.Sprintf("OpenGL version %s / %s / %s", vendor, renderer, version))

	return nil
}
