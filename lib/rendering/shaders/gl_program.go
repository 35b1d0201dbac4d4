package shaders

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fosdem/kwartel/lib/config"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// BuildGLProgram compiles and links the shader pair into a program object.
// A compile or link failure is returned as an error, but the program handle
// is still valid and usable as a bind target; the caller decides whether a
// broken program is fatal.
func BuildGLProgram(shaderData *ShaderData, override *config.ShaderCfg) (uint32, error) {
	vertexShader, fragmentShader, err := ShaderSources(shaderData, override)
	if err != nil {
		return 0, err
	}

	return newProgram(vertexShader, fragmentShader)
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	var errs []error

	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		errs = append(errs, err)
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		errs = append(errs, err)
	}

	program := gl.CreateProgram()

	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		errs = append(errs, fmt.Errorf("failed to link program: %v", programInfoLog(program)))
	}

	// the shader objects are absorbed into the linked program
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, errors.Join(errs...)
}

func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	// gl.Strs wants null-terminated input
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		clog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(clog))

		return shader, fmt.Errorf("failed to compile %s shader: %v", stage, clog)
	}

	return shader, nil
}

func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

	logmsg := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logmsg))

	return logmsg
}
