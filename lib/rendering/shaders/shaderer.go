package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"text/template"

	"github.com/fosdem/kwartel/lib/config"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed *.frag *.vert
var templateDir embed.FS

type Shaderer struct {
	templates *template.Template
}

func NewShaderer() (*Shaderer, error) {
	s := &Shaderer{}

	var err error

	s.templates, err = template.ParseFS(templateDir, "*.frag", "*.vert")

	return s, err
}

// ShaderData contains stuff that gets passed to the shader templates
type ShaderData struct {
	QuadColour mgl32.Vec4
}

func (s *Shaderer) GetShaderSource(name string, data *ShaderData) (string, error) {
	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %s", err)
	}

	return b.String(), nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		names = append(names, t.Name())
	}
	return names
}

// ShaderSources resolves the vertex and fragment shader sources: rendered
// from the embedded templates, or read from the override files when the
// config has a shaders section.
func ShaderSources(data *ShaderData, override *config.ShaderCfg) (string, string, error) {
	if override != nil {
		vert, err := os.ReadFile(string(override.Vertex))
		if err != nil {
			return "", "", fmt.Errorf("could not read vertex shader: %w", err)
		}
		frag, err := os.ReadFile(string(override.Fragment))
		if err != nil {
			return "", "", fmt.Errorf("could not read fragment shader: %w", err)
		}
		return string(vert), string(frag), nil
	}

	shaderer, err := NewShaderer()
	if err != nil {
		return "", "", fmt.Errorf("could not get shaders: %w", err)
	}

	vert, err := shaderer.GetShaderSource("quad.vert", data)
	if err != nil {
		return "", "", fmt.Errorf("could not get vertex shader: %w", err)
	}

	frag, err := shaderer.GetShaderSource("quad.frag", data)
	if err != nil {
		return "", "", fmt.Errorf("could not get fragment shader: %w", err)
	}

	return vert, frag, nil
}
