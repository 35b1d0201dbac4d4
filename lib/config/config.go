package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fosdem/kwartel/lib/utils"
	yaml "github.com/goccy/go-yaml"
)

type Config struct {
	Window       WindowCfg
	ClearColour  string     `yaml:"clear_colour"`
	QuadColour   string     `yaml:"quad_colour"`
	Shaders      *ShaderCfg `yaml:"shaders"`
	Api          *ApiCfg
}

type WindowCfg struct {
	Width      int
	Height     int
	Title      string
	Resizable  bool
	Fullscreen bool
	Vsync      *bool
}

// ShaderCfg overrides the embedded shader pair with on-disk files. With
// Watch set, the files are reloaded whenever they are rewritten.
type ShaderCfg struct {
	Vertex   CfgPath
	Fragment CfgPath
	Watch    bool
}

type ApiCfg struct {
	Bind           string
	EnableProfiler bool `yaml:"enable_profiler"`
}

// Default is the configuration used when no config file is given: a small
// fixed window with the built-in shaders and no api server.
func Default() *Config {
	vsync := true
	return &Config{
		Window: WindowCfg{
			Width:  640,
			Height: 480,
			Title:  "kwartel",
			Vsync:  &vsync,
		},
		ClearColour: "#000000ff",
		QuadColour:  "#ff7f33ff",
	}
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %s", filename, err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			_ = fmt.Errorf("could not close %s: %s", filename, err)
		}
	}(f)

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}
	UnmarshalBase = filepath.Dir(absFilename)

	m := yaml.NewDecoder(f)
	cfg := Default()
	err = m.Decode(cfg)
	if err != nil {
		return nil, err
	}
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, err
}

func (c *Config) Validate() error {
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("window size %dx%d is invalid", c.Window.Width, c.Window.Height)
	}
	if c.Window.Title == "" {
		return fmt.Errorf("please set a window title")
	}
	if !utils.ColourValidate(c.ClearColour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", c.ClearColour)
	}
	if !utils.ColourValidate(c.QuadColour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", c.QuadColour)
	}
	if c.Shaders != nil {
		err := c.Shaders.Validate()
		if err != nil {
			return fmt.Errorf("shader config is invalid: %w", err)
		}
	}
	if c.Api != nil && c.Api.Bind == "" {
		return fmt.Errorf("api section is present but has no bind address")
	}
	return nil
}

func (s *ShaderCfg) Validate() error {
	if s.Vertex == "" || s.Fragment == "" {
		return fmt.Errorf("both vertex and fragment shader paths must be specified")
	}
	if _, err := os.Stat(string(s.Vertex)); err != nil {
		return fmt.Errorf("vertex shader: %w", err)
	}
	if _, err := os.Stat(string(s.Fragment)); err != nil {
		return fmt.Errorf("fragment shader: %w", err)
	}
	return nil
}

func (c *Config) String() string {
	var b strings.Builder

	vsync := c.Window.Vsync == nil || *c.Window.Vsync
	b.WriteString(fmt.Sprintf("Window: %dx%d %q", c.Window.Width, c.Window.Height, c.Window.Title))
	if c.Window.Fullscreen {
		b.WriteString(" fullscreen")
	}
	if vsync {
		b.WriteString(" vsync")
	}
	b.WriteString("\n")

	if c.Shaders != nil {
		b.WriteString(fmt.Sprintf("Shaders: %s + %s", c.Shaders.Vertex, c.Shaders.Fragment))
		if c.Shaders.Watch {
			b.WriteString(" (watched)")
		}
		b.WriteString("\n")
	} else {
		b.WriteString("Shaders: built-in\n")
	}

	if c.Api != nil {
		b.WriteString(fmt.Sprintf("Api: %s\n", c.Api.Bind))
	}

	return b.String()
}
