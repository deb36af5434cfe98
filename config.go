package scene2d

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/image/colornames"
)

// Config carries the construction-time defaults for a scene.
// Shape constructors that receive no explicit style consult a Config;
// callers that want isolated defaults thread their own Config value
// through construction instead of relying on the process-wide one.
type Config struct {
	Style Style
}

// NewConfig returns a Config holding the built-in default style.
func NewConfig() *Config {
	return &Config{Style: DefaultStyleValues()}
}

// envSettings mirrors the environment-configurable subset of the
// default style. All variables are prefixed with SCENE2D_, for example
// SCENE2D_PEN_COLOR=steelblue.
type envSettings struct {
	PenColor   string  `envconfig:"PEN_COLOR" default:"black"`
	FillColor  string  `envconfig:"FILL_COLOR" default:"white"`
	LineWidth  float64 `envconfig:"LINE_WIDTH" default:"1.0"`
	LineCap    string  `envconfig:"LINE_CAP" default:"butt"`
	LineJoin   string  `envconfig:"LINE_JOIN" default:"miter"`
	MiterLimit float64 `envconfig:"MITER_LIMIT" default:"4.0"`
}

// ConfigFromEnv builds a Config from SCENE2D_* environment variables,
// falling back to the built-in defaults for unset variables. Color
// names follow the SVG 1.1 color keyword set.
func ConfigFromEnv() (*Config, error) {
	var e envSettings
	if err := envconfig.Process("scene2d", &e); err != nil {
		return nil, err
	}

	cfg := NewConfig()

	pen, ok := colornames.Map[strings.ToLower(e.PenColor)]
	if !ok {
		return nil, errorf("unknown pen color %q", e.PenColor)
	}
	cfg.Style.Pen = pen

	if strings.EqualFold(e.FillColor, "none") {
		cfg.Style.Fill = nil
	} else {
		fill, ok := colornames.Map[strings.ToLower(e.FillColor)]
		if !ok {
			return nil, errorf("unknown fill color %q", e.FillColor)
		}
		cfg.Style.Fill = fill
	}

	if e.LineWidth < 0 {
		return nil, errorf("negative line width %g", e.LineWidth)
	}
	cfg.Style.Width = e.LineWidth

	switch strings.ToLower(e.LineCap) {
	case "butt":
		cfg.Style.Cap = LineCapButt
	case "round":
		cfg.Style.Cap = LineCapRound
	case "square":
		cfg.Style.Cap = LineCapSquare
	default:
		return nil, errorf("unknown line cap %q", e.LineCap)
	}

	switch strings.ToLower(e.LineJoin) {
	case "miter":
		cfg.Style.Join = LineJoinMiter
	case "round":
		cfg.Style.Join = LineJoinRound
	case "bevel":
		cfg.Style.Join = LineJoinBevel
	default:
		return nil, errorf("unknown line join %q", e.LineJoin)
	}

	cfg.Style.MiterLimit = e.MiterLimit

	return cfg, nil
}

// defaultConfig is the process-wide default consulted by constructors
// when the caller passes no explicit style. Construction is assumed
// single-threaded; mutating the default while building scenes from
// other goroutines is undefined.
var defaultConfig = NewConfig()

// DefaultStyle returns a copy of the process-wide default style.
func DefaultStyle() Style {
	return defaultConfig.Style.Clone()
}

// SetDefaultStyle replaces the process-wide default style.
// Not safe for concurrent use with scene construction.
func SetDefaultStyle(s Style) {
	defaultConfig.Style = s.Clone()
}

// SetDefaultConfig replaces the whole process-wide default Config.
// Not safe for concurrent use with scene construction.
func SetDefaultConfig(cfg *Config) {
	if cfg == nil {
		cfg = NewConfig()
	}
	defaultConfig = cfg
}
