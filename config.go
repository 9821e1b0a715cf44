package dominoes

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// RunConfig configures the desktop window opened by Run.
type RunConfig struct {
	Title         string       `yaml:"title"`
	Width         int          `yaml:"width"`
	Height        int          `yaml:"height"`
	ShowFPS       bool         `yaml:"show_fps"`
	Debug         bool         `yaml:"debug"`
	ScreenshotDir string       `yaml:"screenshot_dir"`
	ClearColor    Color        `yaml:"clear_color"`
	StrokeColor   Color        `yaml:"stroke_color"`
	LineWidth     float32      `yaml:"line_width"`
	AntiAlias     bool         `yaml:"antialias"`
	Follow        FollowConfig `yaml:"follow"`
}

// FollowConfig enables the eased anchor. A zero Duration disables it.
type FollowConfig struct {
	Duration float32 `yaml:"duration"`
	Easing   string  `yaml:"easing"`
}

// DefaultRunConfig returns the configuration used when no file is given.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "Dominoes",
		Width:         640,
		Height:        480,
		ShowFPS:       true,
		ScreenshotDir: "screenshots",
		ClearColor:    ColorWhite,
		StrokeColor:   ColorBlack,
		LineWidth:     1,
		AntiAlias:     true,
		Follow:        FollowConfig{Easing: "outQuad"},
	}
}

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"outSine":    ease.OutSine,
	"outElastic": ease.OutElastic,
	"outBounce":  ease.OutBounce,
}

// EasingNames returns the accepted follow.easing values, sorted.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EasingFunc resolves the easing name. An empty name means linear.
func (c FollowConfig) EasingFunc() (ease.TweenFunc, error) {
	if c.Easing == "" {
		return ease.Linear, nil
	}
	fn, ok := easings[c.Easing]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", c.Easing)
	}
	return fn, nil
}

// Validate reports the first invalid field.
func (c RunConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.LineWidth <= 0 {
		return fmt.Errorf("line_width %v must be positive", c.LineWidth)
	}
	if c.Follow.Duration < 0 {
		return fmt.Errorf("follow.duration %v must not be negative", c.Follow.Duration)
	}
	if _, err := c.Follow.EasingFunc(); err != nil {
		return fmt.Errorf("follow.easing: %w", err)
	}
	return nil
}

// LoadRunConfig reads a YAML config file over DefaultRunConfig. Fields absent
// from the file keep their defaults. A missing file returns the defaults.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return RunConfig{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return RunConfig{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// YAML encodes the config in the same layout LoadRunConfig reads.
func (c RunConfig) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
