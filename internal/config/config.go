package config

import (
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultShape        = "heart"
	DefaultSamples      = 512
	DefaultBandwidth    = 100
	DefaultMode         = "order"
	DefaultAnimateBound = 150
	DefaultCurveSamples = 1500
	DefaultPeriod       = 8.0
	DefaultTail         = 2500
	DefaultFPS          = 30
	DefaultTheme        = "cyberpunk"
	DefaultWidth        = 800
	DefaultHeight       = 600

	// MinSamples is the smallest curve sample count accepted.
	MinSamples = 2
)

// DefaultBounds are the partial-sum bounds drawn when none are given.
var DefaultBounds = []int{1, 3, 10, 50}

type Config struct {
	Shape        string  `yaml:"shape"`
	Points       string  `yaml:"points,omitempty"`
	Samples      int     `yaml:"samples"`
	Bandwidth    int     `yaml:"bandwidth"`
	Bounds       []int   `yaml:"bounds"`
	Mode         string  `yaml:"mode"`
	ChainCap     int     `yaml:"chain_cap"`
	AnimateBound int     `yaml:"animate_bound"`
	CurveSamples int     `yaml:"curve_samples"`
	Period       float64 `yaml:"period"`
	Tail         int     `yaml:"tail"`
	FPS          int     `yaml:"fps"`
	Theme        string  `yaml:"theme"`
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Shape:        DefaultShape,
		Samples:      DefaultSamples,
		Bandwidth:    DefaultBandwidth,
		Bounds:       append([]int(nil), DefaultBounds...),
		Mode:         DefaultMode,
		AnimateBound: DefaultAnimateBound,
		CurveSamples: DefaultCurveSamples,
		Period:       DefaultPeriod,
		Tail:         DefaultTail,
		FPS:          DefaultFPS,
		Theme:        DefaultTheme,
		Width:        DefaultWidth,
		Height:       DefaultHeight,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.Sanitize()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Sanitize coerces out-of-range values to safe ones so the engine only
// ever sees validated integers.
func (c *Config) Sanitize() {
	if c.Shape == "" && c.Points == "" {
		c.Shape = DefaultShape
	}
	if c.Samples < MinSamples {
		c.Samples = DefaultSamples
	}
	if c.Bandwidth < 0 {
		c.Bandwidth = 0
	}

	bounds := c.Bounds[:0]
	for _, b := range c.Bounds {
		if b >= 0 {
			bounds = append(bounds, b)
		}
	}
	c.Bounds = bounds

	if c.Mode != "order" && c.Mode != "mag" {
		c.Mode = DefaultMode
	}
	if c.ChainCap < 1 {
		c.ChainCap = 0
	}
	if c.AnimateBound <= 0 {
		c.AnimateBound = DefaultAnimateBound
	}
	if c.CurveSamples < 1 {
		c.CurveSamples = DefaultCurveSamples
	}
	if c.Period <= 0 || math.IsNaN(c.Period) || math.IsInf(c.Period, 0) {
		c.Period = DefaultPeriod
	}
	if c.Tail < 0 {
		c.Tail = DefaultTail
	}
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
}

// ParseBounds reads a comma-separated list such as "1, 5,20". Entries that
// are not finite non-negative numbers are skipped; fractional values are
// truncated.
func ParseBounds(s string) []int {
	out := make([]int, 0)
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			continue
		}
		out = append(out, int(v))
	}
	return out
}
