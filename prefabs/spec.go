package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/milk9111/clickburst/burst"
	"github.com/milk9111/clickburst/timing"
	"gopkg.in/yaml.v3"
)

// LoadSpecInto decodes path (or the embedded fallback when path is empty)
// over the existing contents of spec, so unset keys keep their values.
func LoadSpecInto[T any](fallback, path string, spec *T) error {
	name := path
	if name == "" {
		name = fallback
	}
	data, err := LoadFile(path, fallback)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	return nil
}

type RangeSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type ThrottleSpec struct {
	Window time.Duration `yaml:"window"`
	Edge   string        `yaml:"edge"`
}

// BurstSpec is the YAML form of burst.Config.
type BurstSpec struct {
	Count        int           `yaml:"count"`
	Speed        float64       `yaml:"speed"`
	Size         RangeSpec     `yaml:"size"`
	Decay        RangeSpec     `yaml:"decay"`
	Gravity      float64       `yaml:"gravity"`
	MaxActive    int           `yaml:"max_active"`
	Palette      []YAMLColor   `yaml:"palette"`
	Throttle     ThrottleSpec  `yaml:"throttle"`
	ResizeSettle time.Duration `yaml:"resize_settle"`
}

func DefaultBurstSpec() BurstSpec {
	cfg := burst.DefaultConfig()
	palette := make([]YAMLColor, 0, len(cfg.Palette))
	for _, c := range cfg.Palette {
		palette = append(palette, YAMLColor{Color: c})
	}
	return BurstSpec{
		Count:        cfg.Count,
		Speed:        cfg.Speed,
		Size:         RangeSpec{Min: cfg.SizeMin, Max: cfg.SizeMax},
		Decay:        RangeSpec{Min: cfg.DecayMin, Max: cfg.DecayMax},
		Gravity:      cfg.Gravity,
		MaxActive:    cfg.MaxActive,
		Palette:      palette,
		Throttle:     ThrottleSpec{Window: cfg.ThrottleWindow, Edge: cfg.ThrottleEdge.String()},
		ResizeSettle: cfg.ResizeSettle,
	}
}

// Config converts the spec and validates the result.
func (s BurstSpec) Config() (burst.Config, error) {
	edge, err := timing.ParseEdge(s.Throttle.Edge)
	if err != nil {
		return burst.Config{}, fmt.Errorf("prefabs: burst throttle: %w", err)
	}
	palette := make([]color.Color, 0, len(s.Palette))
	for _, c := range s.Palette {
		if c.Color != nil {
			palette = append(palette, c.Color)
		}
	}
	cfg := burst.Config{
		Count:          s.Count,
		Speed:          s.Speed,
		SizeMin:        s.Size.Min,
		SizeMax:        s.Size.Max,
		DecayMin:       s.Decay.Min,
		DecayMax:       s.Decay.Max,
		Gravity:        s.Gravity,
		Palette:        palette,
		MaxActive:      s.MaxActive,
		ThrottleWindow: s.Throttle.Window,
		ThrottleEdge:   edge,
		ResizeSettle:   s.ResizeSettle,
	}
	if err := cfg.Validate(); err != nil {
		return burst.Config{}, fmt.Errorf("prefabs: burst config: %w", err)
	}
	return cfg, nil
}

// LoadBurstConfig reads path, or the embedded burst.yaml when path is empty.
// Keys missing from the file keep their defaults.
func LoadBurstConfig(path string) (burst.Config, error) {
	spec := DefaultBurstSpec()
	if err := LoadSpecInto("burst.yaml", path, &spec); err != nil {
		return burst.Config{}, err
	}
	return spec.Config()
}

// ElementSpec describes one node of the demo page.
type ElementSpec struct {
	Tag         string        `yaml:"tag"`
	ID          string        `yaml:"id"`
	Class       []string      `yaml:"class"`
	Text        string        `yaml:"text"`
	Target      string        `yaml:"target"`
	Direction   string        `yaml:"direction"`
	Placeholder string        `yaml:"placeholder"`
	Width       int           `yaml:"width"`
	Height      int           `yaml:"height"`
	Children    []ElementSpec `yaml:"children"`
}

type PageSpec struct {
	Title      string      `yaml:"title"`
	FontSize   float64     `yaml:"font_size"`
	Background *YAMLColor  `yaml:"background"`
	Foreground *YAMLColor  `yaml:"foreground"`
	Root       ElementSpec `yaml:"root"`
}

func LoadPageSpec(path string) (PageSpec, error) {
	var spec PageSpec
	if err := LoadSpecInto("page.yaml", path, &spec); err != nil {
		return PageSpec{}, err
	}
	if spec.Root.Tag == "" {
		return PageSpec{}, fmt.Errorf("prefabs: page root has no tag")
	}
	return spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
