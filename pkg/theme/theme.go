// Package theme holds the visual defaults applied to widgets: colors,
// opacities, and font sizing. A theme can be loaded from a YAML file
// so demos and applications restyle the overlay without recompiling.
package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ranveeraggarwal/dipy/pkg/graphics"
)

// Theme contains the full styling configuration for the overlay.
type Theme struct {
	// Panel styles the container background.
	Panel PanelTheme `yaml:"panel"`

	// Slider styles both the linear and radial sliders.
	Slider SliderTheme `yaml:"slider"`

	// Text styles labels and text boxes.
	Text TextTheme `yaml:"text"`
}

// PanelTheme styles panel backgrounds.
type PanelTheme struct {
	Color   HexColor `yaml:"color"`
	Opacity float64  `yaml:"opacity"`
}

// SliderTheme styles slider tracks and handles.
type SliderTheme struct {
	TrackColor  HexColor `yaml:"track_color"`
	HandleColor HexColor `yaml:"handle_color"`
	RingColor   HexColor `yaml:"ring_color"`
}

// TextTheme styles text rendering.
type TextTheme struct {
	Color    HexColor `yaml:"color"`
	FontSize float64  `yaml:"font_size"`
}

// Default returns the built-in theme: a dark panel with red slider
// accents, matching the stock overlay look.
func Default() *Theme {
	return &Theme{
		Panel: PanelTheme{
			Color:   HexColor(graphics.RGBF(0.1, 0.1, 0.1)),
			Opacity: 0.7,
		},
		Slider: SliderTheme{
			TrackColor:  HexColor(graphics.RGBF(1, 0, 0)),
			HandleColor: HexColor(graphics.ColorWhite),
			RingColor:   HexColor(graphics.RGBF(1, 0, 0)),
		},
		Text: TextTheme{
			Color:    HexColor(graphics.ColorWhite),
			FontSize: 18,
		},
	}
}

// Load reads a theme file. Fields absent from the file keep their
// defaults.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML theme data over the defaults.
func Parse(data []byte) (*Theme, error) {
	t := Default()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("decode theme: %w", err)
	}
	return t, nil
}

// HexColor is a graphics.Color that marshals as "#rrggbb" or
// "#aarrggbb".
type HexColor graphics.Color

// Color converts back to the graphics representation.
func (c HexColor) Color() graphics.Color { return graphics.Color(c) }

func (c HexColor) MarshalYAML() (interface{}, error) {
	v := uint32(c)
	if v>>24 == 0xFF {
		return fmt.Sprintf("#%06x", v&0xFFFFFF), nil
	}
	return fmt.Sprintf("#%08x", v), nil
}

func (c *HexColor) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if len(s) == 0 || s[0] != '#' {
		return fmt.Errorf("color %q: want #rrggbb or #aarrggbb", s)
	}
	var v uint32
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s[1:], "%06x", &v); err != nil {
			return fmt.Errorf("color %q: %w", s, err)
		}
		v |= 0xFF000000
	case 9:
		if _, err := fmt.Sscanf(s[1:], "%08x", &v); err != nil {
			return fmt.Errorf("color %q: %w", s, err)
		}
	default:
		return fmt.Errorf("color %q: want #rrggbb or #aarrggbb", s)
	}
	*c = HexColor(v)
	return nil
}
