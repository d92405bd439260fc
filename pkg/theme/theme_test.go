package theme_test

import (
	"testing"

	"github.com/ranveeraggarwal/dipy/pkg/graphics"
	"github.com/ranveeraggarwal/dipy/pkg/theme"
)

func TestParseOverridesDefaults(t *testing.T) {
	data := []byte(`
panel:
  color: "#202040"
  opacity: 0.5
text:
  font_size: 24
`)
	th, err := theme.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := th.Panel.Color.Color(); got != graphics.RGBA(0x20, 0x20, 0x40, 1) {
		t.Errorf("panel color = %08x", uint32(got))
	}
	if th.Panel.Opacity != 0.5 {
		t.Errorf("panel opacity = %g, want 0.5", th.Panel.Opacity)
	}
	if th.Text.FontSize != 24 {
		t.Errorf("font size = %g, want 24", th.Text.FontSize)
	}
	// Untouched sections keep defaults.
	if th.Slider.TrackColor != theme.Default().Slider.TrackColor {
		t.Error("slider defaults lost")
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	for _, data := range []string{
		`panel: {color: "red"}`,
		`panel: {color: "#12345"}`,
	} {
		if _, err := theme.Parse([]byte(data)); err == nil {
			t.Errorf("accepted %q", data)
		}
	}
}

func TestHexColorRoundTrip(t *testing.T) {
	cases := []theme.HexColor{
		theme.HexColor(graphics.RGB(0x12, 0x34, 0x56)),
		theme.HexColor(graphics.RGBA(0x12, 0x34, 0x56, 0.5)),
	}
	for _, c := range cases {
		v, err := c.MarshalYAML()
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		s, ok := v.(string)
		if !ok || len(s) == 0 || s[0] != '#' {
			t.Errorf("marshal gave %v, want hex string", v)
		}
	}
}
