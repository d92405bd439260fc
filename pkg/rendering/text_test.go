package rendering_test

import (
	"testing"

	"github.com/ranveeraggarwal/dipy/pkg/rendering"
)

func TestMeasureStringGrowsWithLength(t *testing.T) {
	fm := rendering.NewBasicFontManager()
	short := fm.MeasureString("hi")
	long := fm.MeasureString("hello world")
	if short <= 0 {
		t.Fatalf("MeasureString(hi) = %g, want > 0", short)
	}
	if long <= short {
		t.Errorf("longer string measured %g, shorter %g", long, short)
	}
}

func TestMeasureTextMultiline(t *testing.T) {
	fm := rendering.NewBasicFontManager()

	one := fm.MeasureText("HELLO")
	two := fm.MeasureText("HELLO\nHI")
	if two.Height != 2*one.Height {
		t.Errorf("two-line height = %g, want %g", two.Height, 2*one.Height)
	}
	// Width follows the widest line.
	if two.Width != one.Width {
		t.Errorf("width = %g, want widest line %g", two.Width, one.Width)
	}
	if empty := fm.MeasureText(""); !empty.IsEmpty() {
		t.Errorf("empty text measured %v", empty)
	}
}
