package scene

import "github.com/ranveeraggarwal/dipy/pkg/graphics"

// Prop is any visual object a surface can display.
type Prop interface {
	// Visible reports whether the prop is currently drawn.
	Visible() bool
	// SetVisible shows or hides the prop without removing it.
	SetVisible(visible bool)
}

// Actor2D is a screen-space overlay visual. Its position is the
// lower-left anchor of its geometry in display coordinates.
type Actor2D interface {
	Prop
	// Position returns the lower-left anchor.
	Position() graphics.Offset
	// SetPosition moves the lower-left anchor.
	SetPosition(pos graphics.Offset)
	// Size returns the on-screen extent of the actor's geometry.
	Size() graphics.Size
	// SetColor sets the fill color.
	SetColor(color graphics.Color)
	// SetOpacity sets the overall opacity (0-1).
	SetOpacity(opacity float64)
}

// TextActor is an overlay actor displaying a text message.
type TextActor interface {
	Actor2D
	// Message returns the currently displayed text.
	Message() string
	// SetMessage replaces the displayed text. Lines are separated by
	// newline characters.
	SetMessage(text string)
	// SetFontSize sets the text height in points.
	SetFontSize(size float64)
}

// ImageActor is an overlay actor textured with an icon resource.
type ImageActor interface {
	Actor2D
	// SetIcon rebinds the actor's existing geometry to a new icon
	// resource without reallocating it.
	SetIcon(icon Icon)
}

// Prop3D is a scene-space object. The UI core never constructs or
// mutates 3D geometry; it only routes events to props the host placed
// in the scene.
type Prop3D interface {
	Prop
}
