package scene

import "github.com/ranveeraggarwal/dipy/pkg/graphics"

// Icon is a handle to a decoded image resource. Decoding happens once,
// at load time, so cycling button icons never re-reads files. The host
// resolves the handle back to its texture by name.
type Icon struct {
	// Name is the name the icon was loaded under.
	Name string
	// Size is the icon's pixel dimensions.
	Size graphics.Size
}

// IconLoader converts an image file into a renderable icon resource.
type IconLoader interface {
	// Load reads and decodes the named image file. A missing or
	// malformed file returns the zero Icon and an error.
	Load(name string) (Icon, error)
}

// Factory constructs primitive overlay visuals. Widgets own the
// returned actors exclusively; an actor has at most one owning widget.
type Factory interface {
	// Rectangle builds a filled quad of the given size anchored at its
	// lower-left corner.
	Rectangle(size graphics.Size) Actor2D
	// Disk builds a filled annulus. An inner radius of zero yields a
	// full disk; a near-outer inner radius yields a ring.
	Disk(innerRadius, outerRadius float64) Actor2D
	// Text builds a text actor displaying the given message.
	Text(message string) TextActor
	// Image builds a textured quad displaying the given icon.
	Image(icon Icon) ImageActor
}
