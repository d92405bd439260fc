package scene

import "github.com/ranveeraggarwal/dipy/pkg/graphics"

// PickResult identifies what occupies a screen coordinate. A 3D prop
// reachable through a traversal path has first priority, then 2D
// overlay actors, then 3D actors without a path.
type PickResult struct {
	// Prop3D is the picked scene object, if any.
	Prop3D Prop3D
	// Actor2D is the picked overlay actor, if any.
	Actor2D Actor2D
	// Path is the prop-assembly traversal path leading to Prop3D.
	// Empty when the prop was picked directly.
	Path []Prop3D
}

// Empty reports whether nothing was hit.
func (r PickResult) Empty() bool {
	return r.Prop3D == nil && r.Actor2D == nil && len(r.Path) == 0
}

// Picker resolves the topmost visual at a screen coordinate.
type Picker interface {
	Pick(pos graphics.Offset) PickResult
}
