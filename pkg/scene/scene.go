// Package scene defines the contracts between the UI core and its
// rendering host: the render surface, the camera, visual actor handles,
// primitive construction, icon resources, and spatial picking.
//
// The core never draws anything itself. Widgets build their visual
// representation through a Factory, position the returned actors, and
// ask the Scene to re-render; decoding images, tessellating primitives,
// and presenting frames are host concerns (see backend/ebiten for a
// reference host).
package scene

import "github.com/ranveeraggarwal/dipy/pkg/graphics"

// Scene is the render surface holding all visuals for one window.
// All methods must be called from the thread that owns the surface.
type Scene interface {
	// Add places props on the surface. Adding the same prop twice is a
	// no-op.
	Add(props ...Prop)
	// Remove takes a prop off the surface.
	Remove(prop Prop)
	// Render requests a redraw of the surface. Hosts may coalesce
	// bursts of requests into a single frame.
	Render()
	// Camera returns the active camera.
	Camera() Camera
	// SetBackground sets the surface clear color.
	SetBackground(color graphics.Color)
}

// Camera manipulates the 3D view. The event router drives it when an
// input event hits no widget: rotate on left-drag, dolly on
// right-drag/wheel, pan on middle-drag.
type Camera interface {
	// Azimuth rotates the camera about the view-up vector centered at
	// the focal point, in degrees.
	Azimuth(angle float64)
	// Elevation rotates the camera vertically about the focal point,
	// in degrees.
	Elevation(angle float64)
	// Roll spins the camera about the direction of projection, in
	// degrees.
	Roll(angle float64)
	// Dolly divides the camera's distance from the focal point by the
	// given value. Values greater than one move in.
	Dolly(value float64)
	// Pan translates the focal point parallel to the view plane.
	Pan(delta graphics.Offset)
	// Reset restores the automatic position given by the host.
	Reset()
}
