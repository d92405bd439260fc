package interactor

import (
	"github.com/ranveeraggarwal/dipy/pkg/events"
	"github.com/ranveeraggarwal/dipy/pkg/graphics"
	"github.com/ranveeraggarwal/dipy/pkg/scene"
)

// Default manipulation speeds. Rotation is in degrees per pixel of
// drag; dolly factors multiply the camera distance.
const (
	rotateSpeed      = 0.5
	dollyDragSpeed   = 0.01
	wheelDollyFactor = 1.1
)

// CameraController implements the default trackball-style scene
// manipulation applied when an event hits no widget or prop: left-drag
// rotates, right-drag and the wheel dolly, middle-drag pans.
type CameraController struct {
	camera scene.Camera

	dragging events.Kind
	lastPos  graphics.Offset
}

func NewCameraController(camera scene.Camera) *CameraController {
	return &CameraController{camera: camera}
}

// Press starts a drag for the pressed button.
func (c *CameraController) Press(e events.Event) {
	c.dragging = e.Kind
	c.lastPos = e.Pos
}

// Release ends the drag if it matches the pressed button.
func (c *CameraController) Release(e events.Event) {
	if c.dragging == e.Kind.PressKind() {
		c.dragging = events.KindUnknown
	}
}

// Move applies the manipulation for the active drag. It reports
// whether the camera moved.
func (c *CameraController) Move(e events.Event) bool {
	if c.dragging == events.KindUnknown {
		return false
	}
	delta := e.Pos.Sub(c.lastPos)
	c.lastPos = e.Pos
	switch c.dragging {
	case events.KindLeftButtonPress:
		c.camera.Azimuth(-delta.X * rotateSpeed)
		c.camera.Elevation(delta.Y * rotateSpeed)
	case events.KindRightButtonPress:
		c.camera.Dolly(1 + delta.Y*dollyDragSpeed)
	case events.KindMiddleButtonPress:
		c.camera.Pan(delta)
	}
	return true
}

// Wheel dollies in or out one step.
func (c *CameraController) Wheel(e events.Event) {
	if e.Kind == events.KindMouseWheelForward {
		c.camera.Dolly(wheelDollyFactor)
	} else {
		c.camera.Dolly(1 / wheelDollyFactor)
	}
}

// Dragging reports whether a camera drag is in progress.
func (c *CameraController) Dragging() bool {
	return c.dragging != events.KindUnknown
}
