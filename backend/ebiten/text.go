package ebitenbackend

import (
	"github.com/hajimehoshi/ebiten/v2"
	etext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/ranveeraggarwal/dipy/pkg/scene"
)

type textActor struct {
	baseActor
	surface  *Surface
	message  string
	fontSize float64
}

func (a *textActor) Message() string { return a.message }

func (a *textActor) SetMessage(msg string) {
	a.message = msg
	// Keep pick bounds in sync with what is drawn.
	a.size = a.surface.fonts.MeasureText(msg)
}

// SetFontSize records the requested size. The bitmap face draws at its
// native size; hosts supplying a scalable face get true scaling.
func (a *textActor) SetFontSize(size float64) { a.fontSize = size }

func (a *textActor) draw(dst *ebiten.Image, s *Surface) {
	op := &etext.DrawOptions{}
	op.GeoM.Translate(a.pos.X, s.flipY(a.pos.Y+a.size.Height))
	op.ColorScale.ScaleWithColor(a.fill())
	op.LineSpacing = s.fonts.LineHeight()
	etext.Draw(dst, a.message, s.textFace, op)
}

type imageActor struct {
	baseActor
	surface *Surface
	image   *ebiten.Image
}

func (a *imageActor) SetIcon(icon scene.Icon) {
	if a.surface.icons == nil {
		return
	}
	img, ok := a.surface.icons.Image(icon.Name)
	if !ok {
		return
	}
	a.image = img
	a.size = icon.Size
}

func (a *imageActor) draw(dst *ebiten.Image, s *Surface) {
	if a.image == nil || a.size.IsEmpty() {
		return
	}
	bounds := a.image.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		a.size.Width/float64(bounds.Dx()),
		a.size.Height/float64(bounds.Dy()),
	)
	op.GeoM.Translate(a.pos.X, s.flipY(a.pos.Y+a.size.Height))
	op.ColorScale.ScaleAlpha(float32(a.opacity))
	dst.DrawImage(a.image, op)
}
