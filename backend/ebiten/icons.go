package ebitenbackend

import (
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/ranveeraggarwal/dipy/pkg/graphics"
	"github.com/ranveeraggarwal/dipy/pkg/scene"
)

// IconLoader decodes icon image files once and caches the decoded
// textures by file name for the life of the surface.
type IconLoader struct {
	dir    string
	images map[string]*ebiten.Image
}

// NewIconLoader resolves icon files relative to dir. An empty dir uses
// paths as given.
func NewIconLoader(dir string) *IconLoader {
	return &IconLoader{
		dir:    dir,
		images: make(map[string]*ebiten.Image),
	}
}

// Load decodes the file and returns its icon handle. Repeated loads
// of the same file reuse the cached texture.
func (l *IconLoader) Load(name string) (scene.Icon, error) {
	img, ok := l.images[name]
	if !ok {
		path := name
		if l.dir != "" {
			path = filepath.Join(l.dir, name)
		}
		var err error
		img, _, err = ebitenutil.NewImageFromFile(path)
		if err != nil {
			return scene.Icon{}, fmt.Errorf("load icon %s: %w", path, err)
		}
		l.images[name] = img
	}
	b := img.Bounds()
	return scene.Icon{
		Name: name,
		Size: graphics.Size{Width: float64(b.Dx()), Height: float64(b.Dy())},
	}, nil
}

// Image returns the cached texture for a loaded icon.
func (l *IconLoader) Image(name string) (*ebiten.Image, bool) {
	img, ok := l.images[name]
	return img, ok
}
