// Command example assembles the stock overlay demo: a control panel
// with an icon button, a text box, and both slider styles over an
// empty world layer. Run with an icons directory containing
// play.png, pause.png and stop.png:
//
//	go run ./example -icons ./example/icons
package main

import (
	"flag"
	"log"

	ebitenbackend "github.com/ranveeraggarwal/dipy/backend/ebiten"
	"github.com/ranveeraggarwal/dipy/pkg/events"
	"github.com/ranveeraggarwal/dipy/pkg/graphics"
	"github.com/ranveeraggarwal/dipy/pkg/interactor"
	"github.com/ranveeraggarwal/dipy/pkg/theme"
	"github.com/ranveeraggarwal/dipy/pkg/ui"
)

func main() {
	iconDir := flag.String("icons", "icons", "directory containing icon PNG files")
	themePath := flag.String("theme", "", "optional theme YAML file")
	flag.Parse()

	th := theme.Default()
	if *themePath != "" {
		loaded, err := theme.Load(*themePath)
		if err != nil {
			log.Fatalf("load theme: %v", err)
		}
		th = loaded
	}

	surface := ebitenbackend.NewSurface(ebitenbackend.Config{
		Width:  800,
		Height: 600,
		Title:  "overlay demo",
		Icons:  ebitenbackend.NewIconLoader(*iconDir),
	})
	router := interactor.NewRouter(surface, surface)

	panel := ui.NewPanel(surface,
		graphics.Size{Width: 300, Height: 150},
		graphics.Offset{X: 400, Y: 100},
		th.Panel.Color.Color(), th.Panel.Opacity)

	button, err := ui.NewButton(surface, surface.Icons(), []ui.IconSpec{
		{Name: "play", File: "play.png"},
		{Name: "pause", File: "pause.png"},
		{Name: "stop", File: "stop.png"},
	})
	if err != nil {
		log.Fatalf("build button: %v", err)
	}
	button.AddCallback(events.KindLeftButtonPress, func(events.Event) bool {
		button.NextIcon()
		return true
	})
	panel.AddElement(button, graphics.Offset{X: 0.1, Y: 0.5})

	box, err := ui.NewTextBox(surface, 20, 2, "type here")
	if err != nil {
		log.Fatalf("build text box: %v", err)
	}
	panel.AddElement(box, graphics.Offset{X: 0.45, Y: 0.6})

	slider, err := ui.NewLineSlider(surface, ui.LineSliderConfig{
		Center:      graphics.Offset{X: 400, Y: 300},
		Length:      200,
		TrackColor:  th.Slider.TrackColor.Color(),
		HandleColor: th.Slider.HandleColor.Color(),
		Initial:     50,
	})
	if err != nil {
		log.Fatalf("build line slider: %v", err)
	}

	dial, err := ui.NewDiskSlider(surface, ui.DiskSliderConfig{
		Center:      graphics.Offset{X: 650, Y: 450},
		RingColor:   th.Slider.RingColor.Color(),
		HandleColor: th.Slider.HandleColor.Color(),
	})
	if err != nil {
		log.Fatalf("build disk slider: %v", err)
	}

	title := ui.NewText(surface, "overlay demo", ui.TextConfig{
		Position: graphics.Offset{X: 20, Y: 560},
		Color:    th.Text.Color.Color(),
		FontSize: th.Text.FontSize,
	})

	router.Register(panel)
	router.Register(title)
	router.Register(slider)
	router.Register(dial)
	router.SetInteractor(surface)

	if err := ebitenbackend.Run(surface, ebitenbackend.NewGame(surface)); err != nil {
		log.Fatal(err)
	}
}
