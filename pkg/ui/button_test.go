package ui_test

import (
	goerrors "errors"
	"testing"

	"github.com/ranveeraggarwal/dipy/pkg/errors"
	"github.com/ranveeraggarwal/dipy/pkg/events"
	"github.com/ranveeraggarwal/dipy/pkg/graphics"
	"github.com/ranveeraggarwal/dipy/pkg/ui"
	"github.com/ranveeraggarwal/dipy/pkg/uitest"
)

var iconSize = graphics.Size{Width: 50, Height: 50}

func newIconButton(t *testing.T, f *uitest.FakeFactory, names ...string) *ui.Button {
	t.Helper()
	loader := uitest.NamedIcons(iconSize, names...)
	specs := make([]ui.IconSpec, len(names))
	for i, name := range names {
		specs[i] = ui.IconSpec{Name: name, File: name}
	}
	b, err := ui.NewButton(f, loader, specs)
	if err != nil {
		t.Fatalf("NewButton: %v", err)
	}
	return b
}

func TestButtonCyclesBackToFirstIcon(t *testing.T) {
	f := &uitest.FakeFactory{}
	names := []string{"play", "pause", "stop"}
	b := newIconButton(t, f, names...)

	if b.CurrentIconName() != "play" || b.CurrentIconIndex() != 0 {
		t.Fatalf("initial icon = %q/%d, want play/0", b.CurrentIconName(), b.CurrentIconIndex())
	}
	for i := 0; i < len(names); i++ {
		b.NextIcon()
	}
	if b.CurrentIconName() != "play" || b.CurrentIconIndex() != 0 {
		t.Errorf("after full cycle: icon = %q/%d, want play/0", b.CurrentIconName(), b.CurrentIconIndex())
	}
}

func TestButtonNextIconUpdatesActor(t *testing.T) {
	f := &uitest.FakeFactory{}
	b := newIconButton(t, f, "play", "pause")

	b.NextIcon()
	actor := f.Images[0]
	if actor.Current.Name != "pause" {
		t.Errorf("actor icon = %q, want pause", actor.Current.Name)
	}
	if b.CurrentIconName() != "pause" {
		t.Errorf("CurrentIconName = %q, want pause", b.CurrentIconName())
	}
}

func TestButtonAnchorsAtLowerLeft(t *testing.T) {
	f := &uitest.FakeFactory{}
	b := newIconButton(t, f, "play")

	b.SetCenter(graphics.Offset{X: 100, Y: 80})
	if pos := f.Images[0].Position(); pos.X != 100 || pos.Y != 80 {
		t.Errorf("actor position = %v, want (100, 80)", pos)
	}
}

func TestButtonRejectsEmptyIconSet(t *testing.T) {
	_, err := ui.NewButton(&uitest.FakeFactory{}, uitest.NamedIcons(iconSize), nil)
	if err == nil {
		t.Fatal("empty icon set accepted")
	}
	var cerr *errors.ConstructionError
	if !goerrors.As(err, &cerr) {
		t.Errorf("error type = %T, want *errors.ConstructionError", err)
	}
}

func TestButtonReportsMissingIcon(t *testing.T) {
	loader := uitest.NamedIcons(iconSize, "play")
	_, err := ui.NewButton(&uitest.FakeFactory{}, loader, []ui.IconSpec{
		{Name: "stop", File: "stop"},
	})
	if err == nil {
		t.Fatal("missing icon accepted")
	}
	var uerr *errors.UIError
	if !goerrors.As(err, &uerr) {
		t.Fatalf("error type = %T, want *errors.UIError", err)
	}
	if uerr.Kind != errors.KindResource {
		t.Errorf("error kind = %v, want KindResource", uerr.Kind)
	}
}

func TestButtonClickCallbackCyclesIcon(t *testing.T) {
	f := &uitest.FakeFactory{}
	b := newIconButton(t, f, "expand", "collapse")
	b.AddCallback(events.KindLeftButtonPress, func(e events.Event) bool {
		b.NextIcon()
		return true
	})

	if !b.HandleEvent(events.Event{Kind: events.KindLeftButtonPress}) {
		t.Fatal("press not consumed")
	}
	if b.CurrentIconName() != "collapse" {
		t.Errorf("icon = %q, want collapse", b.CurrentIconName())
	}
}
