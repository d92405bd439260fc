package uitest_test

import (
	"path/filepath"
	"testing"

	"github.com/ranveeraggarwal/dipy/pkg/events"
	"github.com/ranveeraggarwal/dipy/pkg/graphics"
	"github.com/ranveeraggarwal/dipy/pkg/ui"
	"github.com/ranveeraggarwal/dipy/pkg/uitest"
)

func TestRecorderRoundTrip(t *testing.T) {
	rec := &uitest.Recorder{}
	var forwarded []events.Event
	dispatch := rec.Tap(func(e events.Event) { forwarded = append(forwarded, e) })

	sent := []events.Event{
		{Kind: events.KindLeftButtonPress, Pos: graphics.Offset{X: 10, Y: 20}},
		{Kind: events.KindMouseMove, Pos: graphics.Offset{X: 15, Y: 25}},
		{Kind: events.KindLeftButtonRelease, Pos: graphics.Offset{X: 15, Y: 25}},
		{Kind: events.KindChar, KeySym: "a"},
	}
	for _, e := range sent {
		dispatch(e)
	}
	if len(forwarded) != len(sent) {
		t.Fatalf("forwarded %d events, want %d", len(forwarded), len(sent))
	}
	if rec.Len() != len(sent) {
		t.Fatalf("recorded %d events, want %d", rec.Len(), len(sent))
	}

	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := rec.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var replayed []events.Event
	if err := uitest.Replay(path, func(e events.Event) { replayed = append(replayed, e) }); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(replayed) != len(sent) {
		t.Fatalf("replayed %d events, want %d", len(replayed), len(sent))
	}
	for i, e := range replayed {
		if e != sent[i] {
			t.Errorf("event %d: got %+v, want %+v", i, e, sent[i])
		}
	}
}

func TestReplayRejectsUnknownKind(t *testing.T) {
	data := []byte("- kind: TouchDownEvent\n  x: 1\n  y: 2\n")
	err := uitest.ReplayData(data, func(events.Event) {})
	if err == nil {
		t.Fatal("unknown kind accepted")
	}
}

func TestReplayDrivesRouter(t *testing.T) {
	h := uitest.NewSceneTesterWithT(t)
	box, err := ui.NewTextBox(h.Factory, 10, 1, "type here")
	if err != nil {
		t.Fatalf("NewTextBox: %v", err)
	}
	h.Factory.Texts[0].Dim = graphics.Size{Width: 120, Height: 20}
	box.SetCenter(graphics.Offset{X: 50, Y: 50})
	h.Router.Register(box)

	data := []byte(`
- kind: LeftButtonPressEvent
  x: 60
  y: 55
- kind: CharEvent
  key: h
- kind: CharEvent
  key: i
- kind: CharEvent
  key: return
`)
	if err := uitest.ReplayData(data, h.Router.Dispatch); err != nil {
		t.Fatalf("ReplayData: %v", err)
	}
	if box.Text() != "hi" {
		t.Errorf("text = %q, want %q", box.Text(), "hi")
	}
}
