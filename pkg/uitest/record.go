package uitest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ranveeraggarwal/dipy/pkg/events"
	"github.com/ranveeraggarwal/dipy/pkg/graphics"
)

// recordedEvent is the on-disk form of one input event. Kinds are
// stored by name so recordings stay diffable.
type recordedEvent struct {
	Kind   string  `yaml:"kind"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	KeySym string  `yaml:"key,omitempty"`
}

// Recorder captures a stream of input events for later replay.
type Recorder struct {
	recorded []recordedEvent
}

// Record appends one event. Wrap a dispatch function with Tap to
// record transparently.
func (r *Recorder) Record(e events.Event) {
	r.recorded = append(r.recorded, recordedEvent{
		Kind:   e.Kind.String(),
		X:      e.Pos.X,
		Y:      e.Pos.Y,
		KeySym: e.KeySym,
	})
}

// Tap returns a dispatch function that records every event before
// forwarding it.
func (r *Recorder) Tap(next func(events.Event)) func(events.Event) {
	return func(e events.Event) {
		r.Record(e)
		next(e)
	}
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int { return len(r.recorded) }

// Save writes the recording as YAML.
func (r *Recorder) Save(path string) error {
	data, err := yaml.Marshal(r.recorded)
	if err != nil {
		return fmt.Errorf("encode recording: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Replay loads a YAML recording and feeds each event to dispatch in
// order. Unrecognized kinds stop the replay with an error.
func Replay(path string, dispatch func(events.Event)) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read recording: %w", err)
	}
	return ReplayData(data, dispatch)
}

// ReplayData replays an in-memory YAML recording.
func ReplayData(data []byte, dispatch func(events.Event)) error {
	var recorded []recordedEvent
	if err := yaml.Unmarshal(data, &recorded); err != nil {
		return fmt.Errorf("decode recording: %w", err)
	}
	for i, re := range recorded {
		kind, ok := events.ParseKind(re.Kind)
		if !ok {
			return fmt.Errorf("event %d: unknown kind %q", i, re.Kind)
		}
		dispatch(events.Event{
			Kind:   kind,
			Pos:    graphics.Offset{X: re.X, Y: re.Y},
			KeySym: re.KeySym,
		})
	}
	return nil
}
