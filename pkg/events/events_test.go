package events

import "testing"

func TestKindNamesRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		name := k.String()
		if name == "UnknownEvent" {
			t.Errorf("kind %d has no name", k)
			continue
		}
		got, ok := ParseKind(name)
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := ParseKind("TouchDownEvent"); ok {
		t.Error("unknown name parsed")
	}
}

func TestKindClassification(t *testing.T) {
	presses := []Kind{KindLeftButtonPress, KindRightButtonPress, KindMiddleButtonPress}
	for _, k := range presses {
		if !k.IsPress() || k.IsRelease() || k.IsKeyboard() {
			t.Errorf("%v misclassified", k)
		}
	}
	releases := []Kind{KindLeftButtonRelease, KindRightButtonRelease, KindMiddleButtonRelease}
	for i, k := range releases {
		if !k.IsRelease() {
			t.Errorf("%v not a release", k)
		}
		if k.PressKind() != presses[i] {
			t.Errorf("%v.PressKind() = %v, want %v", k, k.PressKind(), presses[i])
		}
	}
	for _, k := range []Kind{KindChar, KindKeyPress, KindKeyRelease} {
		if !k.IsKeyboard() {
			t.Errorf("%v not keyboard", k)
		}
	}
	if KindMouseMove.IsPress() || KindMouseMove.IsRelease() || KindMouseMove.IsKeyboard() {
		t.Error("MouseMove misclassified")
	}
}
