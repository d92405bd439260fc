package errors

import (
	"strings"
	"testing"
	"time"
)

func TestUIErrorString(t *testing.T) {
	err := &UIError{
		Op:   "ui.NewButton",
		Kind: KindResource,
		Err:  &ConstructionError{Widget: "Button", Param: "icons", Reason: "empty icon set"},
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
}

func TestUIErrorWithResource(t *testing.T) {
	err := &UIError{
		Op:       "scene.LoadIcon",
		Kind:     KindResource,
		Resource: "stop2.png",
		Err:      &ConstructionError{Widget: "Button", Param: "icons", Reason: "file not found"},
	}
	got := err.Error()
	want := "resource=stop2.png"
	if !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConstruction, "construction"},
		{KindResource, "resource"},
		{KindDispatch, "dispatch"},
		{KindConfig, "config"},
		{KindRender, "render"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Op:        "interactor.dispatch",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	if !strings.Contains(got, "interactor.dispatch") {
		t.Errorf("panic error string %q should contain the op", got)
	}
}

type capturingHandler struct {
	errs   []*UIError
	panics []*PanicError
}

func (h *capturingHandler) HandleError(err *UIError)    { h.errs = append(h.errs, err) }
func (h *capturingHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func TestReportSetsTimestamp(t *testing.T) {
	h := &capturingHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&UIError{Op: "test", Kind: KindDispatch})
	if len(h.errs) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(h.errs))
	}
	if h.errs[0].Timestamp.IsZero() {
		t.Error("Report should stamp a zero timestamp")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	h := &capturingHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic("boom")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("expected 1 recovered panic, got %d", len(h.panics))
	}
	if h.panics[0].Value != "boom" {
		t.Errorf("panic value = %v, want boom", h.panics[0].Value)
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&capturingHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("expected default LogHandler, got %T", DefaultHandler)
	}
}
