// Package errors provides structured error handling for the dipy
// visualization UI. Errors in the event-dispatch path are reported
// through a global handler instead of being raised, so one failing
// callback can never stop delivery of subsequent input events.
package errors

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConstruction indicates malformed widget construction parameters,
	// such as a zero-length slider.
	KindConstruction
	// KindResource indicates a missing or unreadable icon/texture resource.
	KindResource
	// KindDispatch indicates an event-dispatch failure, such as a picked
	// actor that no tracked widget owns.
	KindDispatch
	// KindConfig indicates a theme/configuration parsing failure.
	KindConfig
	// KindRender indicates a render-surface error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConstruction:
		return "construction"
	case KindResource:
		return "resource"
	case KindDispatch:
		return "dispatch"
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// UIError represents a structured error in the UI core.
type UIError struct {
	// Op is the operation that failed (e.g., "ui.NewLineSlider").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Resource is the resource name involved, if applicable (icon file,
	// event name).
	Resource string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *UIError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s [%s] resource=%s: %v", e.Op, e.Kind, e.Resource, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *UIError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "interactor.dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ConstructionError represents invalid parameters passed to a widget
// constructor. These are contract violations and may abort setup, but
// must never occur mid-session.
type ConstructionError struct {
	// Widget is the type name of the widget being built.
	Widget string
	// Param is the offending parameter name.
	Param string
	// Reason describes the violation.
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("invalid %s parameter %q: %s", e.Widget, e.Param, e.Reason)
}

// CaptureStack returns the current call stack as a string.
// It skips the first few frames to exclude the CaptureStack call itself.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
