// Package errors provides structured error reporting for the framework.
//
// The engine is a synchronous in-process traversal; it has no recoverable
// error taxonomy in the usual sense. What flows through here is either a
// genuine resource failure (font parsing, theme files) or a programming
// contract violation detected defensively (a dangling focus path, a
// negative allocation). Contract violations are reported and then degraded
// gracefully at the call site, never surfaced to end users.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindContract indicates a programming-contract violation.
	KindContract
	// KindLayout indicates a layout negotiation failure.
	KindLayout
	// KindRender indicates a drawing error.
	KindRender
	// KindFont indicates a text shaping or font loading error.
	KindFont
	// KindTheme indicates a theme file error.
	KindTheme
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindContract:
		return "contract"
	case KindLayout:
		return "layout"
	case KindRender:
		return "render"
	case KindFont:
		return "font"
	case KindTheme:
		return "theme"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// UIError represents a structured error in the framework.
type UIError struct {
	// Op is the operation that failed (e.g., "focus.Manager.Set").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *UIError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *UIError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "view.View.Click").
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

// ErrorHandler receives errors reported by the framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *UIError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
