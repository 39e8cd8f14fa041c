// Package errors is a drop-in replacement for the standard library errors package that annotates errors with
// structured [slog.Attr] and the source location where the error was created or wrapped.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// annotatedError carries a message, optional annotations and the source location of its origin.
type annotatedError struct {
	msg    string
	cause  error
	attrs  []slog.Attr
	source string
}

func (e *annotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.cause
}

// callerSource returns file:line of the function calling into this package.
func callerSource() string {
	// Skip callerSource and the exported function in this package.
	_, file, line, ok := runtime.Caller(2) //nolint:mnd // see above
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", file, line)
}

// NewSentinel creates an error without source location meant to be declared as a package level variable.
func NewSentinel(msg string) error {
	return errors.New(msg) //nolint:err113 // this is the sentinel constructor
}

// New creates an error annotated with the caller's source location.
func New(msg string, attrs ...slog.Attr) error {
	return &annotatedError{
		msg:    msg,
		cause:  nil,
		attrs:  attrs,
		source: callerSource(),
	}
}

// Wrap annotates err with msg, attrs, and the caller's source location. Wrapping a nil error returns nil.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	return &annotatedError{
		msg:    msg,
		cause:  err,
		attrs:  attrs,
		source: callerSource(),
	}
}

// DecoratePanic converts a recovered panic value into an error annotated with the panicking location.
func DecoratePanic(recovered any) error {
	if recovered == nil {
		return nil
	}
	return &annotatedError{
		msg:    fmt.Sprintf("panic: %v", recovered),
		cause:  nil,
		attrs:  nil,
		source: panicSource(),
	}
}

// panicSource walks the stack past the runtime panic frames to find the location that panicked.
func panicSource() string {
	pcs := make([]uintptr, 32)   //nolint:mnd // deep enough for the runtime panic frames
	n := runtime.Callers(3, pcs) //nolint:mnd // skip runtime.Callers, panicSource, and DecoratePanic
	frames := runtime.CallersFrames(pcs[:n])
	sawPanic := false
	for {
		frame, more := frames.Next()
		if strings.HasPrefix(frame.Function, "runtime.") {
			if frame.Function == "runtime.gopanic" {
				sawPanic = true
			}
		} else if sawPanic {
			return fmt.Sprintf("%s:%d", frame.File, frame.Line)
		}
		if !more {
			return ""
		}
	}
}

// SlogError returns a [slog.Attr] describing err with its message, collected annotations, and source location
// of the outermost annotated error.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	var (
		annotations []any
		source      string
	)
	collectAnnotations(err, &annotations, &source)
	attrs := []any{slog.String("message", err.Error())}
	if len(annotations) > 0 {
		attrs = append(attrs, slog.Group("annotations", annotations...))
	}
	if source != "" {
		attrs = append(attrs, slog.String("source", source))
	}
	return slog.Group("error", attrs...)
}

func collectAnnotations(err error, annotations *[]any, source *string) {
	if err == nil {
		return
	}
	switch e := err.(type) { //nolint:errorlint // walking the tree by hand
	case *annotatedError:
		for _, a := range e.attrs {
			*annotations = append(*annotations, a)
		}
		if *source == "" {
			*source = e.source
		}
		collectAnnotations(e.cause, annotations, source)
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			collectAnnotations(inner, annotations, source)
		}
	case interface{ Unwrap() error }:
		collectAnnotations(e.Unwrap(), annotations, source)
	}
}

// Is reports whether any error in err's tree matches target. See [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target. See [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err. See [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join returns an error that wraps the given errors. See [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}
