package compiler

import (
	"fmt"
	"strings"

	kerrors "github.com/go-kure/kure/pkg/errors"
)

// LoadError identifies one of the package-load failure kinds the data model
// invariant enumerates: a required file is missing or one of the paired
// schema/example files is malformed.
type LoadError struct {
	Kind   string // NoSpec, InvalidSpec, NoMain, InvalidFormat, NoSchema, InvalidSchema, NoExample, InvalidExample
	Path   string
	cause  error
}

func newLoadError(kind, path string, cause error) *LoadError {
	return &LoadError{Kind: kind, Path: path, cause: cause}
}

func (e *LoadError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

func (e *LoadError) Unwrap() error { return e.cause }

// CompileError identifies one of the compilation-time failure kinds: input
// supplied or required without a matching validator, or a schema violation.
type CompileError struct {
	Kind   string // NoInput, NoValidator, InvalidInput, NoTarget, InvalidOutput
	Detail string
	cause  error
}

func newCompileError(kind, detail string, cause error) *CompileError {
	return &CompileError{Kind: kind, Detail: detail, cause: cause}
}

func (e *CompileError) Error() string {
	if e.Detail == "" {
		return e.Kind
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *CompileError) Unwrap() error { return e.cause }

// Frame is one file:begin-end location in a RenderError's trace.
type Frame struct {
	Desc  string
	File  string
	Begin string
	End   string
}

func (f Frame) String() string {
	return fmt.Sprintf("%s @ %s:%s-%s", f.Desc, f.File, f.Begin, f.End)
}

// RenderError reports a template evaluation failure: syntax error,
// unresolved import, callable runtime error, or non-JSON output.
type RenderError struct {
	Message string
	Trace   []Frame
}

func newRenderError(message string, trace []Frame) *RenderError {
	return &RenderError{Message: message, Trace: trace}
}

func (e *RenderError) Error() string {
	if len(e.Trace) == 0 {
		return e.Message
	}
	frames := make([]string, len(e.Trace))
	for i, f := range e.Trace {
		frames[i] = f.String()
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(frames, "; "))
}

// IsCriticalError reports whether err aborts package loading entirely, as
// opposed to the two local-recovery spots the design allows (a missing
// optional schema/example, and a CRD that fails to parse and is retried as
// a dynamic object — neither of which is represented as an error value).
func IsCriticalError(err error) bool {
	if err == nil {
		return false
	}
	var le *LoadError
	if kerrors.GetKureError(err) != nil {
		return true
	}
	if asLoadError(err, &le) {
		return true
	}
	return true
}

func asLoadError(err error, target **LoadError) bool {
	for err != nil {
		if le, ok := err.(*LoadError); ok {
			*target = le
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
