package errors

import (
	"fmt"
	"strings"
)

// ErrorType classifies a KureError for programmatic dispatch.
type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeResource
	ErrorTypePatch
	ErrorTypeParse
	ErrorTypeFile
	ErrorTypeConfiguration
)

func (t ErrorType) String() string {
	switch t {
	case ErrorTypeValidation:
		return "validation"
	case ErrorTypeResource:
		return "resource"
	case ErrorTypePatch:
		return "patch"
	case ErrorTypeParse:
		return "parse"
	case ErrorTypeFile:
		return "file"
	case ErrorTypeConfiguration:
		return "configuration"
	default:
		return "unknown"
	}
}

// KureError is implemented by every structured error this package creates.
// Suggestion returns operator-facing remediation text; Context returns
// structured fields for logging or JSON serialization.
type KureError interface {
	error
	Type() ErrorType
	Suggestion() string
	Context() map[string]interface{}
}

// errorString is a trivial implementation of error, distinct per call.
type errorString struct {
	s string
}

func (e *errorString) Error() string { return e.s }

// New returns an error that formats as the given text.
func New(message string) error {
	return &errorString{message}
}

// Errorf returns an error formatted per fmt.Sprintf semantics. Unlike
// fmt.Errorf it never treats %w specially; use Wrap/Wrapf to chain a cause.
func Errorf(format string, args ...interface{}) error {
	return &errorString{fmt.Sprintf(format, args...)}
}

// wrapError adds context to an existing error while preserving it for
// errors.Is/errors.As unwrapping.
type wrapError struct {
	cause   error
	message string
}

func (e *wrapError) Error() string { return e.message + ": " + e.cause.Error() }
func (e *wrapError) Unwrap() error { return e.cause }

// Wrap annotates err with message. Returns nil if err is nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrapError{cause: err, message: message}
}

// Wrapf annotates err with a formatted message. Returns nil if err is nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrapError{cause: err, message: fmt.Sprintf(format, args...)}
}

var (
	ErrGVKNotFound   = New("could not determine GroupVersionKind")
	ErrGVKNotAllowed = New("GroupVersionKind is not allowed")
	ErrNilObject     = New("provided object is nil")

	ErrNilDeployment = New("deployment is nil")
	ErrNilPod        = New("pod is nil")
	ErrNilService    = New("service is nil")
	ErrNilConfigMap  = New("configmap is nil")
)

// ValidationError reports a field that failed validation, with the set of
// values that would have been accepted.
type ValidationError struct {
	Field       string
	Value       string
	Component   string
	ValidValues []string
	cause       error
}

func NewValidationError(field, value, component string, validValues []string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Component: component, ValidValues: validValues}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s for %s: %s", e.Field, e.Component, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.cause }
func (e *ValidationError) Type() ErrorType { return ErrorTypeValidation }

func (e *ValidationError) Suggestion() string {
	if len(e.ValidValues) == 0 {
		return fmt.Sprintf("provide a valid value for %s", e.Field)
	}
	return fmt.Sprintf("valid values are: %s", strings.Join(e.ValidValues, ", "))
}

func (e *ValidationError) Context() map[string]interface{} {
	return map[string]interface{}{
		"field":     e.Field,
		"value":     e.Value,
		"component": e.Component,
	}
}

// ResourceError reports a problem locating or validating a Kubernetes
// resource.
type ResourceError struct {
	Kind      string
	Name      string
	Namespace string
	Field     string
	Message   string
	Available []string
	notFound  bool
	cause     error
}

func ResourceNotFoundError(kind, name, namespace string, available []string) *ResourceError {
	return &ResourceError{Kind: kind, Name: name, Namespace: namespace, Available: available, notFound: true}
}

func ResourceValidationError(kind, name, field, message string, cause error) *ResourceError {
	return &ResourceError{Kind: kind, Name: name, Field: field, Message: message, cause: cause}
}

func (e *ResourceError) Error() string {
	if e.notFound {
		return fmt.Sprintf("%s '%s' not found in namespace '%s'", e.Kind, e.Name, e.Namespace)
	}
	return fmt.Sprintf("validation failed for %s '%s' field '%s': %s", e.Kind, e.Name, e.Field, e.Message)
}

func (e *ResourceError) Unwrap() error   { return e.cause }
func (e *ResourceError) Type() ErrorType { return ErrorTypeResource }

func (e *ResourceError) Suggestion() string {
	if e.notFound {
		if len(e.Available) == 0 {
			return "check the resource name and namespace"
		}
		return fmt.Sprintf("available resources: %s", strings.Join(e.Available, ", "))
	}
	return fmt.Sprintf("check field '%s' on %s '%s'", e.Field, e.Kind, e.Name)
}

func (e *ResourceError) Context() map[string]interface{} {
	return map[string]interface{}{
		"kind":      e.Kind,
		"name":      e.Name,
		"namespace": e.Namespace,
		"field":     e.Field,
	}
}

// PatchError reports a failed patch application.
type PatchError struct {
	Operation string
	Path      string
	Resource  string
	Reason    string
	cause     error
}

func NewPatchError(operation, path, resource, reason string, cause error) *PatchError {
	return &PatchError{Operation: operation, Path: path, Resource: resource, Reason: reason, cause: cause}
}

func (e *PatchError) Error() string {
	return fmt.Sprintf("patch operation '%s' failed on resource '%s' at path '%s': %s", e.Operation, e.Resource, e.Path, e.Reason)
}

func (e *PatchError) Unwrap() error   { return e.cause }
func (e *PatchError) Type() ErrorType { return ErrorTypePatch }

func (e *PatchError) Suggestion() string {
	return fmt.Sprintf("verify path '%s' exists, or run in graceful mode to skip failing patches", e.Path)
}

func (e *PatchError) Context() map[string]interface{} {
	return map[string]interface{}{
		"operation": e.Operation,
		"path":      e.Path,
		"resource":  e.Resource,
	}
}

// ParseError reports a syntax error at a specific location within a file.
type ParseError struct {
	File    string
	Message string
	Line    int
	Column  int
	cause   error
}

func NewParseError(file, message string, line, column int, cause error) *ParseError {
	return &ParseError{File: file, Message: message, Line: line, Column: column, cause: cause}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.File, e.Line, e.Column, e.Message)
}

func (e *ParseError) Unwrap() error   { return e.cause }
func (e *ParseError) Type() ErrorType { return ErrorTypeParse }

func (e *ParseError) Suggestion() string {
	if strings.HasSuffix(e.File, ".yaml") || strings.HasSuffix(e.File, ".yml") {
		return fmt.Sprintf("check the YAML syntax near line %d", e.Line)
	}
	if strings.HasSuffix(e.File, ".json") {
		return fmt.Sprintf("check the JSON syntax near line %d", e.Line)
	}
	return fmt.Sprintf("check the syntax near line %d", e.Line)
}

func (e *ParseError) Context() map[string]interface{} {
	return map[string]interface{}{
		"file":   e.File,
		"line":   e.Line,
		"column": e.Column,
	}
}

// FileError reports a failed filesystem operation.
type FileError struct {
	Operation string
	Path      string
	Reason    string
	cause     error
}

func NewFileError(operation, path, reason string, cause error) *FileError {
	return &FileError{Operation: operation, Path: path, Reason: reason, cause: cause}
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file %s failed for '%s': %s", e.Operation, e.Path, e.Reason)
}

func (e *FileError) Unwrap() error   { return e.cause }
func (e *FileError) Type() ErrorType { return ErrorTypeFile }

func (e *FileError) Suggestion() string {
	if e.cause == nil {
		return fmt.Sprintf("verify '%s' is accessible", e.Path)
	}
	msg := e.cause.Error()
	switch {
	case strings.Contains(msg, "permission denied"):
		return "Check file permissions and ownership"
	case strings.Contains(msg, "no such file"):
		return "Verify the file path exists"
	case strings.Contains(msg, "is a directory"):
		return fmt.Sprintf("'%s' is a directory, specify a file instead", e.Path)
	case strings.Contains(msg, "no space left on device"):
		return "Check available disk space"
	default:
		return fmt.Sprintf("verify '%s' is accessible", e.Path)
	}
}

func (e *FileError) Context() map[string]interface{} {
	return map[string]interface{}{
		"operation": e.Operation,
		"path":      e.Path,
	}
}

// ConfigError reports an invalid configuration field.
type ConfigError struct {
	File        string
	Field       string
	Value       string
	Message     string
	ValidValues []string
}

func NewConfigError(file, field, value, message string, validValues []string) *ConfigError {
	return &ConfigError{File: file, Field: field, Value: value, Message: message, ValidValues: validValues}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error in %s for field '%s' with value '%s': %s", e.File, e.Field, e.Value, e.Message)
}

func (e *ConfigError) Type() ErrorType { return ErrorTypeConfiguration }

func (e *ConfigError) Suggestion() string {
	if len(e.ValidValues) == 0 {
		return fmt.Sprintf("provide a valid value for %s", e.Field)
	}
	return fmt.Sprintf("valid values are: %s", strings.Join(e.ValidValues, ", "))
}

func (e *ConfigError) Context() map[string]interface{} {
	return map[string]interface{}{
		"file":  e.File,
		"field": e.Field,
		"value": e.Value,
	}
}

// IsType reports whether err's chain contains a KureError of type t.
func IsType(err error, t ErrorType) bool {
	kerr := GetKureError(err)
	return kerr != nil && kerr.Type() == t
}

// IsKureError reports whether err's chain contains a KureError.
func IsKureError(err error) bool {
	return GetKureError(err) != nil
}

// GetKureError extracts the first KureError in err's chain, or nil.
func GetKureError(err error) KureError {
	for err != nil {
		if kerr, ok := err.(KureError); ok {
			return kerr
		}
		switch u := err.(type) {
		case interface{ Unwrap() error }:
			err = u.Unwrap()
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				if kerr := GetKureError(inner); kerr != nil {
					return kerr
				}
			}
			return nil
		default:
			return nil
		}
	}
	return nil
}
