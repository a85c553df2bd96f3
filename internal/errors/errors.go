// Package errors provides structured error types and exit codes for casegen.
package errors

import (
	goerrors "errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess          = 0 // Success
	ExitRuntimeError     = 1 // Runtime error (I/O failure, etc.)
	ExitConfigError      = 2 // Configuration or specification error
	ExitEnvironmentError = 3 // Environment error (missing checkout, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
	KindMalformedSpec
	KindEnvironment
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindNotFound:
		return "not found"
	case KindValidation:
		return "validation"
	case KindMalformedSpec:
		return "malformed spec"
	case KindEnvironment:
		return "environment"
	default:
		return "runtime"
	}
}

// CasegenError is the base error type for casegen.
type CasegenError struct {
	Kind    ErrorKind
	Message string
	Node    string // Description of the offending specification node, if any
	Cause   error  // Underlying error
}

func (e *CasegenError) Error() string {
	msg := e.Message
	if e.Node != "" {
		msg = fmt.Sprintf("%s (at %q)", msg, e.Node)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *CasegenError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *CasegenError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation, KindMalformedSpec:
		return ExitConfigError
	case KindEnvironment:
		return ExitEnvironmentError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *CasegenError {
	return &CasegenError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *CasegenError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *CasegenError {
	return &CasegenError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *CasegenError {
	return Config(fmt.Sprintf(format, args...))
}

// Environment creates a new environment error.
func Environment(message string) *CasegenError {
	return &CasegenError{
		Kind:    KindEnvironment,
		Message: message,
	}
}

// Environmentf creates a new environment error with formatting.
func Environmentf(format string, args ...interface{}) *CasegenError {
	return Environment(fmt.Sprintf(format, args...))
}

// Validation creates a schema validation error wrapping the validator output.
func Validation(message string, cause error) *CasegenError {
	return &CasegenError{
		Kind:    KindValidation,
		Message: message,
		Cause:   cause,
	}
}

// MalformedSpec creates an error for a structural violation in a canonical
// specification. node is the description of the offending node and may be empty.
func MalformedSpec(node, format string, args ...interface{}) *CasegenError {
	return &CasegenError{
		Kind:    KindMalformedSpec,
		Message: "malformed spec: " + fmt.Sprintf(format, args...),
		Node:    node,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *CasegenError {
	return &CasegenError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *CasegenError {
	return &CasegenError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// KindOf returns the kind of the first CasegenError in err's chain.
// Errors of any other type report KindRuntime.
func KindOf(err error) ErrorKind {
	var ce *CasegenError
	if goerrors.As(err, &ce) {
		return ce.Kind
	}
	return KindRuntime
}

// IsMalformedSpec reports whether err is a malformed specification error.
func IsMalformedSpec(err error) bool {
	return err != nil && KindOf(err) == KindMalformedSpec
}

// IsNotFound reports whether err is a not found error.
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ce *CasegenError
	if goerrors.As(err, &ce) {
		return ce.ExitCode()
	}
	return ExitRuntimeError
}
