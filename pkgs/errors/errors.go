package errors

import (
	"fmt"
	"strings"
)

// Error kinds for the compile pipeline
const (
	// Class resolution errors
	ErrNoMatch        = "NO_MATCH"
	ErrAmbiguousMatch = "AMBIGUOUS_MATCH"

	// Command errors
	ErrUndefinedVariable = "UNDEFINED_VARIABLE"
	ErrMalformedCommand  = "MALFORMED_COMMAND"

	// Catalog errors
	ErrCatalogLoad  = "CATALOG_LOAD_ERROR"
	ErrCatalogEmpty = "CATALOG_EMPTY"

	// Host errors
	ErrHostExec = "HOST_EXEC_ERROR"
)

// CompileError represents a structured error with a kind and context
type CompileError struct {
	Kind    string
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap allows error unwrapping
func (e *CompileError) Unwrap() error {
	return e.Cause
}

// New creates a new CompileError
func New(kind, message string) *CompileError {
	return &CompileError{
		Kind:    kind,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// Wrap creates a new CompileError wrapping an existing error
func Wrap(kind, message string, cause error) *CompileError {
	return &CompileError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context information to the error
func (e *CompileError) WithContext(key string, value interface{}) *CompileError {
	e.Context[key] = value
	return e
}

// GetContext returns context value by key
func (e *CompileError) GetContext(key string) (interface{}, bool) {
	value, exists := e.Context[key]
	return value, exists
}

// Helper constructors for the error shapes the compiler raises

// NewNoMatchError reports a class candidate that matched nothing in the catalog
func NewNoMatchError(candidate string) *CompileError {
	return New(ErrNoMatch, fmt.Sprintf("input argument '%s' could not be matched to a node class", candidate)).
		WithContext("candidate", candidate)
}

// NewAmbiguousMatchError reports a class candidate with multiple partial matches.
// The full candidate list is carried in both the message and the context.
func NewAmbiguousMatchError(candidate string, matches []string) *CompileError {
	return New(ErrAmbiguousMatch,
		fmt.Sprintf("input argument '%s' partially matched the following node classes: %s",
			candidate, strings.Join(matches, ", "))).
		WithContext("candidate", candidate).
		WithContext("matches", matches)
}

// NewUndefinedVariableError reports a push of a name never established by set
func NewUndefinedVariableError(name string) *CompileError {
	return New(ErrUndefinedVariable, fmt.Sprintf("variable '%s' was never set", name)).
		WithContext("variable", name)
}

// NewMalformedCommandError reports a keyword command with the wrong argument count
func NewMalformedCommandError(command string, got int, want string) *CompileError {
	return New(ErrMalformedCommand,
		fmt.Sprintf("command '-%s' expects %s argument(s), got %d", command, want, got)).
		WithContext("command", command).
		WithContext("args", got)
}

// NewCatalogLoadError reports a failure reading or parsing a catalog source
func NewCatalogLoadError(source string, cause error) *CompileError {
	return Wrap(ErrCatalogLoad, fmt.Sprintf("failed to load catalog from '%s'", source), cause).
		WithContext("source", source)
}

// NewHostExecError reports a failure handing the compiled program to the host
func NewHostExecError(command string, cause error) *CompileError {
	return Wrap(ErrHostExec, fmt.Sprintf("host interpreter '%s' failed", command), cause).
		WithContext("command", command)
}

// IsKind checks if an error is of a specific kind
func IsKind(err error, kind string) bool {
	if cerr, ok := err.(*CompileError); ok {
		return cerr.Kind == kind
	}
	return false
}
