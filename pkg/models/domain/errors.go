package domain

import "fmt"

// ErrorKind classifies an ExplanationError.
type ErrorKind int

const (
	ErrMissingArgument ErrorKind = iota
	ErrWrongVariant
	ErrHomogeneity
	ErrLocalization
	ErrResource
	ErrUnknownSelector
	ErrRender
)

var errorKindNames = map[ErrorKind]string{
	ErrMissingArgument: "missing argument",
	ErrWrongVariant:    "wrong variant",
	ErrHomogeneity:     "homogeneity violation",
	ErrLocalization:    "localization",
	ErrResource:        "unresolved resource",
	ErrUnknownSelector: "unknown selector",
	ErrRender:          "render",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ExplanationError is the single error type raised while building or rendering explanations.
type ExplanationError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ExplanationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExplanationError) Unwrap() error {
	return e.Err
}

// NewError builds an ExplanationError with a formatted message.
func NewError(kind ErrorKind, format string, args ...any) *ExplanationError {
	return &ExplanationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError builds an ExplanationError around an underlying cause.
func WrapError(kind ErrorKind, err error, format string, args ...any) *ExplanationError {
	return &ExplanationError{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}
