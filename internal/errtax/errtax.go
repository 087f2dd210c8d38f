// Package errtax implements the detector's wire-form error taxonomy
// (spec.md §6) and the three failure bands used to decide whether an
// error aborts the run, skips one service, or only downgrades confidence
// (spec.md §7).
package errtax

import (
	"errors"
	"fmt"
)

// Kind is the wire-form error kind from spec.md §6.
type Kind string

const (
	KindAPIError           Kind = "ApiError"
	KindAuthenticationError Kind = "AuthenticationError"
	KindTimeoutError       Kind = "TimeoutError"
	KindRateLimitError     Kind = "RateLimitError"
	KindInvalidResponse    Kind = "InvalidResponse"
	KindConfigurationError Kind = "ConfigurationError"
	KindNetworkError       Kind = "NetworkError"
	KindParseError         Kind = "ParseError"
	KindOther              Kind = "Other"

	// Fatal-to-run kinds not covered by the LLM/package-index wire form
	// but needed by the pipeline orchestrator.
	KindPathNotFound        Kind = "PathNotFound"
	KindNotADirectory       Kind = "NotADirectory"
	KindRepositoryTooLarge  Kind = "RepositoryTooLarge"
	KindRegistryMisconfigured Kind = "RegistryMisconfigured"
	KindCancelled           Kind = "Cancelled"

	// Fatal-to-service: no candidate stack matched this service's files.
	KindNoStackDetected Kind = "NoStackDetected"
)

// Band classifies an error's propagation policy (spec.md §7).
type Band int

const (
	// BandFatalToRun aborts the whole pipeline run.
	BandFatalToRun Band = iota
	// BandFatalToService skips the current service only.
	BandFatalToService
	// BandRecoverableInPhase downgrades confidence and continues.
	BandRecoverableInPhase
)

// Error is the detector's structured error type: kind, message, optional
// context, and an optional wrapped cause.
type Error struct {
	Kind       Kind
	Message    string
	Context    map[string]any
	Cause      error
	StatusCode int // ApiError only
	Seconds    int // TimeoutError only
	RetryAfter int // RateLimitError only, 0 = unspecified
	RawResponse string // InvalidResponse only
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

// WithContext attaches a context key/value and returns e for chaining.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

func New(kind Kind, message string) *Error { return &Error{Kind: kind, Message: message} }

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Band returns the propagation band for a given Kind, per spec.md §7.
func (k Kind) Band() Band {
	switch k {
	case KindPathNotFound, KindNotADirectory, KindRepositoryTooLarge, KindRegistryMisconfigured, KindCancelled:
		return BandFatalToRun
	case KindNoStackDetected:
		return BandFatalToService
	case KindTimeoutError, KindRateLimitError, KindParseError, KindInvalidResponse:
		return BandRecoverableInPhase
	case KindAPIError, KindAuthenticationError, KindConfigurationError, KindNetworkError, KindOther:
		return BandRecoverableInPhase
	default:
		return BandRecoverableInPhase
	}
}

// BandOf extracts the band of an arbitrary error, treating any non-*Error
// as fatal-to-service (conservative default for unexpected failures
// inside a service phase).
func BandOf(err error) Band {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind.Band()
	}
	return BandFatalToService
}

// IsFatalToRun reports whether err must abort the whole pipeline.
func IsFatalToRun(err error) bool {
	return err != nil && BandOf(err) == BandFatalToRun
}
