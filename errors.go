package nlpearl

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors. The typed errors below unwrap to these so callers can
// use errors.Is without caring about the concrete type.
var (
	// ErrAPIKeyNotSet is returned when no API key is configured.
	ErrAPIKeyNotSet = errors.New("API key is not set")

	// ErrVersionMismatch is returned when an operation is not available in the active API version.
	ErrVersionMismatch = errors.New("operation not available in this API version")

	// ErrEmptyInput is returned when a required input (identifier, phone number, list) is empty.
	ErrEmptyInput = errors.New("empty input")

	// ErrRangeTooLong is returned when an analytics date range exceeds MaxAnalyticsDays.
	ErrRangeTooLong = errors.New("date range too long")

	// ErrNegativeRange is returned when a date range ends before it starts.
	ErrNegativeRange = errors.New("date range ends before it starts")
)

// ErrorCategory classifies errors by how they should be handled.
type ErrorCategory string

const (
	// ErrorTransient indicates the error is temporary and the caller may try again.
	// Examples: rate limits, temporary network issues, server overload.
	// The SDK itself never retries.
	ErrorTransient ErrorCategory = "transient"

	// ErrorPermanent indicates the error is not recoverable by repeating the call.
	// Examples: missing API key, wrong API version, invalid credentials.
	ErrorPermanent ErrorCategory = "permanent"

	// ErrorUserInput indicates the caller provided invalid input that must be corrected.
	// Examples: empty lead list, analytics range over 90 days, unknown identifier.
	ErrorUserInput ErrorCategory = "user_input"
)

// CategorizedError is an error that provides information about how it should be handled.
type CategorizedError interface {
	error
	Category() ErrorCategory
	Retryable() bool // convenience: returns true if Category == ErrorTransient
	StatusCode() int // HTTP status code if applicable, 0 otherwise
}

// ConfigurationError is returned when an operation is attempted without an API key.
// It is always raised before any other validation or network access.
type ConfigurationError struct {
	Op string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: API key is not set; call nlpearl.SetAPIKey or set client.Config.APIKey", e.Op)
}

// Unwrap returns ErrAPIKeyNotSet.
func (e *ConfigurationError) Unwrap() error { return ErrAPIKeyNotSet }

// Category returns ErrorPermanent.
func (e *ConfigurationError) Category() ErrorCategory { return ErrorPermanent }

// Retryable returns false.
func (e *ConfigurationError) Retryable() bool { return false }

// StatusCode returns 0.
func (e *ConfigurationError) StatusCode() int { return 0 }

// VersionMismatchError is returned when an operation is invoked under an API
// version it does not exist in. No request is sent.
type VersionMismatchError struct {
	Op       string
	Required Version
	Active   Version
	// Alternative names the operation to use under the active version, if any.
	Alternative string
}

func (e *VersionMismatchError) Error() string {
	msg := fmt.Sprintf("%s is only available in API %s, but the active version is %s; set nlpearl.SetVersion(%q) or client.Config.Version to use it",
		e.Op, e.Required, e.Active, e.Required)
	if e.Alternative != "" {
		msg += fmt.Sprintf(", or use %s under %s", e.Alternative, e.Active)
	}
	return msg
}

// Unwrap returns ErrVersionMismatch.
func (e *VersionMismatchError) Unwrap() error { return ErrVersionMismatch }

// Category returns ErrorPermanent.
func (e *VersionMismatchError) Category() ErrorCategory { return ErrorPermanent }

// Retryable returns false.
func (e *VersionMismatchError) Retryable() bool { return false }

// StatusCode returns 0.
func (e *VersionMismatchError) StatusCode() int { return 0 }

// InvalidArgumentError is returned for a missing or malformed parameter.
// It is detected client-side, before any network access.
type InvalidArgumentError struct {
	Op     string
	Arg    string
	Reason string
	Cause  error // sentinel or parse error, may be nil
}

func (e *InvalidArgumentError) Error() string {
	if e.Arg == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("%s: invalid %s: %s", e.Op, e.Arg, e.Reason)
}

// Unwrap returns the underlying cause.
func (e *InvalidArgumentError) Unwrap() error { return e.Cause }

// Category returns ErrorUserInput.
func (e *InvalidArgumentError) Category() ErrorCategory { return ErrorUserInput }

// Retryable returns false.
func (e *InvalidArgumentError) Retryable() bool { return false }

// StatusCode returns 0.
func (e *InvalidArgumentError) StatusCode() int { return 0 }

// TransportError is returned when the request could not be completed or the
// server answered with a non-2xx status.
type TransportError struct {
	Op     string
	Method string
	URL    string
	Code   int    // HTTP status code, 0 for network failures
	Body   string // response body, truncated
	Cat    ErrorCategory
	Cause  error
}

func (e *TransportError) Error() string {
	if e.Code == 0 {
		return fmt.Sprintf("%s: %s %s: %v", e.Op, e.Method, e.URL, e.Cause)
	}
	msg := fmt.Sprintf("%s: %s %s: %d %s", e.Op, e.Method, e.URL, e.Code, http.StatusText(e.Code))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error { return e.Cause }

// Category returns the error category.
func (e *TransportError) Category() ErrorCategory { return e.Cat }

// Retryable returns true if the error is transient.
func (e *TransportError) Retryable() bool { return e.Cat == ErrorTransient }

// StatusCode returns the HTTP status code, or 0 if not applicable.
func (e *TransportError) StatusCode() int { return e.Code }

// DecodeError is returned when a response body that must be JSON is not.
type DecodeError struct {
	Op    string
	Body  string
	Cause error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: response is not valid JSON: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: response is not valid JSON", e.Op)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error { return e.Cause }

// Category returns ErrorPermanent.
func (e *DecodeError) Category() ErrorCategory { return ErrorPermanent }

// Retryable returns false.
func (e *DecodeError) Retryable() bool { return false }

// StatusCode returns 0.
func (e *DecodeError) StatusCode() int { return 0 }

// CategorizeStatus determines the error category from an HTTP status code.
func CategorizeStatus(code int) ErrorCategory {
	switch {
	case code == 429:
		return ErrorTransient // Rate limited
	case code >= 500 && code < 600:
		return ErrorTransient // Server error
	case code == 401 || code == 403:
		return ErrorPermanent // Authentication/authorization
	case code == 400 || code == 404 || code == 409 || code == 422:
		return ErrorUserInput // Bad request or not found
	default:
		return ErrorPermanent
	}
}

// IsTransient returns true if the error is categorized as transient.
// It checks if the error or any wrapped error implements CategorizedError.
func IsTransient(err error) bool {
	return categoryOf(err) == ErrorTransient
}

// IsPermanent returns true if the error is categorized as permanent.
func IsPermanent(err error) bool {
	return categoryOf(err) == ErrorPermanent
}

// IsUserInput returns true if the error is categorized as user input error.
func IsUserInput(err error) bool {
	return categoryOf(err) == ErrorUserInput
}

func categoryOf(err error) ErrorCategory {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.Category()
	}
	return ""
}

// StatusCodeOf returns the HTTP status code from a categorized error, or 0.
func StatusCodeOf(err error) int {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.StatusCode()
	}
	return 0
}

// IsConfigurationError reports whether err is, or wraps, a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// IsVersionMismatch reports whether err is, or wraps, a *VersionMismatchError.
func IsVersionMismatch(err error) bool {
	var target *VersionMismatchError
	return errors.As(err, &target)
}

// IsInvalidArgument reports whether err is, or wraps, an *InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var target *InvalidArgumentError
	return errors.As(err, &target)
}

// IsTransportError reports whether err is, or wraps, a *TransportError.
func IsTransportError(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// IsDecodeError reports whether err is, or wraps, a *DecodeError.
func IsDecodeError(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}
