package rewrite

import (
	"errors"
	"strings"
)

// FallbackMessage is shown when a failure carries no message of its own.
const FallbackMessage = "Something went wrong."

// ValidationError rejects input before any request is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ErrEmptyTopic is returned for an empty or whitespace-only topic.
var ErrEmptyTopic = &ValidationError{Message: "Please enter a topic."}

// HTTPError reports a non-2xx response. Its message is the raw response body.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string { return e.Body }

// NetworkError wraps a request that never produced a usable response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// MalformedResponseError wraps a 2xx body that could not be decoded.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// ValidateTopic trims raw and rejects an empty result.
func ValidateTopic(raw string) (string, error) {
	topic := strings.TrimSpace(raw)
	if topic == "" {
		return "", ErrEmptyTopic
	}
	return topic, nil
}

// Message maps err onto the single line shown to the user.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return FallbackMessage
}

// IsValidation reports whether err was raised before any request was sent.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
