package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned for uploads that are neither PDF nor DOCX.
	ErrUnsupportedFormat = errors.New("unsupported file format, only PDF and DOCX are supported")
	// ErrProviderTimeout marks an LLM call that ran past its deadline.
	ErrProviderTimeout = errors.New("llm provider timed out")
	// ErrInvalidRequest marks a well-formed request whose content fails validation.
	ErrInvalidRequest = errors.New("request validation failed")
)

// ClientInputError is a problem with what the caller sent. It maps to a 4xx.
type ClientInputError struct {
	Message string
	Err     error
}

func NewClientInputError(message string, err error) *ClientInputError {
	return &ClientInputError{Message: message, Err: err}
}

func (e *ClientInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ClientInputError) Unwrap() error {
	return e.Err
}

// ExtractionError means the uploaded document produced no usable text.
// It is reported to the caller the same way as a ClientInputError.
type ExtractionError struct {
	Filename string
	Err      error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not extract text from %q: %v", e.Filename, e.Err)
	}
	return fmt.Sprintf("could not extract text from %q", e.Filename)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// SchemaValidationError means a JSON payload did not match the
// CandidateRecord shape. Raw holds the payload for diagnosis and must not be
// sent to the caller.
type SchemaValidationError struct {
	Path string
	Raw  string
	Err  error
}

func (e *SchemaValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("candidate record invalid at %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("candidate record invalid: %v", e.Err)
}

func (e *SchemaValidationError) Unwrap() error {
	return e.Err
}

// ProviderError wraps a failed LLM call: transport, HTTP status, rate limit,
// empty completion or deadline.
type ProviderError struct {
	Provider   string
	StatusCode int // zero when no HTTP status was received
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s provider: HTTP %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s provider: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ConfigError is a missing or inconsistent configuration value.
type ConfigError struct {
	Key string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Key, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
