package nlp

import "errors"

// Common LLM client errors.
var (
	// ErrRefusal indicates the model declined to respond to the prompt.
	ErrRefusal = errors.New("the model refused to respond to this prompt")

	// ErrEmptyResponse indicates the model returned an empty response.
	ErrEmptyResponse = errors.New("the model returned an empty response")
)

// RefusalError represents a blocked or declined model response. Pipelines
// treat it as non-fatal and substitute a fixed fallback answer.
type RefusalError struct {
	Message string
}

func (e *RefusalError) Error() string {
	if e.Message == "" {
		return ErrRefusal.Error()
	}
	return e.Message
}

// Is implements errors.Is support for RefusalError so wrapped errors match.
func (e *RefusalError) Is(target error) bool {
	_, ok := target.(*RefusalError)
	return ok
}

// NewRefusalError creates a new refusal error.
func NewRefusalError(message string) *RefusalError {
	return &RefusalError{Message: message}
}

// EmptyResponseError represents a response with no choices or no content.
type EmptyResponseError struct {
	Message string
}

func (e *EmptyResponseError) Error() string {
	if e.Message == "" {
		return ErrEmptyResponse.Error()
	}
	return e.Message
}

// Is implements errors.Is support for EmptyResponseError.
func (e *EmptyResponseError) Is(target error) bool {
	_, ok := target.(*EmptyResponseError)
	return ok
}

// NewEmptyResponseError creates a new empty response error.
func NewEmptyResponseError(message string) *EmptyResponseError {
	return &EmptyResponseError{Message: message}
}

// IsRefusal reports whether err represents a refused or empty model
// response, in wrapped form or not.
func IsRefusal(err error) bool {
	return errors.Is(err, &RefusalError{}) || errors.Is(err, &EmptyResponseError{})
}
