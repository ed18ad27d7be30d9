package aiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingAPIKey is returned before any network call when no key is configured.
	ErrMissingAPIKey = errors.New("AI API key not configured")
	// ErrInvalidResponseFormat covers bodies that are not the expected JSON
	// document as well as plans that fail shape validation.
	ErrInvalidResponseFormat = errors.New("invalid AI response format")
	// ErrRateLimited is returned when the local limiter refuses the call.
	ErrRateLimited = errors.New("AI request rate limit exceeded")
)

// ServiceError is a non-2xx answer from the completion service.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// newServiceError extracts a readable message from an error body. Supported
// shapes are {"error":"..."}, {"error":{"message":"..."}} and {"message":"..."}.
func newServiceError(status int, body []byte) *ServiceError {
	msg := extractErrorMessage(body)
	if msg == "" {
		msg = fmt.Sprintf("AI service returned status %d", status)
	}
	return &ServiceError{StatusCode: status, Message: msg}
}

func extractErrorMessage(body []byte) string {
	var envelope struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if len(envelope.Error) > 0 {
		var s string
		if err := json.Unmarshal(envelope.Error, &s); err == nil && strings.TrimSpace(s) != "" {
			return s
		}
		var nested struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(envelope.Error, &nested); err == nil && nested.Message != "" {
			return nested.Message
		}
	}
	return envelope.Message
}
