package api

import (
	"errors"
	"strings"
)

// defaultErrorMessage is shown whenever the backend gave no usable detail,
// including transport failures and unparseable error bodies.
const defaultErrorMessage = "요청에 실패했습니다"

const messageSeparator = " / "

// Error is a structured rejection from the backend: any non-2xx response.
// Transport failures (offline, timeout, malformed JSON) are plain errors,
// so callers can tell "server rejected request" from "could not reach
// server" with errors.As.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// Message converts any request failure into a single display-ready string.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if err != nil {
		return defaultErrorMessage
	}
	return ""
}

// extractErrorMessage reduces whichever error-body shape the backend used
// (single string, validation-error list, structured error object) to one
// human-readable message.
func extractErrorMessage(payload any) string {
	if payload == nil {
		return defaultErrorMessage
	}

	detail := payload
	if m, ok := payload.(map[string]any); ok {
		if d, exists := m["detail"]; exists && d != nil {
			detail = d
		}
	}

	switch d := detail.(type) {
	case string:
		return d
	case []any:
		var messages []string
		for _, item := range d {
			switch v := item.(type) {
			case string:
				if v != "" {
					messages = append(messages, v)
				}
			case map[string]any:
				if msg, ok := v["msg"].(string); ok && msg != "" {
					messages = append(messages, msg)
				}
			}
		}
		if len(messages) > 0 {
			return strings.Join(messages, messageSeparator)
		}
	case map[string]any:
		if msg, ok := d["msg"].(string); ok {
			return msg
		}
	}

	return defaultErrorMessage
}
