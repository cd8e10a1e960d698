package client

import (
	"encoding/json"
	"fmt"
)

// APIError is any non-2xx answer from the service, carrying the
// server-provided detail message when one could be decoded.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// parseErrorDetail digs a human-readable message out of an error body.
// The service answers either {"detail": "..."} or a field-error object
// like {"status": "invalid"} / {"title": ["This field is required."]}.
func parseErrorDetail(body []byte) string {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}

	if detail, ok := fields["detail"].(string); ok {
		return detail
	}

	for _, v := range fields {
		switch msg := v.(type) {
		case string:
			return msg
		case []any:
			if len(msg) > 0 {
				if s, ok := msg[0].(string); ok {
					return s
				}
			}
		}
	}
	return ""
}
