package api

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrNoData is returned by Unmarshal when the response carried no body.
var ErrNoData = errors.New("no response data")

// Response is the uniform result of every API call. Callers branch on Error
// instead of handling exceptions; the layer itself never returns a Go error.
//
// Status is the HTTP status, or the synthetic 500 for network-level failures
// where no HTTP status exists.
type Response struct {
	Status  int
	Data    json.RawMessage
	Error   string
	Message string
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Unauthorized reports the 401 that screens must answer with a forced logout
// and a return to the login entry point.
func (r *Response) Unauthorized() bool {
	return r.Status == http.StatusUnauthorized
}

// Unmarshal decodes the response body into v.
func (r *Response) Unmarshal(v any) error {
	if len(r.Data) == 0 {
		return ErrNoData
	}
	return json.Unmarshal(r.Data, v)
}

// FieldErrors unpacks validation errors of the form
// {"field": ["message", ...], ...} into a field→first-message map for inline
// form display. Non-array values and unparseable bodies yield an empty map.
func (r *Response) FieldErrors() map[string]string {
	out := map[string]string{}
	if len(r.Data) == 0 {
		return out
	}

	var body map[string]any
	if err := json.Unmarshal(r.Data, &body); err != nil {
		return out
	}

	for field, v := range body {
		list, ok := v.([]any)
		if !ok || len(list) == 0 {
			continue
		}
		if msg, ok := list[0].(string); ok {
			out[field] = msg
		}
	}
	return out
}

// extractError picks the human-readable error out of a response body,
// preferring detail, then error, then message, with a generic fallback.
func extractError(raw []byte, fallback string) string {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return fallback
	}
	for _, key := range []string{"detail", "error", "message"} {
		if s, ok := body[key].(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

// extractMessage returns the optional top-level message field of a body.
func extractMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Message
}
