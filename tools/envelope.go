package tools

import "encoding/json"

// Envelope statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the uniform envelope wrapping every capability's outcome:
// {status: "success", data} or {status: "error", message}.
type Response struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Success wraps a normalized payload in a success envelope.
func Success(data any) *Response {
	return &Response{
		Status: StatusSuccess,
		Data:   data,
	}
}

// Failure wraps a failure in an error envelope.
func Failure(err error) *Response {
	return &Response{
		Status:  StatusError,
		Message: err.Error(),
	}
}

// JSON renders the envelope as two-space-indented JSON.
func (r *Response) JSON() string {
	bs, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return `{"status": "error", "message": "failed to encode response"}`
	}
	return string(bs)
}
