package bridge

import "encoding/json"

// Result is the uniform envelope returned from every dispatch: either a
// success payload in the provider's own shape, or a single error message.
// The bridge never returns anything else and never propagates a fault.
type Result struct {
	payload map[string]any
	errMsg  string
}

// Success wraps a provider payload.
func Success(payload map[string]any) Result {
	return Result{payload: payload}
}

// Failure wraps an error message.
func Failure(msg string) Result {
	return Result{errMsg: msg}
}

// IsError returns true for the error variant.
func (r Result) IsError() bool {
	return r.errMsg != ""
}

// ErrorMessage returns the error message, empty on success.
func (r Result) ErrorMessage() string {
	return r.errMsg
}

// Payload returns the success payload, nil on error.
func (r Result) Payload() map[string]any {
	return r.payload
}

// MarshalJSON emits the success payload as-is, or {"error": msg} for the
// error variant. This is the wire shape handed back to the session runtime.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.errMsg != "" {
		return json.Marshal(map[string]string{"error": r.errMsg})
	}
	if r.payload == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.payload)
}
