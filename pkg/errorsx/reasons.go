package errorsx

// ReasonCode is a short machine-readable error reason.
type ReasonCode string

const (
	ReasonUnknown ReasonCode = "unknown"

	ReasonUnknownTool  ReasonCode = "unknown_tool"
	ReasonToolFailed   ReasonCode = "tool_failed"
	ReasonToolPanic    ReasonCode = "tool_panic"
	ReasonProviderInit ReasonCode = "provider_init"
	ReasonDuplicate    ReasonCode = "duplicate_tool"

	ReasonDataLoad   ReasonCode = "data_load"
	ReasonNotFound   ReasonCode = "not_found"
	ReasonBadRequest ReasonCode = "bad_request"

	ReasonGoogleAuth ReasonCode = "google_auth"
	ReasonGoogleAPI  ReasonCode = "google_api"

	ReasonConfig ReasonCode = "config"
)
