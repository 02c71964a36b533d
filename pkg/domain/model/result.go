package model

import "net/http"

// SendStatus classifies the outcome of a webhook delivery
type SendStatus int

const (
	SendDelivered SendStatus = iota
	SendTransportError
	SendHTTPError
)

func (s SendStatus) String() string {
	switch s {
	case SendDelivered:
		return "delivered"
	case SendTransportError:
		return "transport_error"
	case SendHTTPError:
		return "http_error"
	default:
		return "unknown"
	}
}

// SendResult describes a single webhook delivery. StatusCode is zero when no
// response was received.
type SendResult struct {
	Status     SendStatus
	StatusCode int
	Err        error
}

// OK reports whether the webhook accepted the payload
func (r *SendResult) OK() bool {
	return r != nil && r.Status == SendDelivered
}

// IsSuccessStatus reports whether code is in the 2xx range
func IsSuccessStatus(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
