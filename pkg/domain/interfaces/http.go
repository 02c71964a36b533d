package interfaces

import "net/http"

// HTTPClient is the transport used to deliver webhook payloads.
// *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
