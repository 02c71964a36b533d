package domain

import "github.com/m-mizutani/goerr/v2"

var (
	ErrConfiguration   = goerr.New("configuration error")
	ErrInvalidArgument = goerr.New("invalid argument")
	ErrTransport       = goerr.New("webhook transport failed")
	ErrHTTPStatus      = goerr.New("webhook returned non-2xx status")
)
