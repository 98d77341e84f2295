package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption      = goerr.New("invalid option")
	ErrNotConfigured      = goerr.New("integration is not configured")
	ErrNotFound           = goerr.New("not found")
	ErrUnexpectedResponse = goerr.New("unexpected response from remote API")

	ErrInvalidArchive   = goerr.New("invalid log archive")
	ErrUnbalancedBraces = goerr.New("unbalanced braces")
	ErrInvalidPayload   = goerr.New("invalid payload JSON")
)
