package adapter

import "errors"

// Sentinel errors mapped from portal HTTP responses. The wrapped message
// carries the response body so server-side rejections stay actionable.
var (
	ErrBadRequest          = errors.New("portal rejected the request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("edit conflict")
	ErrBadGateway          = errors.New("portal gateway error")
	ErrInternalServerError = errors.New("portal internal error")

	// ErrRefreshRejected indicates a token refresh the portal answered
	// without reissuing a usable session (wrong status field or no
	// session cookies).
	ErrRefreshRejected = errors.New("token refresh rejected")

	// ErrMalformedResponse indicates a 2xx response whose body is missing
	// the fields the flow depends on (e.g. a created listing without a
	// key).
	ErrMalformedResponse = errors.New("malformed portal response")
)
