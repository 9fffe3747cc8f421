// Package common contains shared constants and sentinel errors used across
// the ResearchHub client packages.
package common

// AuthorizationHeaderName carries the bearer credential on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is prepended to the raw token in AuthorizationHeaderName.
const BearerPrefix = "Bearer "

// RequestIDHeaderName correlates a client log line with the API's access log.
const RequestIDHeaderName = "X-Request-ID"

// Keys of the durable session rows in the local metadata table.
const (
	TokenStorageKey = "token"
	UserStorageKey  = "user"
)

// LandingRoute is the public entry point every rejected navigation lands on.
const LandingRoute = "/"
