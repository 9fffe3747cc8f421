package common

import "errors"

// ErrMalformedProfile is reported when a persisted profile cannot be decoded.
var ErrMalformedProfile = errors.New("malformed profile")
