package deeplink

import "errors"

// ErrMalformed indicates input that could not be decoded as a deep
// link. Callers at fallback boundaries treat it as "no deep link
// present" rather than a failure.
var ErrMalformed = errors.New("malformed deep link")
