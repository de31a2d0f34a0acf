package thinkific

import (
	"errors"
	"fmt"
)

// ErrSessionExpired means the supplied cookie is no longer valid.
// This is fatal to the whole run, re-export the cookie and retry.
var ErrSessionExpired = errors.New("401 Unauthorized: your cookie has expired, export a fresh one and re-run")

// ErrAPIBadStatus ...
type ErrAPIBadStatus struct {
	Path       string
	StatusCode int
}

// Error implements error interface
func (e ErrAPIBadStatus) Error() string {
	return fmt.Sprintf("request to %s failed, status code %d", e.Path, e.StatusCode)
}
