package identity

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized is the default cause of a rejection.
var ErrUnauthorized = errors.New("unauthorized")

// Rejection is returned by an Extractor to stop a request before its
// handler runs. Status is the HTTP status written to the client.
type Rejection struct {
	Status int
	Err    error
}

// Reject builds a Rejection. A zero status means 401 and a nil err means
// ErrUnauthorized.
func Reject(status int, err error) *Rejection {
	if status == 0 {
		status = http.StatusUnauthorized
	}
	if err == nil {
		err = ErrUnauthorized
	}
	return &Rejection{Status: status, Err: err}
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("request rejected with status %d: %v", r.Status, r.Err)
}

func (r *Rejection) Unwrap() error {
	return r.Err
}

// StatusOf returns the HTTP status an extraction error should produce.
func StatusOf(err error) int {
	var rej *Rejection
	if errors.As(err, &rej) && rej.Status != 0 {
		return rej.Status
	}
	return http.StatusUnauthorized
}
