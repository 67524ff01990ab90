package catalog

import "fmt"

// Messages carried by Error.
const (
	MsgRequestFailed = "Request failed"
	MsgEmptyBody     = "Empty response body"
)

// Error is the failure outcome of a catalog fetch.
type Error struct {
	Message string
	Code    int   // HTTP status, zero when the failure has none
	Err     error // underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Code)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HasCode reports whether the failure carries an HTTP status.
func (e *Error) HasCode() bool {
	return e.Code != 0
}
