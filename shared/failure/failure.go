package failure

import (
	"errors"
	"net/http"
)

// Failure is an error the client is allowed to see, carrying its HTTP status.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Failure) Error() string {
	return e.Message
}

func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: http.StatusBadRequest, Message: err.Error()}
}

func BadRequestFromString(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

func NotFound(message string) error {
	return &Failure{Code: http.StatusNotFound, Message: message}
}

// Conflict returns a new Failure for a request that does not fit the current state of a resource.
func Conflict(message string) error {
	return &Failure{Code: http.StatusConflict, Message: message}
}

// Unavailable is used when the request could not be carried out right now and may be retried.
func Unavailable(message string) error {
	return &Failure{Code: http.StatusServiceUnavailable, Message: message}
}

// GetCode returns the status of the first Failure in the chain, 500 when there is none.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// PublicMessage is the text safe to send to a client. Errors that are not
// failures collapse into the generic status text.
func PublicMessage(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return http.StatusText(http.StatusInternalServerError)
}

// Is reports whether err carries a Failure with the given code.
func Is(err error, code int) bool {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code == code
	}

	return false
}
