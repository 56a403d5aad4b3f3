package apperr

import (
	"errors"
	"net/http"
)

// Failure is one of StructuredHTTPError, GenericError or Unknown.
type Failure interface {
	failure()
}

// StructuredHTTPError is a failure with an explicit status code.
type StructuredHTTPError struct {
	Status  int
	Message string
	// Details is the raw payload, kept only for 400 and 422.
	Details any
}

// GenericError is an error without a status code.
type GenericError struct {
	Message string
	Err     error
}

// Unknown is a recovered value that is not an error.
type Unknown struct {
	Value any
}

func (StructuredHTTPError) failure() {}
func (GenericError) failure()        {}
func (Unknown) failure()             {}

// Classify turns an error or a recovered panic value into a Failure. An
// error whose methods panic is reported as Unknown.
func Classify(v any) (f Failure) {
	defer func() {
		if recover() != nil {
			f = Unknown{Value: v}
		}
	}()

	err, ok := v.(error)
	if !ok || err == nil {
		return Unknown{Value: v}
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		return structured(httpErr)
	}

	return GenericError{Message: err.Error(), Err: err}
}

func structured(e *HTTPError) StructuredHTTPError {
	f := StructuredHTTPError{Status: e.Status}

	if text, ok := e.Payload.(string); ok {
		f.Message = text
		return f
	}

	f.Message = e.Error()
	if e.Payload != nil && carriesDetails(e.Status) {
		f.Details = e.Payload
	}
	return f
}

func carriesDetails(status int) bool {
	return status == http.StatusBadRequest || status == http.StatusUnprocessableEntity
}
