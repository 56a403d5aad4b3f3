package apperr

import "net/http"

// InternalErrorMessage is sent to clients when nothing more specific is known.
const InternalErrorMessage = "Internal server error"

// Normalized is everything needed to build an error envelope.
type Normalized struct {
	Status  int
	Message string
	Code    string
	Details any
}

// Internal is the fallback used for unknown failures.
func Internal() Normalized {
	return Normalized{
		Status:  http.StatusInternalServerError,
		Message: InternalErrorMessage,
		Code:    CodeInternal,
	}
}

// Normalize maps f to a status, message, code and details. It never panics;
// anything it cannot handle becomes Internal().
//
// A GenericError keeps its own message even though the status is 500, so the
// text of unexpected errors reaches the client.
func Normalize(f Failure) (n Normalized) {
	defer func() {
		if recover() != nil {
			n = Internal()
		}
	}()

	switch f := f.(type) {
	case StructuredHTTPError:
		// net/http rejects anything outside 1xx-9xx.
		if f.Status < 100 || f.Status > 999 {
			return Internal()
		}
		return Normalized{
			Status:  f.Status,
			Message: f.Message,
			Code:    CodeForStatus(f.Status),
			Details: f.Details,
		}
	case GenericError:
		return Normalized{
			Status:  http.StatusInternalServerError,
			Message: f.Message,
			Code:    CodeInternal,
		}
	default:
		return Internal()
	}
}
