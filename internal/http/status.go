package httpx

import (
	"net/http"

	apperrors "github.com/hirewire/hirewire/internal/errors"
)

// statusForError maps an application error code to an HTTP status.
func statusForError(err error) int {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeValidation:
		return http.StatusBadRequest
	case apperrors.ErrCodeAuthorization:
		return http.StatusForbidden
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeInvalidTransition,
		apperrors.ErrCodeDuplicateApplication,
		apperrors.ErrCodeJobClosed,
		apperrors.ErrCodeConflict,
		apperrors.ErrCodeForeignKey:
		return http.StatusConflict
	case apperrors.ErrCodeNetwork:
		return http.StatusGatewayTimeout
	case apperrors.ErrCodeCanceled:
		return statusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusClientClosedRequest is the nginx convention for canceled requests.
const statusClientClosedRequest = 499

// writeAppError writes an error response with the status derived from the
// application error code. The code travels in the body so clients can branch
// without parsing messages.
func writeAppError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}
	WriteError(w, ErrorParams{
		Code:    statusForError(err),
		ErrCode: string(code),
		Err:     err,
	})
}
