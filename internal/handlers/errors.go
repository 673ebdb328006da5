package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
)

// statusForError maps service errors to HTTP status codes.
func statusForError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if de, ok := apperrors.AsDeletionError(err); ok {
		if !de.Kind.Recoverable() {
			return http.StatusInternalServerError
		}
		switch de.Kind {
		case apperrors.KindNotFound:
			return http.StatusNotFound
		case apperrors.KindClosedShift:
			return http.StatusConflict
		case apperrors.KindEmptyReason, apperrors.KindReasonTooLong:
			return http.StatusBadRequest
		default:
			return http.StatusInternalServerError
		}
	}
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
