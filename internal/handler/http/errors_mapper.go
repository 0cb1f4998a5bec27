package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrPasswordMismatch:        http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,

	// A taken email is reported as a plain bad request, matching the
	// validation failures of the same endpoint.
	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,

	ErrNoTokenProvided:  http.StatusUnauthorized,
	ErrInvalidToken:     http.StatusUnauthorized,
	ErrUserDoesNotExist: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// rootCause resolves err to the sentinel it wraps so that responses carry the
// canonical client-facing message instead of internal wrapping context.
// Unrecognised errors collapse to a generic message and leak nothing.
func rootCause(err error) error {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target
		}
	}
	return errors.New(http.StatusText(http.StatusInternalServerError))
}
