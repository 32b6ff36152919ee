package handler

import (
	"errors"
	"net/http"

	"github.com/storefront-api-nosql/internal/domain"
)

// httpError maps domain sentinel errors to HTTP responses. Anything not
// wrapped in a sentinel is a store/transport failure and comes back as 500
// with the underlying message in the body.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNoAccess):
		writeMessage(w, http.StatusUnauthorized, err.Error())
	default:
		writeJSON(w, http.StatusInternalServerError, FailureEnvelope{
			Message: "Internal server error.",
			Error:   err.Error(),
		})
	}
}
