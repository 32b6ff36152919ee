package handler

import "net/http"

// RouteNotFound answers any unmatched (method, path) pair with a JSON 404
// carrying the unmatched path. It is the only not-found produced at the
// router level; everything else comes from inside a handler.
func RouteNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, MessageEnvelope{
		Message: "Route not found",
		Path:    r.URL.Path,
	})
}
