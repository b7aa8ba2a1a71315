package handlers

import (
	"errors"
	"net/http"

	"github.com/lehmann314159/nexuscrm/internal/session"
	"github.com/lehmann314159/nexuscrm/internal/workspace"
)

// writeError maps domain errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		http.Error(w, "Not signed in", http.StatusUnauthorized)
	case errors.Is(err, session.ErrNotInDetail):
		http.Error(w, "No site selected", http.StatusConflict)
	case errors.Is(err, workspace.ErrFieldNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, workspace.ErrUnknownTab),
		errors.Is(err, workspace.ErrUnknownSEOField),
		errors.Is(err, workspace.ErrFieldNotEditable):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
