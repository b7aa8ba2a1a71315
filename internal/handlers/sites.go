package handlers

import (
	"net/http"
)

// SiteHandler drives navigation between the site directory and a
// selected site.
type SiteHandler struct {
	*Env
}

func NewSiteHandler(env *Env) *SiteHandler {
	return &SiteHandler{Env: env}
}

// Select opens the workspace for a site. The id is taken as given.
func (h *SiteHandler) Select(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	if err := h.Sessions.SelectSite(sessionID(r), id); err != nil {
		writeError(w, err)
		return
	}

	h.respondMain(w, r)
}

// Overview handles both the back button and the sidebar entries.
func (h *SiteHandler) Overview(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Back(sessionID(r)); err != nil {
		writeError(w, err)
		return
	}

	h.respondMain(w, r)
}
