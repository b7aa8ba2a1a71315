package handlers

import (
	"net/http"
)

// HomeHandler is the root controller: it shows the site directory or the
// selected site's workspace depending on the session's navigation.
type HomeHandler struct {
	*Env
}

func NewHomeHandler(env *Env) *HomeHandler {
	return &HomeHandler{Env: env}
}

func (h *HomeHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.preferences(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.renderSession(w, r, "index.html", prefs)
}

func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
