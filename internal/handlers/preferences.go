package handlers

import (
	"net/http"
	"strings"

	"github.com/lehmann314159/nexuscrm/internal/models"
)

// PreferenceHandler writes the per-browser theme, accent and view flags.
// It works signed in or not; the login page has a theme toggle too.
type PreferenceHandler struct {
	*Env
}

func NewPreferenceHandler(env *Env) *PreferenceHandler {
	return &PreferenceHandler{Env: env}
}

func (h *PreferenceHandler) Theme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.Repo.ToggleTheme(r.Context(), h.browserID(w, r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.Metrics.PreferenceWrites.WithLabelValues(models.PrefTheme).Inc()
	h.Log.Debug().Str("theme", theme).Msg("theme toggled")

	h.refresh(w, r)
}

// Accent stores the color as given; unknown names simply render no accent.
func (h *PreferenceHandler) Accent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	color := strings.TrimSpace(r.FormValue("color"))
	if color == "" {
		http.Error(w, "Color is required", http.StatusBadRequest)
		return
	}

	if err := h.Repo.SetAccent(r.Context(), h.browserID(w, r), color); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.Metrics.PreferenceWrites.WithLabelValues(models.PrefAccent).Inc()

	h.refresh(w, r)
}

func (h *PreferenceHandler) ViewMode(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mode := strings.TrimSpace(r.FormValue("mode"))
	if mode == "" {
		http.Error(w, "Mode is required", http.StatusBadRequest)
		return
	}

	if err := h.Repo.SetViewMode(r.Context(), h.browserID(w, r), mode); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.Metrics.PreferenceWrites.WithLabelValues(models.PrefViewMode).Inc()

	if isHTMX(r) && sessionID(r) != "" {
		h.respondMain(w, r)
		return
	}
	h.refresh(w, r)
}

// refresh reloads whichever page the change came from.
func (h *PreferenceHandler) refresh(w http.ResponseWriter, r *http.Request) {
	if isHTMX(r) {
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

func backTo(r *http.Request) string {
	if sessionID(r) == "" {
		return "/login"
	}
	return "/"
}
