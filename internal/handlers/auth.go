package handlers

import (
	"net/http"

	"github.com/lehmann314159/nexuscrm/internal/auth"
	"github.com/lehmann314159/nexuscrm/internal/models"
)

type AuthHandler struct {
	*Env
}

func NewAuthHandler(env *Env) *AuthHandler {
	return &AuthHandler{Env: env}
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if _, err := h.Sessions.Get(c.Value); err == nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
	}

	prefs, err := h.preferences(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"Prefs":           prefs,
		"DefaultEmail":    auth.DefaultEmail,
		"DefaultPassword": auth.DefaultPassword,
	}

	h.render(w, "login.html", data)
}

// Login signs in from the form. The password is accepted unread.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.signIn(w, r, auth.RoleForEmail(r.FormValue("email")), "form")
}

func (h *AuthHandler) QuickLogin(w http.ResponseWriter, r *http.Request) {
	role, ok := auth.QuickRole(r.PathValue("role"))
	if !ok {
		http.Error(w, "Unknown quick login", http.StatusNotFound)
		return
	}

	h.signIn(w, r, role, "quick")
}

func (h *AuthHandler) signIn(w http.ResponseWriter, r *http.Request, role models.UserRole, method string) {
	// A fresh login always replaces whatever session the browser had.
	if c, err := r.Cookie(sessionCookie); err == nil {
		h.Sessions.Destroy(c.Value)
	}

	s := h.Sessions.Create(role)
	h.setSessionCookie(w, s.ID)
	h.Metrics.LoginsTotal.WithLabelValues(string(role), method).Inc()
	h.Log.Info().Str("role", string(role)).Str("method", method).Msg("login")

	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		h.Sessions.Destroy(c.Value)
	}
	h.clearSessionCookie(w)

	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/login")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
