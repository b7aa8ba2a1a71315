package handlers

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lehmann314159/nexuscrm/internal/catalog"
	"github.com/lehmann314159/nexuscrm/internal/metrics"
	"github.com/lehmann314159/nexuscrm/internal/models"
	"github.com/lehmann314159/nexuscrm/internal/repository"
	"github.com/lehmann314159/nexuscrm/internal/session"
	"github.com/lehmann314159/nexuscrm/internal/workspace"
)

const (
	browserCookie = "nexus_browser"
	sessionCookie = "nexus_session"
)

// Env is what every handler shares.
type Env struct {
	Repo         *repository.Repository
	Sessions     *session.Store
	Tmpl         *template.Template
	Log          zerolog.Logger
	Metrics      *metrics.Metrics
	CookieSecure bool
}

type navItem struct {
	ID    string
	Label string
}

// Every sidebar entry leads back to the overview.
var navItems = []navItem{
	{ID: "overview", Label: "Dashboard"},
	{ID: "projects", Label: "Projects"},
	{ID: "issues", Label: "Issues"},
}

type ctxKey int

const sessionKey ctxKey = iota

func withSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey, id)
}

func sessionID(r *http.Request) string {
	id, _ := r.Context().Value(sessionKey).(string)
	return id
}

// browserID returns the long-lived browser identifier, issuing one on
// first visit. Preferences are keyed by it.
func (e *Env) browserID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(browserCookie); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     browserCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   e.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	// Later reads in this request see the same id.
	r.AddCookie(&http.Cookie{Name: browserCookie, Value: id})
	return id
}

func (e *Env) preferences(w http.ResponseWriter, r *http.Request) (models.Preferences, error) {
	return e.Repo.GetPreferences(r.Context(), e.browserID(w, r))
}

func (e *Env) setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   e.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (e *Env) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   e.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// pageData builds the template data for the dashboard shell from the
// session state. Call it with the session locked.
func pageData(prefs models.Preferences, s *session.State) map[string]interface{} {
	data := map[string]interface{}{
		"Prefs":    prefs,
		"Palette":  models.AccentPalette,
		"Role":     s.Role,
		"Nav":      s.Nav,
		"NavItems": navItems,
		"Tabs":     workspace.Tabs,
	}

	if s.Nav.View == session.ViewDetail && s.Workspace != nil {
		data["Workspace"] = s.Workspace
	} else {
		data["Sites"] = catalog.Visible(s.Role)
	}
	return data
}

func (e *Env) render(w http.ResponseWriter, name string, data interface{}) {
	if err := e.Tmpl.ExecuteTemplate(w, name, data); err != nil {
		e.Log.Error().Err(err).Str("template", name).Msg("render failed")
	}
}

// respondMain re-renders the main area for htmx requests and sends plain
// requests back to the dashboard.
func (e *Env) respondMain(w http.ResponseWriter, r *http.Request) {
	if !isHTMX(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	prefs, err := e.preferences(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	e.renderSession(w, r, "main-content", prefs)
}

// renderSession executes a page against the session into a buffer while
// the session is locked, then writes it out after the lock is released.
func (e *Env) renderSession(w http.ResponseWriter, r *http.Request, name string, prefs models.Preferences) {
	var buf bytes.Buffer
	err := e.Sessions.Update(sessionID(r), func(s *session.State) error {
		return e.Tmpl.ExecuteTemplate(&buf, name, pageData(prefs, s))
	})
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			e.Log.Error().Err(err).Str("template", name).Msg("render failed")
		}
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
