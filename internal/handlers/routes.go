package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lehmann314159/nexuscrm/internal/views"
)

// Routes wires every endpoint of the dashboard.
func Routes(env *Env, loginLimiter *IPRateLimiter) http.Handler {
	homeHandler := NewHomeHandler(env)
	authHandler := NewAuthHandler(env)
	siteHandler := NewSiteHandler(env)
	workspaceHandler := NewWorkspaceHandler(env)
	preferenceHandler := NewPreferenceHandler(env)

	mux := http.NewServeMux()

	// Static files
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(views.Static())))

	// Login gate
	mux.HandleFunc("GET /login", authHandler.LoginPage)
	mux.HandleFunc("POST /login", env.RateLimit(loginLimiter, authHandler.Login))
	mux.HandleFunc("POST /login/quick/{role}", env.RateLimit(loginLimiter, authHandler.QuickLogin))
	mux.HandleFunc("POST /logout", authHandler.Logout)

	// Dashboard
	mux.HandleFunc("GET /{$}", env.RequireSession(homeHandler.Dashboard))
	mux.HandleFunc("POST /sites/{id}/select", env.RequireSession(siteHandler.Select))
	mux.HandleFunc("POST /nav/overview", env.RequireSession(siteHandler.Overview))

	// Site workspace
	mux.HandleFunc("GET /workspace/tabs/{tab}", env.RequireSession(workspaceHandler.Tab))
	mux.HandleFunc("POST /workspace/requests/new", env.RequireSession(workspaceHandler.OpenRequest))
	mux.HandleFunc("PUT /workspace/requests/draft", env.RequireSession(workspaceHandler.UpdateDraft))
	mux.HandleFunc("POST /workspace/requests", env.RequireSession(workspaceHandler.SubmitRequest))
	mux.HandleFunc("POST /workspace/requests/cancel", env.RequireSession(workspaceHandler.CancelRequest))
	mux.HandleFunc("POST /workspace/content/save", env.RequireSession(workspaceHandler.SaveContent))
	mux.HandleFunc("PUT /workspace/content/{id}", env.RequireSession(workspaceHandler.UpdateContent))
	mux.HandleFunc("POST /workspace/content/{id}", env.RequireSession(workspaceHandler.UpdateContent))
	mux.HandleFunc("PUT /workspace/seo/{field}", env.RequireSession(workspaceHandler.UpdateSEO))
	mux.HandleFunc("POST /workspace/seo/{field}", env.RequireSession(workspaceHandler.UpdateSEO))

	// Preferences
	mux.HandleFunc("POST /preferences/theme", env.OptionalSession(preferenceHandler.Theme))
	mux.HandleFunc("POST /preferences/accent", env.OptionalSession(preferenceHandler.Accent))
	mux.HandleFunc("POST /preferences/view", env.OptionalSession(preferenceHandler.ViewMode))

	// Operations
	mux.HandleFunc("GET /healthz", homeHandler.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(env.Metrics.Registry, promhttp.HandlerOpts{}))

	return env.Recover(env.Instrument(mux))
}
