// Package views embeds the dashboard templates and stylesheet.
package views

import (
	"embed"
	"html/template"
	"io/fs"
	"time"

	"github.com/lehmann314159/nexuscrm/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

func Parse() (*template.Template, error) {
	funcMap := template.FuncMap{
		// Matches the browser's en-US short date, e.g. 3/21/2024.
		"date": func(t time.Time) string {
			return t.Format("1/2/2006")
		},
		"siteStatusClass": func(s models.SiteStatus) string {
			switch s {
			case models.SiteOnline:
				return "badge-green"
			case models.SiteDeploying:
				return "badge-yellow"
			default:
				return "badge-red"
			}
		},
		"requestStatusClass": func(s models.RequestStatus) string {
			switch s {
			case models.RequestCompleted:
				return "badge-green"
			case models.RequestInProgress:
				return "badge-accent"
			default:
				return "badge-yellow"
			}
		},
		"dict": func(kv ...interface{}) map[string]interface{} {
			m := make(map[string]interface{}, len(kv)/2)
			for i := 0; i+1 < len(kv); i += 2 {
				if k, ok := kv[i].(string); ok {
					m[k] = kv[i+1]
				}
			}
			return m
		},
		"onOff": func(active bool) string {
			if active {
				return "ACTIVE"
			}
			return "OFF"
		},
	}

	return template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
}

// Static returns the embedded static directory rooted at its contents.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
