// Package catalog holds the static portfolio of managed sites and the
// mock records a site workspace is seeded with.
package catalog

import (
	"strings"
	"time"

	"github.com/lehmann314159/nexuscrm/internal/models"
)

// ClientMatch is the client-name substring a CLIENT role is allowed to see.
// It stands in for a real site-to-client ownership relation.
const ClientMatch = "TechFlow"

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

var sites = []models.Site{
	{
		ID:            "1",
		Name:          "TechFlow Solutions",
		ClientName:    "TechFlow Inc.",
		Domain:        "techflow.io",
		LiveURL:       "https://techflow.io",
		PreviewURL:    "https://techflow-preview.vercel.app",
		GithubRepo:    "techflow/website",
		VercelProject: "techflow-io",
		Status:        models.SiteOnline,
		LastModified:  mustTime("2024-03-21T10:40:00Z"),
		Modules:       models.Modules{Content: true, SEO: true, AI: true},
	},
	{
		ID:            "2",
		Name:          "Organic Greens",
		ClientName:    "Green Life LLC",
		Domain:        "organicgreens.com",
		LiveURL:       "https://organicgreens.com",
		PreviewURL:    "https://organicgreens-preview.vercel.app",
		GithubRepo:    "green-life/organic-greens",
		VercelProject: "organic-greens",
		Status:        models.SiteOnline,
		LastModified:  mustTime("2024-03-20T14:22:00Z"),
		Modules:       models.Modules{Content: true, SEO: true, AI: false},
	},
	{
		ID:            "3",
		Name:          "Syncro Dashboard",
		ClientName:    "Syncro Apps",
		Domain:        "syncro.app",
		LiveURL:       "https://syncro.app",
		PreviewURL:    "https://syncro-preview.vercel.app",
		GithubRepo:    "syncro-apps/dashboard",
		VercelProject: "syncro-dashboard",
		Status:        models.SiteDeploying,
		LastModified:  mustTime("2024-03-21T09:15:00Z"),
		Modules:       models.Modules{Content: true, SEO: true, AI: true},
	},
	{
		ID:            "4",
		Name:          "Urban Architecture",
		ClientName:    "Urban Design Group",
		Domain:        "urbanarch.nl",
		LiveURL:       "https://urbanarch.nl",
		PreviewURL:    "https://urbanarch-preview.vercel.app",
		GithubRepo:    "urban-group/arch-web",
		VercelProject: "urban-arch",
		Status:        models.SiteOnline,
		LastModified:  mustTime("2024-03-18T16:50:00Z"),
		Modules:       models.Modules{Content: false, SEO: true, AI: false},
	},
}

// Sites returns a copy of the full catalog in catalog order.
func Sites() []models.Site {
	out := make([]models.Site, len(sites))
	copy(out, sites)
	return out
}

// Visible filters the catalog for a role. Order is preserved.
func Visible(role models.UserRole) []models.Site {
	all := Sites()
	if role.SeesAllSites() {
		return all
	}

	var out []models.Site
	for _, s := range all {
		if strings.Contains(s.ClientName, ClientMatch) {
			out = append(out, s)
		}
	}
	return out
}

// WorkspaceSite is the record every workspace shows, whatever id was
// selected. Only the id follows the selection.
func WorkspaceSite(siteID string) models.Site {
	s := sites[0]
	s.ID = siteID
	return s
}

func WorkspaceRequests(siteID string) []models.ChangeRequest {
	return []models.ChangeRequest{
		{
			ID:          "r1",
			SiteID:      siteID,
			Title:       "Update Pricing Section",
			Description: "Add 2024 tier",
			Location:    "Homepage",
			Status:      models.RequestInProgress,
			CreatedAt:   mustTime("2024-03-19T08:00:00Z"),
		},
		{
			ID:          "r2",
			SiteID:      siteID,
			Title:       "Fix Header Logo",
			Description: "Center the logo on mobile",
			Location:    "Global Header",
			Status:      models.RequestCompleted,
			CreatedAt:   mustTime("2024-03-15T12:30:00Z"),
		},
	}
}

func WorkspaceFields() []models.ContentField {
	return []models.ContentField{
		{ID: "c1", Label: "Hero Title", Value: "Innovation Meets Excellence", Type: models.FieldText, Section: "Homepage"},
		{ID: "c2", Label: "Hero Subtext", Value: "Crafting future-ready digital experiences for the modern world.", Type: models.FieldTextarea, Section: "Homepage"},
		{ID: "c3", Label: "Hero Image", Value: "https://picsum.photos/seed/hero/800/400", Type: models.FieldImage, Section: "Homepage"},
		{ID: "c4", Label: "CTA Button Text", Value: "Get Started", Type: models.FieldText, Section: "Homepage"},
	}
}

func WorkspaceSEO() models.SEOData {
	return models.SEOData{
		Title:         "TechFlow | Modern Web Solutions",
		Description:   "TechFlow provides top-tier web development and design services.",
		OGTitle:       "Build Your Digital Future with TechFlow",
		OGDescription: "Innovating since 2018.",
	}
}
