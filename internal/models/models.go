package models

import (
	"strings"
	"time"
)

type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleTeam   UserRole = "TEAM"
	RoleClient UserRole = "CLIENT"
)

// CanCreateSite reports whether the "new site" action is offered.
func (r UserRole) CanCreateSite() bool {
	return r == RoleAdmin
}

// SeesAllSites reports whether the role browses the whole catalog
// rather than its own client's sites.
func (r UserRole) SeesAllSites() bool {
	return r == RoleAdmin || r == RoleTeam
}

func (r UserRole) DisplayName() string {
	if r == RoleAdmin {
		return "Senior Admin"
	}
	return "Client User"
}

func (r UserRole) Lower() string {
	return strings.ToLower(string(r))
}

type SiteStatus string

const (
	SiteOnline      SiteStatus = "online"
	SiteMaintenance SiteStatus = "maintenance"
	SiteDeploying   SiteStatus = "deploying"
)

type RequestStatus string

const (
	RequestPending    RequestStatus = "PENDING"
	RequestInProgress RequestStatus = "IN_PROGRESS"
	RequestCompleted  RequestStatus = "COMPLETED"
)

// Label is the badge text, e.g. "IN PROGRESS".
func (s RequestStatus) Label() string {
	return strings.Replace(string(s), "_", " ", 1)
}

type Modules struct {
	Content bool
	SEO     bool
	AI      bool
}

type Site struct {
	ID            string
	Name          string
	ClientName    string
	Domain        string
	LiveURL       string
	PreviewURL    string
	GithubRepo    string
	VercelProject string
	Status        SiteStatus
	LastModified  time.Time
	Modules       Modules
}

type ChangeRequest struct {
	ID          string
	SiteID      string
	Title       string
	Description string
	Location    string
	Status      RequestStatus
	CreatedAt   time.Time
}

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldImage    FieldType = "image"
)

type ContentField struct {
	ID      string
	Label   string
	Value   string
	Type    FieldType
	Section string
}

// Editable reports whether the field accepts value edits in place.
func (f ContentField) Editable() bool {
	return f.Type == FieldText || f.Type == FieldTextarea
}

type SEOData struct {
	Title         string
	Description   string
	OGTitle       string
	OGDescription string
}

// Preference keys as stored per browser.
const (
	PrefTheme    = "nexus-theme"
	PrefAccent   = "nexus-primary-color"
	PrefViewMode = "nexus-view-mode"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	ViewGrid = "grid"
	ViewList = "list"

	DefaultAccent = "indigo"
)

// Preferences holds the raw stored flags. Theme is empty when nothing
// has been stored yet.
type Preferences struct {
	Theme    string
	Accent   string
	ViewMode string
}

func DefaultPreferences() Preferences {
	return Preferences{Accent: DefaultAccent, ViewMode: ViewGrid}
}

// IsDark treats a missing theme as dark and anything stored other than
// "dark" as light.
func (p Preferences) IsDark() bool {
	if p.Theme == "" {
		return true
	}
	return p.Theme == ThemeDark
}

func (p Preferences) IsGrid() bool {
	return p.ViewMode == ViewGrid
}

type AccentColor struct {
	Name  string
	Value string
}

var AccentPalette = []AccentColor{
	{Name: "Indigo", Value: "indigo"},
	{Name: "Emerald", Value: "emerald"},
	{Name: "Rose", Value: "rose"},
	{Name: "Amber", Value: "amber"},
	{Name: "Sky", Value: "sky"},
}
