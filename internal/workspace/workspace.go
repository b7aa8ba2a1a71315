// Package workspace holds the editable state of one selected site: its
// change requests, managed content fields and SEO record. A Workspace
// lives until the user navigates back to the overview or logs out.
package workspace

import (
	"errors"
	"fmt"
	"strconv"
	"time"
	"unicode/utf16"

	"github.com/lehmann314159/nexuscrm/internal/catalog"
	"github.com/lehmann314159/nexuscrm/internal/models"
)

type Tab string

const (
	TabOverview Tab = "overview"
	TabChanges  Tab = "changes"
	TabContent  Tab = "content"
	TabSEO      Tab = "seo"
)

var Tabs = []struct {
	ID    Tab
	Label string
}{
	{TabOverview, "Overview"},
	{TabChanges, "Changes"},
	{TabContent, "Content"},
	{TabSEO, "SEO"},
}

const (
	TitleLimit       = 60
	DescriptionLimit = 160
)

var (
	ErrUnknownTab       = errors.New("unknown tab")
	ErrFieldNotFound    = errors.New("content field not found")
	ErrFieldNotEditable = errors.New("content field is not editable")
	ErrUnknownSEOField  = errors.New("unknown seo field")
)

// Draft is the unsaved content of the new-request modal.
type Draft struct {
	Title       string
	Location    string
	Description string
}

type Workspace struct {
	Site      models.Site
	ActiveTab Tab
	Requests  []models.ChangeRequest
	Fields    []models.ContentField
	SEO       models.SEOData

	ModalOpen bool
	Draft     Draft

	now func() time.Time
}

// New seeds a workspace for siteID. The site record and mock lists are
// the same for every id.
func New(siteID string, now func() time.Time) *Workspace {
	if now == nil {
		now = time.Now
	}
	return &Workspace{
		Site:      catalog.WorkspaceSite(siteID),
		ActiveTab: TabOverview,
		Requests:  catalog.WorkspaceRequests(siteID),
		Fields:    catalog.WorkspaceFields(),
		SEO:       catalog.WorkspaceSEO(),
		now:       now,
	}
}

func (w *Workspace) SetTab(tab Tab) error {
	for _, t := range Tabs {
		if t.ID == tab {
			w.ActiveTab = tab
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownTab, tab)
}

func (w *Workspace) OpenRequestModal() {
	w.ModalOpen = true
}

func (w *Workspace) UpdateDraft(d Draft) {
	w.Draft = d
}

// SubmitRequest turns the draft into a PENDING request at the head of
// the list, then closes the modal and clears the draft. No field is
// required.
func (w *Workspace) SubmitRequest() models.ChangeRequest {
	now := w.now()
	req := models.ChangeRequest{
		ID:          w.nextRequestID(now),
		SiteID:      w.Site.ID,
		Title:       w.Draft.Title,
		Description: w.Draft.Description,
		Location:    w.Draft.Location,
		Status:      models.RequestPending,
		CreatedAt:   now.UTC(),
	}

	reqs := make([]models.ChangeRequest, 0, len(w.Requests)+1)
	reqs = append(reqs, req)
	w.Requests = append(reqs, w.Requests...)

	w.ModalOpen = false
	w.Draft = Draft{}
	return req
}

// CancelRequest closes the modal and drops the draft.
func (w *Workspace) CancelRequest() {
	w.ModalOpen = false
	w.Draft = Draft{}
}

// nextRequestID derives the id from the submit time in milliseconds,
// stepping forward when two submits land in the same millisecond.
func (w *Workspace) nextRequestID(now time.Time) string {
	ms := now.UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if !w.hasRequest(id) {
			return id
		}
		ms++
	}
}

func (w *Workspace) hasRequest(id string) bool {
	for _, r := range w.Requests {
		if r.ID == id {
			return true
		}
	}
	return false
}

func (w *Workspace) Field(id string) (models.ContentField, error) {
	for _, f := range w.Fields {
		if f.ID == id {
			return f, nil
		}
	}
	return models.ContentField{}, fmt.Errorf("%w: %q", ErrFieldNotFound, id)
}

// UpdateField replaces the value of one text or textarea field.
func (w *Workspace) UpdateField(id, value string) (models.ContentField, error) {
	for i := range w.Fields {
		if w.Fields[i].ID != id {
			continue
		}
		if !w.Fields[i].Editable() {
			return w.Fields[i], fmt.Errorf("%w: %q", ErrFieldNotEditable, id)
		}
		w.Fields[i].Value = value
		return w.Fields[i], nil
	}
	return models.ContentField{}, fmt.Errorf("%w: %q", ErrFieldNotFound, id)
}

// SaveAll does nothing yet; content edits only live in the workspace.
func (w *Workspace) SaveAll() {}

func (w *Workspace) UpdateSEO(field, value string) error {
	switch field {
	case "title":
		w.SEO.Title = value
	case "description":
		w.SEO.Description = value
	case "ogTitle":
		w.SEO.OGTitle = value
	case "ogDescription":
		w.SEO.OGDescription = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSEOField, field)
	}
	return nil
}

// Counter is the advisory length badge next to an SEO field.
type Counter struct {
	Length int
	Limit  int
	Over   bool
}

func NewCounter(s string, limit int) Counter {
	n := len(utf16.Encode([]rune(s)))
	return Counter{Length: n, Limit: limit, Over: n > limit}
}

func (w *Workspace) TitleCounter() Counter {
	return NewCounter(w.SEO.Title, TitleLimit)
}

func (w *Workspace) DescriptionCounter() Counter {
	return NewCounter(w.SEO.Description, DescriptionLimit)
}

// CounterFor returns the counter for a limited SEO field.
func (w *Workspace) CounterFor(field string) (Counter, bool) {
	switch field {
	case "title":
		return w.TitleCounter(), true
	case "description":
		return w.DescriptionCounter(), true
	}
	return Counter{}, false
}
