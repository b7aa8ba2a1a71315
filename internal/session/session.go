// Package session keeps the per-browser application state: who is signed
// in, which view is showing and the workspace of the selected site.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lehmann314159/nexuscrm/internal/models"
	"github.com/lehmann314159/nexuscrm/internal/workspace"
)

type View string

const (
	ViewOverview View = "overview"
	ViewDetail   View = "detail"
)

var (
	ErrNotFound    = errors.New("session not found")
	ErrNotInDetail = errors.New("no site selected")
)

type Nav struct {
	View           View
	SelectedSiteID string
}

// State is everything the dashboard shows for one signed-in browser.
type State struct {
	ID            string
	Authenticated bool
	Role          models.UserRole
	Nav           Nav
	Workspace     *workspace.Workspace
	CreatedAt     time.Time
	LastSeen      time.Time
}

// SelectSite moves to the detail view and seeds a fresh workspace. The
// id is not checked against the catalog.
func (s *State) SelectSite(id string, now func() time.Time) {
	s.Nav = Nav{View: ViewDetail, SelectedSiteID: id}
	s.Workspace = workspace.New(id, now)
}

// Back returns to the overview and drops the workspace.
func (s *State) Back() {
	s.Nav = Nav{View: ViewOverview}
	s.Workspace = nil
}

type Store struct {
	mu       sync.Mutex
	sessions map[string]*State
	now      func() time.Time
}

func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{sessions: make(map[string]*State), now: now}
}

// Create signs a browser in with role, starting at the overview.
func (st *Store) Create(role models.UserRole) State {
	now := st.now()
	s := &State{
		ID:            uuid.NewString(),
		Authenticated: true,
		Role:          role,
		Nav:           Nav{View: ViewOverview},
		CreatedAt:     now,
		LastSeen:      now,
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	return *s
}

// Get returns a snapshot of the session. The workspace pointer is shared;
// mutate it only through Update.
func (st *Store) Get(id string) (State, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return State{}, ErrNotFound
	}
	s.LastSeen = st.now()
	return *s, nil
}

// Update runs fn with the session locked.
func (st *Store) Update(id string, fn func(s *State) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return ErrNotFound
	}
	s.LastSeen = st.now()
	return fn(s)
}

// Workspace runs fn against the selected site's workspace.
func (st *Store) Workspace(id string, fn func(w *workspace.Workspace) error) error {
	return st.Update(id, func(s *State) error {
		if s.Nav.View != ViewDetail || s.Workspace == nil {
			return ErrNotInDetail
		}
		return fn(s.Workspace)
	})
}

func (st *Store) SelectSite(id, siteID string) error {
	return st.Update(id, func(s *State) error {
		s.SelectSite(siteID, st.now)
		return nil
	})
}

func (st *Store) Back(id string) error {
	return st.Update(id, func(s *State) error {
		s.Back()
		return nil
	})
}

// Destroy logs the browser out, discarding navigation and workspace.
func (st *Store) Destroy(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Prune drops sessions not used within idle and reports how many went.
func (st *Store) Prune(idle time.Duration) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	n := 0
	for id, s := range st.sessions {
		if now.Sub(s.LastSeen) > idle {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
