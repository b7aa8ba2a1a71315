package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehmann314159/nexuscrm/internal/models"
	"github.com/lehmann314159/nexuscrm/internal/workspace"
)

func TestCreateStartsAtOverview(t *testing.T) {
	st := NewStore(nil)
	s := st.Create(models.RoleClient)

	assert.NotEmpty(t, s.ID)
	assert.True(t, s.Authenticated)
	assert.Equal(t, models.RoleClient, s.Role)
	assert.Equal(t, Nav{View: ViewOverview}, s.Nav)
	assert.Nil(t, s.Workspace)
}

func TestSelectAndBack(t *testing.T) {
	st := NewStore(nil)
	s := st.Create(models.RoleAdmin)

	require.NoError(t, st.SelectSite(s.ID, "3"))
	got, err := st.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, Nav{View: ViewDetail, SelectedSiteID: "3"}, got.Nav)
	require.NotNil(t, got.Workspace)
	assert.Equal(t, "3", got.Workspace.Site.ID)

	require.NoError(t, st.Back(s.ID))
	got, err = st.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, Nav{View: ViewOverview}, got.Nav)
	assert.Nil(t, got.Workspace)
}

func TestWorkspaceRequiresDetail(t *testing.T) {
	st := NewStore(nil)
	s := st.Create(models.RoleAdmin)

	err := st.Workspace(s.ID, func(w *workspace.Workspace) error { return nil })
	assert.ErrorIs(t, err, ErrNotInDetail)

	require.NoError(t, st.SelectSite(s.ID, "1"))
	err = st.Workspace(s.ID, func(w *workspace.Workspace) error {
		return w.SetTab(workspace.TabSEO)
	})
	require.NoError(t, err)

	got, _ := st.Get(s.ID)
	assert.Equal(t, workspace.TabSEO, got.Workspace.ActiveTab)
}

func TestReselectResetsWorkspace(t *testing.T) {
	st := NewStore(nil)
	s := st.Create(models.RoleAdmin)

	require.NoError(t, st.SelectSite(s.ID, "1"))
	require.NoError(t, st.Workspace(s.ID, func(w *workspace.Workspace) error {
		w.SubmitRequest()
		return nil
	}))
	require.NoError(t, st.Back(s.ID))
	require.NoError(t, st.SelectSite(s.ID, "1"))

	got, _ := st.Get(s.ID)
	assert.Len(t, got.Workspace.Requests, 2)
}

func TestDestroyThenLoginStartsFresh(t *testing.T) {
	st := NewStore(nil)

	for _, prepare := range []func(id string){
		func(id string) {},
		func(id string) { _ = st.SelectSite(id, "2") },
		func(id string) {
			_ = st.SelectSite(id, "2")
			_ = st.Workspace(id, func(w *workspace.Workspace) error { return w.SetTab(workspace.TabContent) })
		},
	} {
		s := st.Create(models.RoleAdmin)
		prepare(s.ID)

		st.Destroy(s.ID)
		_, err := st.Get(s.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		next := st.Create(models.RoleClient)
		assert.Equal(t, Nav{View: ViewOverview}, next.Nav)
		assert.Nil(t, next.Workspace)
		st.Destroy(next.ID)
	}

	assert.Zero(t, st.Len())
}

func TestUnknownSession(t *testing.T) {
	st := NewStore(nil)
	assert.ErrorIs(t, st.Back("nope"), ErrNotFound)
	assert.ErrorIs(t, st.SelectSite("nope", "1"), ErrNotFound)
}

func TestPruneDropsIdleSessions(t *testing.T) {
	now := time.Date(2024, 3, 21, 10, 0, 0, 0, time.UTC)
	st := NewStore(func() time.Time { return now })

	idle := st.Create(models.RoleClient)
	active := st.Create(models.RoleAdmin)

	now = now.Add(20 * time.Minute)
	_, err := st.Get(active.ID)
	require.NoError(t, err)

	now = now.Add(20 * time.Minute)
	assert.Equal(t, 1, st.Prune(30*time.Minute))
	assert.Equal(t, 1, st.Len())

	_, err = st.Get(idle.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.Get(active.ID)
	assert.NoError(t, err)
}

func TestUpdateKeepsSessionAlive(t *testing.T) {
	now := time.Date(2024, 3, 21, 10, 0, 0, 0, time.UTC)
	st := NewStore(func() time.Time { return now })
	s := st.Create(models.RoleAdmin)

	now = now.Add(50 * time.Minute)
	require.NoError(t, st.SelectSite(s.ID, "2"))

	now = now.Add(50 * time.Minute)
	assert.Equal(t, 0, st.Prune(time.Hour))
	assert.Equal(t, 1, st.Len())
}
