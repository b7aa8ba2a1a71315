package workspace

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehmann314159/nexuscrm/internal/models"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewStartsOnOverview(t *testing.T) {
	w := New("2", nil)
	assert.Equal(t, TabOverview, w.ActiveTab)
	assert.Equal(t, "2", w.Site.ID)
	assert.Equal(t, "TechFlow Solutions", w.Site.Name)
	assert.Len(t, w.Requests, 2)
	assert.Len(t, w.Fields, 4)
	assert.False(t, w.ModalOpen)
}

func TestSubmitRequestPrepends(t *testing.T) {
	at := time.Date(2024, 4, 1, 9, 30, 0, 0, time.UTC)
	w := New("1", fixedClock(at))
	prior := append([]models.ChangeRequest(nil), w.Requests...)

	w.OpenRequestModal()
	w.UpdateDraft(Draft{Title: "Update Footer", Location: "Footer", Description: "Make it blue"})
	req := w.SubmitRequest()

	require.Len(t, w.Requests, len(prior)+1)
	head := w.Requests[0]
	assert.Equal(t, req, head)
	assert.Equal(t, "Update Footer", head.Title)
	assert.Equal(t, "Footer", head.Location)
	assert.Equal(t, "Make it blue", head.Description)
	assert.Equal(t, models.RequestPending, head.Status)
	assert.Equal(t, "1", head.SiteID)
	assert.NotEmpty(t, head.ID)
	assert.Equal(t, "1711963800000", head.ID)
	assert.Equal(t, at, head.CreatedAt)
	assert.Equal(t, prior, w.Requests[1:])

	assert.False(t, w.ModalOpen)
	assert.Equal(t, Draft{}, w.Draft)
}

func TestSubmitRequestSameMillisecondGetsDistinctIDs(t *testing.T) {
	w := New("1", fixedClock(time.UnixMilli(1000)))
	a := w.SubmitRequest()
	b := w.SubmitRequest()
	assert.Equal(t, "1000", a.ID)
	assert.Equal(t, "1001", b.ID)
	assert.Equal(t, b.ID, w.Requests[0].ID)
}

func TestSubmitRequestAllowsEmptyDraft(t *testing.T) {
	w := New("1", nil)
	req := w.SubmitRequest()
	assert.Empty(t, req.Title)
	assert.Equal(t, models.RequestPending, req.Status)
	assert.Len(t, w.Requests, 3)
}

func TestCancelRequestDiscardsDraft(t *testing.T) {
	w := New("1", nil)
	prior := append([]models.ChangeRequest(nil), w.Requests...)

	w.OpenRequestModal()
	w.UpdateDraft(Draft{Title: "Half typed"})
	w.CancelRequest()

	assert.False(t, w.ModalOpen)
	assert.Equal(t, Draft{}, w.Draft)
	assert.Equal(t, prior, w.Requests)
}

func TestUpdateFieldOnlyTouchesTarget(t *testing.T) {
	w := New("1", nil)
	before := append([]models.ContentField(nil), w.Fields...)

	f, err := w.UpdateField("c2", "New subtext")
	require.NoError(t, err)
	assert.Equal(t, "New subtext", f.Value)

	for i, field := range w.Fields {
		if field.ID == "c2" {
			assert.Equal(t, "New subtext", field.Value)
			assert.Equal(t, before[i].Type, field.Type)
			continue
		}
		assert.Equal(t, before[i], field)
	}
}

func TestUpdateFieldErrors(t *testing.T) {
	w := New("1", nil)

	_, err := w.UpdateField("missing", "x")
	assert.ErrorIs(t, err, ErrFieldNotFound)

	_, err = w.UpdateField("c3", "https://example.com/x.png")
	assert.ErrorIs(t, err, ErrFieldNotEditable)
	img, _ := w.Field("c3")
	assert.Equal(t, "https://picsum.photos/seed/hero/800/400", img.Value)
}

func TestUpdateSEO(t *testing.T) {
	w := New("1", nil)
	require.NoError(t, w.UpdateSEO("title", "A"))
	require.NoError(t, w.UpdateSEO("description", "B"))
	require.NoError(t, w.UpdateSEO("ogTitle", "C"))
	require.NoError(t, w.UpdateSEO("ogDescription", "D"))
	assert.Equal(t, models.SEOData{Title: "A", Description: "B", OGTitle: "C", OGDescription: "D"}, w.SEO)

	assert.ErrorIs(t, w.UpdateSEO("keywords", "x"), ErrUnknownSEOField)
}

func TestSEOCountersThreshold(t *testing.T) {
	w := New("1", nil)

	require.NoError(t, w.UpdateSEO("title", strings.Repeat("a", 60)))
	assert.Equal(t, Counter{Length: 60, Limit: 60, Over: false}, w.TitleCounter())

	require.NoError(t, w.UpdateSEO("title", strings.Repeat("a", 61)))
	assert.True(t, w.TitleCounter().Over)

	require.NoError(t, w.UpdateSEO("description", strings.Repeat("b", 160)))
	assert.False(t, w.DescriptionCounter().Over)

	require.NoError(t, w.UpdateSEO("description", strings.Repeat("b", 161)))
	assert.True(t, w.DescriptionCounter().Over)
}

func TestCounterCountsUTF16Units(t *testing.T) {
	assert.Equal(t, 2, NewCounter("😀", 60).Length)
	assert.Equal(t, 1, NewCounter("é", 60).Length)
}

func TestSetTabKeepsState(t *testing.T) {
	w := New("1", nil)
	_, err := w.UpdateField("c1", "Edited")
	require.NoError(t, err)
	require.NoError(t, w.UpdateSEO("title", "Edited title"))
	w.UpdateDraft(Draft{Title: "draft"})

	for _, tab := range []Tab{TabChanges, TabContent, TabSEO, TabOverview} {
		require.NoError(t, w.SetTab(tab))
		assert.Equal(t, tab, w.ActiveTab)
	}

	f, _ := w.Field("c1")
	assert.Equal(t, "Edited", f.Value)
	assert.Equal(t, "Edited title", w.SEO.Title)
	assert.Equal(t, "draft", w.Draft.Title)

	assert.ErrorIs(t, w.SetTab("billing"), ErrUnknownTab)
	assert.Equal(t, TabOverview, w.ActiveTab)
}
