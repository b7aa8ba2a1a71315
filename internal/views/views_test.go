package views

import (
	"bytes"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	Length int
	Limit  int
	Over   bool
}

func TestParseDefinesPages(t *testing.T) {
	tmpl, err := Parse()
	require.NoError(t, err)

	for _, name := range []string{"login.html", "index.html", "main-content", "site-directory", "site-workspace", "seo-counter", "content-field"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestDateFormat(t *testing.T) {
	tmpl, err := Parse()
	require.NoError(t, err)

	var buf bytes.Buffer
	clone, err := tmpl.Clone()
	require.NoError(t, err)
	_, err = clone.New("probe").Parse(`{{date .}}`)
	require.NoError(t, err)
	require.NoError(t, clone.ExecuteTemplate(&buf, "probe", time.Date(2024, 3, 21, 10, 40, 0, 0, time.UTC)))
	assert.Equal(t, "3/21/2024", buf.String())
}

func TestSEOCounterRendersOverState(t *testing.T) {
	tmpl, err := Parse()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "seo-counter", map[string]interface{}{
		"Field":   "title",
		"Counter": counter{Length: 61, Limit: 60, Over: true},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `class="counter over"`)
	assert.Contains(t, buf.String(), "61/60")
}

func TestStaticHasStylesheet(t *testing.T) {
	b, err := fs.ReadFile(Static(), "app.css")
	require.NoError(t, err)
	assert.Contains(t, string(b), "--accent")
}
