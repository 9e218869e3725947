package classmap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMapping() Mapping {
	return Mapping{
		"100": {
			"container": "container_ae16b8",
			"wrapper":   "wrapper_f90abb",
		},
		"200": {
			"sidebar": "sidebar_ded4b5",
		},
	}
}

func TestExtractThemeClasses(t *testing.T) {
	css := `
.container_ae16b8 { color: red; }
.sidebar_ded4b5:hover { opacity: 1; }
[class*="wrapper_f90abb"] { display: none; }
[class*="noHashName"] { display: none; }
.plainclass { color: blue; }
`
	classes := ExtractThemeClasses(css)
	assert.Contains(t, classes, "container_ae16b8")
	assert.Contains(t, classes, "sidebar_ded4b5")
	assert.Contains(t, classes, "wrapper_f90abb")
	assert.NotContains(t, classes, "noHashName")
	assert.NotContains(t, classes, "plainclass")
}

func TestFindBroken(t *testing.T) {
	m := testMapping()
	themeClasses := map[string]struct{}{
		"container_ae16b8": {}, // current
		"sidebar_000000":   {}, // stale hash, semantic still exists
		"vanished_111111":  {}, // semantic gone entirely
	}

	broken := m.FindBroken(themeClasses)
	require.Len(t, broken, 1)
	assert.Equal(t, "sidebar_000000", broken[0].Old)
	assert.Equal(t, "sidebar_ded4b5", broken[0].New)
	assert.Equal(t, "sidebar", broken[0].Semantic)
}

func TestApplyBrokenAndIdempotence(t *testing.T) {
	css := `.sidebar_000000 { width: 10px; } [class*="sidebar_000000"] { color: red; }`
	broken := []BrokenClass{{Old: "sidebar_000000", New: "sidebar_ded4b5", Semantic: "sidebar"}}

	updated, count := ApplyBroken(css, broken)
	assert.Equal(t, 2, count)
	assert.Contains(t, updated, ".sidebar_ded4b5")
	assert.Contains(t, updated, `[class*="sidebar_ded4b5"]`)
	assert.NotContains(t, updated, "sidebar_000000")

	// Second pass with an unchanged mapping finds nothing to do.
	again := testMapping().FindBroken(ExtractThemeClasses(updated))
	assert.Empty(t, again)
	_, count = ApplyBroken(updated, again)
	assert.Zero(t, count)
}

func TestDiffAndExtractClassChanges(t *testing.T) {
	cached := testMapping()
	latest := Mapping{
		"100": {
			"container": "container_1a2b3c", // renamed
			"wrapper":   "wrapper_f90abb",   // unchanged
		},
		"300": {"chat": "chat_aabbcc"}, // added
		// "200" removed
	}

	changes := Diff(cached, latest)
	assert.Len(t, changes.Added, 1)
	assert.Len(t, changes.Removed, 1)
	assert.Len(t, changes.Modified, 1)
	assert.False(t, changes.Empty())

	classChanges := changes.ExtractClassChanges()
	require.Len(t, classChanges, 1)
	assert.Equal(t, "container", classChanges[0].Semantic)
	assert.Equal(t, "container_ae16b8", classChanges[0].Old)
	assert.Equal(t, "container_1a2b3c", classChanges[0].New)
}

func TestDiffIdentical(t *testing.T) {
	changes := Diff(testMapping(), testMapping())
	assert.True(t, changes.Empty())
	assert.Empty(t, changes.ExtractClassChanges())
}

func TestCacheRoundTrip(t *testing.T) {
	cache, err := NewCache(filepath.Join(t.TempDir(), "bdtk"))
	require.NoError(t, err)

	loaded, err := cache.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded, "empty cache loads as nil")

	m := testMapping()
	require.NoError(t, cache.Save(m))

	loaded, err = cache.Load()
	require.NoError(t, err)
	assert.Equal(t, m, loaded)

	hash := cache.Hash()
	assert.Len(t, hash, 65, "hex sha256 plus trailing newline")

	// Saving the same mapping leaves the sidecar identical.
	require.NoError(t, cache.Save(m))
	assert.Equal(t, hash, cache.Hash())
}

func TestCacheHashMatches(t *testing.T) {
	cache, err := NewCache(t.TempDir())
	require.NoError(t, err)

	m := testMapping()
	assert.False(t, cache.HashMatches(m), "no sidecar never matches")

	require.NoError(t, cache.Save(m))
	assert.True(t, cache.HashMatches(m))

	changed := testMapping()
	changed["100"]["container"] = "container_9f7e22"
	assert.False(t, cache.HashMatches(changed))
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"100": {"container": "container_ae16b8"}}`))
	}))
	defer srv.Close()

	fetcher := NewFetcher(srv.URL)
	m, err := fetcher.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "container_ae16b8", m["100"]["container"])
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewFetcher(srv.URL).Fetch(context.Background())
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"100": {"a": "a_111111"}}`), 0644))

	m, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a_111111", m["100"]["a"])

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestUpdateReport(t *testing.T) {
	assert.Equal(t, "All classes are up to date!", UpdateReport(nil))

	broken := []BrokenClass{
		{Old: "sidebar_000000", New: "sidebar_ded4b5", Semantic: "sidebar"},
		{Old: "sidebar_999999", New: "sidebar_ded4b5", Semantic: "sidebar"},
	}
	report := UpdateReport(broken)
	assert.Contains(t, report, "Total broken classes: 2")
	assert.Contains(t, report, "sidebar:")
	assert.Contains(t, report, "000000 -> ded4b5")
}

func TestChangeReportAndHTML(t *testing.T) {
	changes := Diff(testMapping(), Mapping{
		"100": {"container": "container_1a2b3c", "wrapper": "wrapper_f90abb"},
		"200": {"sidebar": "sidebar_ded4b5"},
	})
	now := time.Date(2025, 7, 14, 3, 0, 0, 0, time.UTC)

	report := ChangeReport(changes, map[string]int{"dark.theme.css": 2}, now)
	assert.Contains(t, report, "# Discord Class Change Report")
	assert.Contains(t, report, "Generated: 2025-07-14 03:00:00")
	assert.Contains(t, report, "`container`: `container_ae16b8` -> `container_1a2b3c`")
	assert.Contains(t, report, "dark.theme.css: 2 replacement(s)")

	html, err := RenderHTML(report)
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>")
	assert.Contains(t, html, "<code>container</code>")

	assert.Equal(t, "update_20250714_030000.md", ReportFileName(now))
}
