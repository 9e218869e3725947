package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchLookup(t *testing.T) {
	batch, err := Batch("bg_101015")
	require.NoError(t, err)
	assert.NotEmpty(t, batch)

	_, err = Batch("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown batch")

	full, err := Batch("full")
	require.NoError(t, err)
	assert.Greater(t, len(full), len(batch))
}

func TestMigrateReplacesOutsideCommentsOnly(t *testing.T) {
	css := `/* keep rgba(10, 10, 15, 0.4) here */
.panel {
	background: rgba(10, 10, 15, 0.4);
	content: "rgba(10, 10, 15, 0.4)";
}`
	batch := []Replacement{
		{Old: "rgba(10, 10, 15, 0.4)", New: "var(--sl-color-bg-alpha-40)", Label: "bg-alpha-40"},
	}

	updated, counts := Migrate(css, batch)
	assert.Equal(t, 1, counts["bg-alpha-40"])
	assert.Contains(t, updated, "background: var(--sl-color-bg-alpha-40);")
	assert.Contains(t, updated, "/* keep rgba(10, 10, 15, 0.4) here */")
	assert.Contains(t, updated, `content: "rgba(10, 10, 15, 0.4)";`)
}

func TestMigrateLongestLiteralWins(t *testing.T) {
	css := ".a { color: #ffffff00; } .b { color: #ffffff; }"
	batch := []Replacement{
		{Old: "#ffffff", New: "var(--text)", Label: "text"},
		{Old: "#ffffff00", New: "var(--text-clear)", Label: "text-clear"},
	}

	updated, counts := Migrate(css, batch)
	assert.Equal(t, 1, counts["text"])
	assert.Equal(t, 1, counts["text-clear"])
	assert.Contains(t, updated, "var(--text-clear)")
	assert.Contains(t, updated, "var(--text)")
}

func TestMigrateNoMatches(t *testing.T) {
	css := ".a { color: blue; }"
	batch, err := Batch("text_whites")
	require.NoError(t, err)

	updated, counts := Migrate(css, batch)
	assert.Equal(t, css, updated)
	for label, count := range counts {
		assert.Zero(t, count, label)
	}
}

func TestCountColorLiterals(t *testing.T) {
	css := `/* #111111 in comment */
.a { color: #ffffff; background: rgba(0, 0, 0, 0.5); }
.b { color: #ffffff; border-color: #abc; }
.c { background-image: url(#gradient_fade); }`

	census := CountColorLiterals(css)
	byLiteral := make(map[string]int)
	for _, lc := range census {
		byLiteral[lc.Literal] = lc.Count
	}

	assert.Equal(t, 2, byLiteral["#ffffff"])
	assert.Equal(t, 1, byLiteral["rgba(0, 0, 0, 0.5)"])
	assert.Equal(t, 1, byLiteral["#abc"])
	assert.NotContains(t, byLiteral, "#111111", "comment content is ignored")
	assert.NotContains(t, byLiteral, "#gradient", "identifier fragments are not colors")

	assert.Equal(t, 4, TotalLiterals(census))
	assert.Equal(t, "#ffffff", census[0].Literal, "most frequent first")
}

func TestDefinedAndMissingVariables(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "colors.css"), []byte(`:root {
	--sl-color-text: #fff;
	--sl-color-bg-alpha-40: rgba(10, 10, 15, 0.4);
}`), 0644))

	defined, err := DefinedVariables(dir)
	require.NoError(t, err)
	assert.Contains(t, defined, "--sl-color-text")
	assert.Contains(t, defined, "--sl-color-bg-alpha-40")

	batch := []Replacement{
		{Old: "#ffffff", New: "var(--sl-color-text)", Label: "text"},
		{Old: "#000000", New: "var(--sl-color-void)", Label: "void"},
	}
	used := UsedVariables(batch)
	assert.Contains(t, used, "--sl-color-text")
	assert.Contains(t, used, "--sl-color-void")

	missing := MissingVariables(used, defined)
	assert.Equal(t, []string{"--sl-color-void"}, missing)
}
