package classmap

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/yuin/goldmark"
)

// UpdateReport renders the per-theme report of broken class replacements,
// grouped by semantic name.
func UpdateReport(broken []BrokenClass) string {
	if len(broken) == 0 {
		return "All classes are up to date!"
	}

	var b strings.Builder
	b.WriteString("Discord Class Update Report\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	fmt.Fprintf(&b, "Total broken classes: %d\n\n", len(broken))

	bySemantic := make(map[string][]BrokenClass)
	for _, bc := range broken {
		bySemantic[bc.Semantic] = append(bySemantic[bc.Semantic], bc)
	}
	semantics := make([]string, 0, len(bySemantic))
	for s := range bySemantic {
		semantics = append(semantics, s)
	}
	sort.Strings(semantics)

	b.WriteString("Grouped by semantic name:\n")
	for _, semantic := range semantics {
		fmt.Fprintf(&b, "\n%s:\n", semantic)
		for _, bc := range bySemantic[semantic] {
			fmt.Fprintf(&b, "  %s -> %s\n", hashSuffix(bc.Old), hashSuffix(bc.New))
		}
	}
	return b.String()
}

func hashSuffix(class string) string {
	parts := strings.Split(class, "_")
	return parts[len(parts)-1]
}

// ChangeReport renders a monitor run as Markdown: module-level counts,
// individual class renames, and per-theme replacement totals.
func ChangeReport(changes *Changes, themeResults map[string]int, now time.Time) string {
	var b strings.Builder
	b.WriteString("# Discord Class Change Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))

	if len(changes.Added) > 0 {
		fmt.Fprintf(&b, "- New modules: %d\n", len(changes.Added))
	}
	if len(changes.Removed) > 0 {
		fmt.Fprintf(&b, "- Removed modules: %d\n", len(changes.Removed))
	}
	if len(changes.Modified) > 0 {
		fmt.Fprintf(&b, "- Modified modules: %d\n", len(changes.Modified))
	}

	classChanges := changes.ExtractClassChanges()
	if len(classChanges) > 0 {
		fmt.Fprintf(&b, "\n## Class changes (%d)\n\n", len(classChanges))
		for _, ch := range classChanges {
			fmt.Fprintf(&b, "- `%s`: `%s` -> `%s`\n", ch.Semantic, ch.Old, ch.New)
		}
	}

	if len(themeResults) > 0 {
		b.WriteString("\n## Theme updates\n\n")
		names := make([]string, 0, len(themeResults))
		for name := range themeResults {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if count := themeResults[name]; count > 0 {
				fmt.Fprintf(&b, "- %s: %d replacement(s)\n", name, count)
			} else {
				fmt.Fprintf(&b, "- %s: no updates needed\n", name)
			}
		}
	}
	return b.String()
}

// RenderHTML converts a Markdown report to HTML for archival viewing.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render report HTML: %w", err)
	}
	return buf.String(), nil
}

// ReportFileName returns the timestamped base name for a saved report.
func ReportFileName(now time.Time) string {
	return "update_" + now.Format("20060102_150405") + ".md"
}
