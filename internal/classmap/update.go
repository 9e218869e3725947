package classmap

import (
	"fmt"
	"strings"
)

// Replace rewrites every occurrence of a hashed class in theme CSS, in both
// the .class selector form and the [class*=""] attribute form. Returns the
// updated content and the number of distinct replacements that matched.
func Replace(content, oldClass, newClass string) (string, int) {
	count := 0

	selector := "." + oldClass
	if strings.Contains(content, selector) {
		content = strings.ReplaceAll(content, selector, "."+newClass)
		count++
	}

	attr := fmt.Sprintf(`[class*="%s"]`, oldClass)
	if strings.Contains(content, attr) {
		content = strings.ReplaceAll(content, attr, fmt.Sprintf(`[class*="%s"]`, newClass))
		count++
	}
	return content, count
}

// ApplyBroken rewrites a set of broken classes found by FindBroken.
func ApplyBroken(content string, broken []BrokenClass) (string, int) {
	total := 0
	for _, b := range broken {
		var n int
		content, n = Replace(content, b.Old, b.New)
		total += n
	}
	return content, total
}

// ApplyChanges rewrites a set of upstream class renames found by Diff.
func ApplyChanges(content string, changes []ClassChange) (string, int) {
	total := 0
	for _, ch := range changes {
		var n int
		content, n = Replace(content, ch.Old, ch.New)
		total += n
	}
	return content, total
}
