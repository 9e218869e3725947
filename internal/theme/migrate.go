package theme

import (
	"regexp"
	"sort"
	"strings"

	"github.com/blueflashxs/bdtk/internal/jstext"
)

// Migrate applies a replacement batch to theme CSS, touching only text
// outside comments and string literals. Longer literals win when one is a
// prefix of another. Returns the updated content and per-label match counts.
func Migrate(content string, replacements []Replacement) (string, map[string]int) {
	counts := make(map[string]int, len(replacements))
	for _, r := range replacements {
		counts[r.Label] = 0
	}
	if len(replacements) == 0 {
		return content, counts
	}

	byOld := make(map[string]Replacement, len(replacements))
	olds := make([]string, 0, len(replacements))
	for _, r := range replacements {
		byOld[r.Old] = r
		olds = append(olds, r.Old)
	}
	sort.Slice(olds, func(i, j int) bool { return len(olds[i]) > len(olds[j]) })

	// The stripped shadow buffer is byte-aligned with the original, with
	// comment and string interiors blanked, so matching against it is
	// matching outside comments and strings.
	stripped := jstext.Strip(content, jstext.CSS)

	var out strings.Builder
	out.Grow(len(content))

	i := 0
	for i < len(content) {
		replaced := false
		for _, old := range olds {
			if strings.HasPrefix(stripped[i:], old) {
				r := byOld[old]
				out.WriteString(r.New)
				counts[r.Label]++
				i += len(old)
				replaced = true
				break
			}
		}
		if !replaced {
			out.WriteByte(content[i])
			i++
		}
	}
	return out.String(), counts
}

var colorLiteralRegex = regexp.MustCompile(
	`rgba\(\s*\d+\s*,\s*\d+\s*,\s*\d+\s*,\s*[\d.]+\s*\)` +
		`|rgb\(\s*\d+\s*,\s*\d+\s*,\s*\d+\s*\)` +
		`|#[0-9a-fA-F]{3,8}`)

// validHexLiteral filters hex matches down to real color literals: 3, 6 or 8
// digits, not followed by another hex digit, underscore or dash (which would
// make it an identifier fragment).
func validHexLiteral(stripped, match string, end int) bool {
	if match[0] != '#' {
		return true // rgb()/rgba() forms
	}
	digits := len(match) - 1
	if digits != 3 && digits != 6 && digits != 8 {
		return false
	}
	if end < len(stripped) {
		next := stripped[end]
		if next == '_' || next == '-' ||
			(next >= '0' && next <= '9') ||
			(next >= 'a' && next <= 'f') ||
			(next >= 'A' && next <= 'F') {
			return false
		}
	}
	return true
}

// LiteralCount is one hardcoded color literal and how often it occurs.
type LiteralCount struct {
	Literal string
	Count   int
}

// CountColorLiterals tallies hardcoded color literals outside comments and
// strings, most frequent first.
func CountColorLiterals(content string) []LiteralCount {
	stripped := jstext.Strip(content, jstext.CSS)

	tally := make(map[string]int)
	for _, loc := range colorLiteralRegex.FindAllStringIndex(stripped, -1) {
		match := stripped[loc[0]:loc[1]]
		if validHexLiteral(stripped, match, loc[1]) {
			tally[match]++
		}
	}

	out := make([]LiteralCount, 0, len(tally))
	for literal, count := range tally {
		out = append(out, LiteralCount{Literal: literal, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Literal < out[j].Literal
	})
	return out
}

// TotalLiterals sums a census.
func TotalLiterals(census []LiteralCount) int {
	total := 0
	for _, lc := range census {
		total += lc.Count
	}
	return total
}
