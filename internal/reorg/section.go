package reorg

import (
	"fmt"
	"strings"

	"github.com/blueflashxs/bdtk/internal/jstext"
)

// Section is a validated marker triple with its body text, ready to move.
// Invariants: Start < End and Here outside [Start, End].
type Section struct {
	Name  string
	Start int // line of the MOVE START marker
	End   int // line of the MOVE END marker
	Here  int // line of the MOVE HERE marker
	Body  []string
}

// ValidationResult carries the per-section error lists of one validation
// pass. A section with errors is excluded from the move pass.
type ValidationResult struct {
	Valid  []Section
	Errors map[string][]string
}

// Validate applies the guardrails to every scanned section:
//
//  1. exactly one START, END and HERE exist for the name
//  2. START precedes END
//  3. HERE is strictly outside [START, END]
//  4. the body slice has balanced braces and parens outside strings
//     and comments
//
// Sections failing any check are returned in Errors and excluded from
// Valid (fail-closed).
func Validate(content string, m *Markers) *ValidationResult {
	lines := strings.Split(content, "\n")
	result := &ValidationResult{Errors: make(map[string][]string)}

	for _, name := range m.Names() {
		set := m.Get(name)
		errs := append([]string{}, set.Errors...)

		if set.Start == 0 {
			errs = append(errs, "missing MOVE START marker")
		}
		if set.End == 0 {
			errs = append(errs, "missing MOVE END marker")
		}
		if set.Here == 0 {
			errs = append(errs, "missing MOVE HERE marker")
		}

		if set.Start != 0 && set.End != 0 && set.Start >= set.End {
			errs = append(errs, fmt.Sprintf(
				"START (line %d) must come before END (line %d)", set.Start, set.End))
		}
		if set.Complete() && set.Start < set.End && set.Here >= set.Start && set.Here <= set.End {
			errs = append(errs, fmt.Sprintf(
				"HERE (line %d) is inside the START-END range (%d-%d)", set.Here, set.Start, set.End))
		}

		var body []string
		if len(errs) == 0 {
			body = bodyLines(lines, set)
			balance := jstext.CountBalance(strings.Join(body, "\n"), jstext.JS)
			if balance.Braces != 0 {
				errs = append(errs, fmt.Sprintf("unbalanced braces (difference: %d)", balance.Braces))
			}
			if balance.Parens != 0 {
				errs = append(errs, fmt.Sprintf("unbalanced parentheses (difference: %d)", balance.Parens))
			}
		}

		if len(errs) > 0 {
			result.Errors[name] = errs
			continue
		}

		result.Valid = append(result.Valid, Section{
			Name:  name,
			Start: set.Start,
			End:   set.End,
			Here:  set.Here,
			Body:  body,
		})
	}
	return result
}

// bodyLines is the slice strictly between the START and END marker lines.
func bodyLines(lines []string, set *MarkerSet) []string {
	body := make([]string, 0, set.End-set.Start-1)
	for i := set.Start; i < set.End-1; i++ {
		body = append(body, lines[i])
	}
	return body
}
