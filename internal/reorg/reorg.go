// Package reorg relocates comment-delimited code sections inside a single
// source file. Sections are fenced with MOVE START/END markers and land at
// a MOVE HERE marker of the same name:
//
//	// MOVE START: lifecycle_methods
//	...
//	// MOVE END: lifecycle_methods
//	...
//	// MOVE HERE: lifecycle_methods
//
// Moves are processed one section at a time. After each successful move the
// whole buffer is re-scanned, because every line number below the splice
// shifts. A section that fails validation is skipped whole, with no partial
// edits; an earlier successful move is never rolled back when a later one
// fails.
package reorg

import (
	"errors"
	"fmt"

	"github.com/blueflashxs/bdtk/internal/jstext"
	"github.com/blueflashxs/bdtk/internal/ui"
)

// ErrNoValidSections means no section passed validation, so the whole run
// aborts without writing anything.
var ErrNoValidSections = errors.New("no valid sections found")

// Result is the outcome of one reorganization run.
type Result struct {
	Content  string
	Moved    []string
	Skipped  []string
	Errors   map[string][]string // per-section validation errors
	Warnings []string            // duplicate defs, orphaned doc comments
}

// Changed reports whether the buffer differs from the input.
func (r *Result) Changed() bool {
	return len(r.Moved) > 0
}

// Run scans, validates and moves every marked section in content,
// sequentially. It returns ErrNoValidSections when nothing passes
// validation; the caller must not write the file in that case.
func Run(content string) (*Result, error) {
	markers := ScanMarkers(content)
	if markers.Len() == 0 {
		return nil, errors.New("no MOVE markers found")
	}

	validation := Validate(content, markers)
	result := &Result{
		Content: content,
		Errors:  validation.Errors,
	}

	for _, name := range markers.Names() {
		if errs := validation.Errors[name]; len(errs) > 0 {
			ui.Error("Section '%s' failed validation:", name)
			for _, e := range errs {
				ui.Path("- %s", e)
			}
			result.Skipped = append(result.Skipped, name)
		} else {
			ui.Success("Section '%s' passed all guardrails", name)
		}
	}

	if len(validation.Valid) == 0 {
		return result, ErrNoValidSections
	}

	// Move one section at a time, re-scanning after every splice.
	remaining := make([]string, 0, len(validation.Valid))
	for _, sec := range validation.Valid {
		remaining = append(remaining, sec.Name)
	}

	for _, name := range remaining {
		current := ScanMarkers(result.Content)
		sec, ok := findValid(result.Content, current, name)
		if !ok {
			ui.Error("Section '%s' no longer validates after earlier moves, skipping", name)
			result.Skipped = append(result.Skipped, name)
			continue
		}

		ui.Info("Moving section '%s' (lines %d-%d -> line %d)", name, sec.Start, sec.End, sec.Here)
		result.Content = MoveSection(result.Content, sec)
		result.Moved = append(result.Moved, name)
	}

	result.Warnings = append(result.Warnings, jstext.FindDuplicateDefs(result.Content, jstext.JS)...)
	for _, line := range jstext.FindOrphanedDocComments(result.Content) {
		result.Warnings = append(result.Warnings, orphanWarning(line))
	}

	return result, nil
}

func findValid(content string, m *Markers, name string) (Section, bool) {
	if m.Get(name) == nil {
		return Section{}, false
	}
	validation := Validate(content, m)
	for _, sec := range validation.Valid {
		if sec.Name == name {
			return sec, true
		}
	}
	return Section{}, false
}

func orphanWarning(line int) string {
	return fmt.Sprintf("possible orphaned doc comment at line %d", line)
}
