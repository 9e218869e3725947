package reorg

import "strings"

// MoveSection deletes a validated section (marker lines included) from its
// original span, deletes the HERE marker line, and splices the body back in
// at the line-adjusted HERE position. The returned buffer is the only
// output; the input content is not modified.
//
// Callers move one section at a time and re-scan the mutated buffer before
// the next move, so no cross-section offset arithmetic happens here.
func MoveSection(content string, sec Section) string {
	lines := strings.Split(content, "\n")

	// Everything except the section span and the HERE marker line.
	kept := make([]string, 0, len(lines))
	insertAt := -1
	for i, line := range lines {
		lineNo := i + 1
		if lineNo >= sec.Start && lineNo <= sec.End {
			continue
		}
		if lineNo == sec.Here {
			// The body lands where the marker was.
			insertAt = len(kept)
			continue
		}
		kept = append(kept, line)
	}

	if insertAt < 0 {
		// HERE vanished between validation and move; leave the buffer as-is
		// minus nothing. Validation guarantees this does not happen.
		return content
	}

	result := make([]string, 0, len(kept)+len(sec.Body))
	result = append(result, kept[:insertAt]...)
	result = append(result, sec.Body...)
	result = append(result, kept[insertAt:]...)
	return strings.Join(result, "\n")
}
