package reorg

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	startMarkerRegex = regexp.MustCompile(`(?i)//\s*MOVE\s+START\s*:\s*(\w+)`)
	endMarkerRegex   = regexp.MustCompile(`(?i)//\s*MOVE\s+END\s*:\s*(\w+)`)
	hereMarkerRegex  = regexp.MustCompile(`(?i)//\s*MOVE\s+HERE\s*:\s*(\w+)`)
)

// MarkerSet holds the marker line numbers found for one section name.
// A zero line number means the marker is absent. Duplicate markers are
// recorded as errors and the first occurrence wins.
type MarkerSet struct {
	Name   string
	Start  int
	End    int
	Here   int
	Errors []string
}

// Complete reports whether all three markers are present.
func (s *MarkerSet) Complete() bool {
	return s.Start != 0 && s.End != 0 && s.Here != 0
}

// Markers is the full marker inventory of a buffer, in first-appearance
// order.
type Markers struct {
	order []string
	sets  map[string]*MarkerSet
}

// Names returns section names in the order their first marker appears.
func (m *Markers) Names() []string {
	return m.order
}

// Get returns the marker set for a section name, or nil.
func (m *Markers) Get(name string) *MarkerSet {
	return m.sets[name]
}

// Len returns the number of distinct section names.
func (m *Markers) Len() int {
	return len(m.order)
}

// ScanMarkers finds every MOVE START/END/HERE marker in content. Line
// numbers are 1-based. Markers are ephemeral: callers re-scan from the
// current buffer after every mutation instead of adjusting offsets.
func ScanMarkers(content string) *Markers {
	m := &Markers{sets: make(map[string]*MarkerSet)}

	record := func(name string, line int, field *int, kind string) {
		if *field != 0 {
			set := m.sets[name]
			set.Errors = append(set.Errors, fmt.Sprintf(
				"duplicate MOVE %s at line %d (first at line %d)", kind, line, *field))
			return
		}
		*field = line
	}

	for i, line := range strings.Split(content, "\n") {
		lineNo := i + 1
		if match := startMarkerRegex.FindStringSubmatch(line); match != nil {
			set := m.ensure(match[1])
			record(set.Name, lineNo, &set.Start, "START")
		}
		if match := endMarkerRegex.FindStringSubmatch(line); match != nil {
			set := m.ensure(match[1])
			record(set.Name, lineNo, &set.End, "END")
		}
		if match := hereMarkerRegex.FindStringSubmatch(line); match != nil {
			set := m.ensure(match[1])
			record(set.Name, lineNo, &set.Here, "HERE")
		}
	}
	return m
}

func (m *Markers) ensure(name string) *MarkerSet {
	if set, ok := m.sets[name]; ok {
		return set
	}
	set := &MarkerSet{Name: name}
	m.sets[name] = set
	m.order = append(m.order, name)
	return set
}
