// Package classmap tracks the upstream mapping of semantic Discord CSS
// class names to their hashed runtime names, and patches theme files whose
// selectors have drifted behind it.
package classmap

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Mapping is the upstream JSON layout: module id -> semantic name -> hashed
// class (e.g. "container_ae16b8").
type Mapping map[string]map[string]string

// ParseMapping decodes the upstream JSON document.
func ParseMapping(data []byte) (Mapping, error) {
	var m Mapping
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse class mapping JSON: %w", err)
	}
	return m, nil
}

// Canonical returns a stable encoding of the mapping (sorted keys, indented)
// used for the cache file and its hash sidecar.
func (m Mapping) Canonical() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// Reverse maps every hashed class back to its semantic name.
func (m Mapping) Reverse() map[string]string {
	reverse := make(map[string]string)
	for _, classes := range m {
		for semantic, hashed := range classes {
			reverse[hashed] = semantic
		}
	}
	return reverse
}

// LookupSemantic finds the current hashed class for a semantic name,
// scanning modules in sorted order so the result is deterministic.
func (m Mapping) LookupSemantic(semantic string) (string, bool) {
	moduleIDs := make([]string, 0, len(m))
	for id := range m {
		moduleIDs = append(moduleIDs, id)
	}
	sort.Strings(moduleIDs)

	for _, id := range moduleIDs {
		if hashed, ok := m[id][semantic]; ok {
			return hashed, true
		}
	}
	return "", false
}

var (
	// .container_ae16b8
	selectorClassRegex = regexp.MustCompile(`\.[a-zA-Z][a-zA-Z0-9]*_[a-f0-9]{6}\b`)
	// [class*="container_ae16b8"]
	attrClassRegex = regexp.MustCompile(`\[class\*="([a-zA-Z][a-zA-Z0-9]*(?:_[a-f0-9]{6})?)"\]`)
)

// ExtractThemeClasses collects every hashed Discord class referenced by the
// theme CSS, from both .class selectors and [class*=""] attribute matches.
func ExtractThemeClasses(content string) map[string]struct{} {
	classes := make(map[string]struct{})

	for _, match := range selectorClassRegex.FindAllString(content, -1) {
		classes[strings.TrimPrefix(match, ".")] = struct{}{}
	}
	for _, match := range attrClassRegex.FindAllStringSubmatch(content, -1) {
		name := match[1]
		parts := strings.Split(name, "_")
		if len(parts) == 2 && len(parts[1]) == 6 {
			classes[name] = struct{}{}
		}
	}
	return classes
}

// BrokenClass pairs an outdated hashed class with its current replacement.
type BrokenClass struct {
	Old      string
	New      string
	Semantic string
}

// FindBroken returns theme classes that no longer exist in the mapping but
// whose semantic prefix still does, sorted by old class name.
func (m Mapping) FindBroken(themeClasses map[string]struct{}) []BrokenClass {
	current := m.Reverse()

	var broken []BrokenClass
	for class := range themeClasses {
		if _, ok := current[class]; ok {
			continue
		}
		parts := strings.Split(class, "_")
		if len(parts) != 2 {
			continue
		}
		if replacement, ok := m.LookupSemantic(parts[0]); ok {
			broken = append(broken, BrokenClass{Old: class, New: replacement, Semantic: parts[0]})
		}
	}
	sort.Slice(broken, func(i, j int) bool { return broken[i].Old < broken[j].Old })
	return broken
}
