package classmap

import (
	"reflect"
	"sort"
)

// ModuleChange holds the before/after class maps of one modified module.
type ModuleChange struct {
	Old map[string]string
	New map[string]string
}

// Changes is the module-level difference between two mapping snapshots.
type Changes struct {
	Added    map[string]map[string]string
	Removed  map[string]map[string]string
	Modified map[string]ModuleChange
}

// Empty reports whether nothing changed.
func (c *Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0 && len(c.Modified) == 0
}

// Diff compares a cached snapshot against the latest mapping.
func Diff(cached, latest Mapping) *Changes {
	changes := &Changes{
		Added:    make(map[string]map[string]string),
		Removed:  make(map[string]map[string]string),
		Modified: make(map[string]ModuleChange),
	}

	for id, classes := range latest {
		old, ok := cached[id]
		if !ok {
			changes.Added[id] = classes
			continue
		}
		if !reflect.DeepEqual(old, classes) {
			changes.Modified[id] = ModuleChange{Old: old, New: classes}
		}
	}
	for id, classes := range cached {
		if _, ok := latest[id]; !ok {
			changes.Removed[id] = classes
		}
	}
	return changes
}

// ClassChange is one semantic name whose hashed class moved.
type ClassChange struct {
	Semantic string
	Old      string
	New      string
	Module   string
}

// ExtractClassChanges flattens modified modules into individual class
// renames: same semantic name, different hash. Sorted by semantic name for
// stable reports.
func (c *Changes) ExtractClassChanges() []ClassChange {
	var out []ClassChange
	for id, mod := range c.Modified {
		for semantic, oldHashed := range mod.Old {
			newHashed, ok := mod.New[semantic]
			if ok && newHashed != oldHashed {
				out = append(out, ClassChange{
					Semantic: semantic,
					Old:      oldHashed,
					New:      newHashed,
					Module:   id,
				})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Semantic != out[j].Semantic {
			return out[i].Semantic < out[j].Semantic
		}
		return out[i].Old < out[j].Old
	})
	return out
}
