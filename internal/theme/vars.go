package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var varRefRegex = regexp.MustCompile(`var\((--[a-zA-Z0-9-]+)\)`)

// DefinedVariables scans every *.css file in dir for custom property
// definitions (lines starting with "--name:").
func DefinedVariables(dir string) (map[string]struct{}, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.css"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	defined := make(map[string]struct{})
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			stripped := strings.TrimSpace(line)
			if !strings.HasPrefix(stripped, "--") {
				continue
			}
			name, _, ok := strings.Cut(stripped, ":")
			if !ok {
				continue
			}
			defined[strings.TrimSpace(name)] = struct{}{}
		}
	}
	return defined, nil
}

// UsedVariables collects every var(--x) reference a batch introduces.
func UsedVariables(replacements []Replacement) map[string]struct{} {
	used := make(map[string]struct{})
	for _, r := range replacements {
		for _, match := range varRefRegex.FindAllStringSubmatch(r.New, -1) {
			used[match[1]] = struct{}{}
		}
	}
	return used
}

// MissingVariables returns batch variables not defined in the variables
// directory, sorted. A non-empty result aborts the migration before the
// theme is touched.
func MissingVariables(used, defined map[string]struct{}) []string {
	var missing []string
	for name := range used {
		if _, ok := defined[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}
