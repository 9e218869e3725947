// Package verify checks a .plugin.js source for duplicate and unused
// method definitions. Read-only; it reports, never edits.
package verify

import (
	"regexp"
	"sort"
	"strings"

	"github.com/blueflashxs/bdtk/internal/jstext"
)

var callPatterns = []*regexp.Regexp{
	// this.methodName(
	regexp.MustCompile(`this\.([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\(`),
	// getter access: this.PROP followed by a terminator, not a call
	regexp.MustCompile(`this\.([A-Z_][A-Z0-9_]*)\s*[;,\s)\]]`),
	// bare call: name( — also catches local helper usage
	regexp.MustCompile(`(?m)(?:^|[^.\w$])([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\(`),
}

// Names that look like definitions or calls but belong to the platform, not
// the plugin. Kept small on purpose; false "unused" noise is worse than a
// missed one.
var excluded = map[string]bool{
	"constructor": true, "if": true, "for": true, "while": true,
	"switch": true, "catch": true, "return": true, "function": true,
	"console": true, "require": true, "setTimeout": true, "setInterval": true,
	"clearTimeout": true, "clearInterval": true, "requestAnimationFrame": true,
	"cancelAnimationFrame": true, "BdApi": true,
	// BetterDiscord plugin lifecycle, invoked by the host.
	"start": true, "stop": true, "load": true, "onSwitch": true,
	"getSettingsPanel": true, "observer": true,
}

// Report is the outcome of one verification pass.
type Report struct {
	Defs       []jstext.Def
	Duplicates []string
	Unused     []jstext.Def
}

// Clean reports whether no problems were found.
func (r *Report) Clean() bool {
	return len(r.Duplicates) == 0 && len(r.Unused) == 0
}

// Analyze finds every definition and call site in content and cross-checks
// them. Strings and comments are ignored throughout.
func Analyze(content string) *Report {
	report := &Report{
		Defs:       jstext.FindDefs(content, jstext.JS),
		Duplicates: jstext.FindDuplicateDefs(content, jstext.JS),
	}

	defLines := make(map[string]map[int]bool)
	for _, def := range report.Defs {
		if defLines[def.Name] == nil {
			defLines[def.Name] = make(map[int]bool)
		}
		defLines[def.Name][def.Line] = true
	}

	// A name counts as called only when it is referenced on a line that is
	// not one of its own definition lines; otherwise the bare `name(` of
	// the definition would mark every method as used.
	stripped := jstext.Strip(content, jstext.JS)
	called := make(map[string]bool)
	for i, line := range strings.Split(stripped, "\n") {
		lineNo := i + 1
		for _, re := range callPatterns {
			for _, match := range re.FindAllStringSubmatch(line, -1) {
				name := match[1]
				if !defLines[name][lineNo] {
					called[name] = true
				}
			}
		}
	}

	for _, def := range report.Defs {
		if excluded[def.Name] || called[def.Name] {
			continue
		}
		report.Unused = append(report.Unused, def)
	}
	sort.Slice(report.Unused, func(i, j int) bool { return report.Unused[i].Line < report.Unused[j].Line })
	return report
}
