// bd-verify reports duplicate and unused function definitions in a
// .plugin.js source. Read-only; exits 1 when problems are found.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/blueflashxs/bdtk/internal/apperr"
	"github.com/blueflashxs/bdtk/internal/reorg"
	"github.com/blueflashxs/bdtk/internal/textfile"
	"github.com/blueflashxs/bdtk/internal/ui"
	"github.com/blueflashxs/bdtk/internal/verify"
)

func main() {
	var checkSyntax bool
	pflag.BoolVar(&checkSyntax, "check-syntax", false, "Also run `node --check` on the file.")

	pflag.Usage = func() {
		fmt.Println("Usage: bd-verify [flags] <plugin.js>")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(1)
	}

	clean, err := run(pflag.Arg(0), checkSyntax)
	if err != nil {
		ui.Fail(err)
		os.Exit(1)
	}
	if !clean {
		os.Exit(1)
	}
}

func run(path string, checkSyntax bool) (clean bool, err error) {
	defer apperr.RecoverTo(&err)

	content, err := textfile.Read(path)
	if err != nil {
		return false, err
	}

	report := verify.Analyze(content)
	ui.Info("Found %d definition(s)", len(report.Defs))

	if len(report.Duplicates) > 0 {
		ui.Error("Duplicates (%d):", len(report.Duplicates))
		for _, d := range report.Duplicates {
			ui.Path("- %s", d)
		}
	}
	if len(report.Unused) > 0 {
		ui.Warning("Defined but never used (%d):", len(report.Unused))
		for _, def := range report.Unused {
			ui.Path("- %s '%s' at line %d", def.Kind, def.Name, def.Line)
		}
	}

	syntaxOK := true
	if checkSyntax {
		ok, detail, err := reorg.CheckSyntax(content, path)
		switch {
		case err != nil:
			ui.Warning("Syntax check could not run: %v", err)
		case !ok:
			syntaxOK = false
			ui.Error("Syntax validation failed:\n%s", detail)
		default:
			ui.Success("Syntax validation passed")
		}
	}

	if report.Clean() && syntaxOK {
		ui.Success("No problems found")
		return true, nil
	}
	return false, nil
}
