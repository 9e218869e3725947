// bd-reorg relocates MOVE START/END/HERE marked sections inside a plugin
// source file, with validation guardrails and a .bak backup before any
// in-place rewrite.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/blueflashxs/bdtk/internal/apperr"
	"github.com/blueflashxs/bdtk/internal/reorg"
	"github.com/blueflashxs/bdtk/internal/textfile"
	"github.com/blueflashxs/bdtk/internal/tui"
	"github.com/blueflashxs/bdtk/internal/ui"
)

type config struct {
	inputPath      string
	outputPath     string
	dryRun         bool
	validateSyntax bool
	plain          bool
}

func parseFlags() (*config, error) {
	cfg := &config{}

	pflag.StringVarP(&cfg.outputPath, "output", "o", "", "Write the result to this path instead of rewriting the input in place.")
	pflag.BoolVar(&cfg.dryRun, "dry-run", false, "Show markers, validation results and previews without writing.")
	pflag.BoolVar(&cfg.validateSyntax, "validate-syntax", false, "Run `node --check` on the result (reported only, never corrected).")
	pflag.BoolVar(&cfg.plain, "plain", false, "Print plain output instead of the TUI.")

	pflag.Usage = func() {
		fmt.Println("Usage: bd-reorg [flags] <input-file>")
		fmt.Println("\nMove code sections delimited by // MOVE START/END: name markers")
		fmt.Println("to the matching // MOVE HERE: name marker, one section at a time.")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		return nil, fmt.Errorf("expected exactly one input file")
	}
	cfg.inputPath = pflag.Arg(0)
	return cfg, nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		ui.Fail(err)
		os.Exit(1)
	}
}

func run(cfg *config) (err error) {
	defer apperr.RecoverTo(&err)

	content, err := textfile.Read(cfg.inputPath)
	if err != nil {
		return err
	}

	if textfile.ProbeLocked(cfg.inputPath) {
		ui.Warning("File appears to be held open by another process: %s", cfg.inputPath)
	}

	if cfg.dryRun {
		return dryRun(content)
	}

	// The runner executes inside the TUI's goroutine, outside run's own
	// recovery, so it carries its own boundary.
	runner := func() (result *reorg.Result, err error) {
		defer apperr.RecoverTo(&err)

		result, err = reorg.Run(content)
		if err != nil {
			return nil, err
		}
		if err := write(cfg, result); err != nil {
			return nil, err
		}
		return result, nil
	}

	if cfg.plain {
		result, err := runner()
		if err != nil {
			return err
		}
		ui.PrintMoveSummary(result.Moved, result.Skipped, result.Warnings)
		return nil
	}

	model := tui.New(runner)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}

// write persists the result. In-place rewrites go through the backing-up
// Write; a separate output path leaves the input untouched. Nothing is
// written when no section moved.
func write(cfg *config, result *reorg.Result) error {
	if !result.Changed() {
		ui.Info("No sections moved; nothing written.")
		return nil
	}

	dest := cfg.outputPath
	if dest == "" || dest == cfg.inputPath {
		if err := textfile.Write(cfg.inputPath, result.Content); err != nil {
			return err
		}
		dest = cfg.inputPath
	} else {
		if err := textfile.WriteNoBackup(dest, result.Content); err != nil {
			return err
		}
	}
	ui.Success("Output written to: %s", dest)

	if cfg.validateSyntax {
		ok, detail, err := reorg.CheckSyntax(result.Content, dest)
		switch {
		case err != nil:
			ui.Warning("Syntax check could not run: %v", err)
		case !ok:
			ui.Error("Syntax validation failed:\n%s", detail)
			result.Warnings = append(result.Warnings, "syntax validation failed, manual review required")
		default:
			ui.Success("Syntax validation passed")
		}
	}
	return nil
}

func dryRun(content string) error {
	markers := reorg.ScanMarkers(content)
	if markers.Len() == 0 {
		return fmt.Errorf("no MOVE markers found")
	}

	ui.Header("Found %d section(s) with markers:", markers.Len())
	for _, name := range markers.Names() {
		set := markers.Get(name)
		ui.Path("- %s: START=%d END=%d HERE=%d", name, set.Start, set.End, set.Here)
	}

	validation := reorg.Validate(content, markers)
	for _, name := range markers.Names() {
		if errs := validation.Errors[name]; len(errs) > 0 {
			ui.Error("Section '%s' would be skipped:", name)
			for _, e := range errs {
				ui.Path("- %s", e)
			}
		}
	}
	for _, sec := range validation.Valid {
		preview := ""
		if len(sec.Body) > 0 {
			preview = sec.Body[0]
		}
		ui.Success("Section '%s': lines %d-%d (%d lines)", sec.Name, sec.Start, sec.End, len(sec.Body))
		if preview != "" {
			ui.Path("preview: %s", preview)
		}
	}

	ui.Info("\n[DRY RUN] No changes written")
	return nil
}
