// bd-thememig migrates hardcoded color literals in a theme CSS file to
// var(--token) references from the modular variables directory. Dry-run by
// default; --apply writes after a timestamped backup.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"github.com/blueflashxs/bdtk/internal/apperr"
	"github.com/blueflashxs/bdtk/internal/textfile"
	"github.com/blueflashxs/bdtk/internal/theme"
	"github.com/blueflashxs/bdtk/internal/ui"
)

type cfg struct {
	themePath    string
	variablesDir string
	batch        string
	apply        bool
	report       bool
}

func parseFlags() (*cfg, error) {
	c := &cfg{}

	pflag.StringVar(&c.themePath, "theme", "", "Path to the theme .css file.")
	pflag.StringVar(&c.variablesDir, "variables-dir", "", "Directory of .css token files defining the variables.")
	pflag.StringVar(&c.batch, "batch", "", fmt.Sprintf("Replacement batch name (%s).", strings.Join(theme.BatchNames(), ", ")))
	pflag.BoolVar(&c.apply, "apply", false, "Write changes (default is dry-run).")
	pflag.BoolVar(&c.report, "report", false, "Print remaining hardcoded color literals before and after.")

	pflag.Usage = func() {
		fmt.Println("Usage: bd-thememig --theme <file> --variables-dir <dir> --batch <name> [flags]")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if c.themePath == "" || c.variablesDir == "" || c.batch == "" {
		pflag.Usage()
		return nil, fmt.Errorf("--theme, --variables-dir and --batch are required")
	}
	return c, nil
}

func main() {
	c, err := parseFlags()
	if err != nil {
		os.Exit(1)
	}
	if err := run(c); err != nil {
		ui.Fail(err)
		os.Exit(1)
	}
}

func run(c *cfg) (err error) {
	defer apperr.RecoverTo(&err)

	replacements, err := theme.Batch(c.batch)
	if err != nil {
		return err
	}

	defined, err := theme.DefinedVariables(c.variablesDir)
	if err != nil {
		return err
	}
	used := theme.UsedVariables(replacements)
	if missing := theme.MissingVariables(used, defined); len(missing) > 0 {
		return fmt.Errorf("batch introduces undefined vars: %s", strings.Join(missing, ", "))
	}

	original, err := textfile.Read(c.themePath)
	if err != nil {
		return err
	}

	updated, counts := theme.Migrate(original, replacements)
	changed := updated != original

	ui.Info("theme: %s", c.themePath)
	ui.Info("batch: %s", c.batch)
	ui.Info("changed: %v", changed)

	labels := make([]string, 0, len(counts))
	total := 0
	for label, count := range counts {
		labels = append(labels, label)
		total += count
	}
	sort.Strings(labels)
	for _, label := range labels {
		ui.Path("%s: %d", label, counts[label])
	}
	ui.Info("total replacements: %d", total)

	if c.report {
		printCensus(original, updated, replacements)
	}

	if !c.apply || !changed {
		if !c.apply {
			ui.Info("\n[DRY RUN] Use --apply to write changes")
		}
		return nil
	}

	backupPath, err := textfile.TimestampedBackup(c.themePath)
	if err != nil {
		return err
	}
	if err := textfile.WriteNoBackup(c.themePath, updated); err != nil {
		return err
	}
	ui.Success("backup: %s", backupPath)
	ui.Success("theme written: %s", c.themePath)
	return nil
}

func printCensus(original, updated string, replacements []theme.Replacement) {
	mapped := make(map[string]bool, len(replacements))
	for _, r := range replacements {
		mapped[r.Old] = true
	}

	before := theme.CountColorLiterals(original)
	ui.Header("\ncolor literals before: %d", theme.TotalLiterals(before))
	shown := 0
	for _, lc := range before {
		if mapped[lc.Literal] {
			continue
		}
		ui.Path("unmapped: %s = %d", lc.Literal, lc.Count)
		if shown++; shown >= 20 {
			break
		}
	}

	after := theme.CountColorLiterals(updated)
	ui.Header("\ncolor literals after: %d", theme.TotalLiterals(after))
	for i, lc := range after {
		if i >= 20 {
			break
		}
		ui.Path("remaining: %s = %d", lc.Literal, lc.Count)
	}
}
