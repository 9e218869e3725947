// bd-classup detects Discord CSS classes in one theme file that have
// drifted behind the upstream class mapping and rewrites them to the
// current hashed names.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/pflag"

	"github.com/blueflashxs/bdtk/internal/apperr"
	"github.com/blueflashxs/bdtk/internal/classmap"
	"github.com/blueflashxs/bdtk/internal/config"
	"github.com/blueflashxs/bdtk/internal/textfile"
	"github.com/blueflashxs/bdtk/internal/ui"
)

type cfg struct {
	themePath   string
	classesJSON string
	dryRun      bool
	report      bool
	copyReport  bool
}

func parseFlags() (*cfg, error) {
	c := &cfg{}

	pflag.StringVar(&c.classesJSON, "classes-json", "", "Path to a local class mapping JSON (fetched from upstream when empty).")
	pflag.BoolVar(&c.dryRun, "dry-run", false, "Show what would be updated without writing.")
	pflag.BoolVar(&c.report, "report", false, "Print a detailed update report grouped by semantic name.")
	pflag.BoolVar(&c.copyReport, "copy", false, "Copy the report to the clipboard.")

	pflag.Usage = func() {
		fmt.Println("Usage: bd-classup [flags] <theme.css>")
		fmt.Println("\nUpdate broken Discord classes in a BetterDiscord theme.")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		return nil, fmt.Errorf("expected exactly one theme file")
	}
	c.themePath = pflag.Arg(0)
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

	settings, err := config.Load()
	if err != nil {
		return err
	}

	mapping, err := loadMapping(c, settings)
	if err != nil {
		return err
	}
	ui.Info("Loaded %d module mappings (%d classes total)", len(mapping), len(mapping.Reverse()))

	content, err := textfile.Read(c.themePath)
	if err != nil {
		return err
	}

	themeClasses := classmap.ExtractThemeClasses(content)
	ui.Info("Found %d Discord classes in theme", len(themeClasses))

	broken := mapping.FindBroken(themeClasses)
	if len(broken) == 0 {
		ui.Success("All classes are up to date!")
		return nil
	}

	ui.Warning("Found %d broken class(es)", len(broken))
	updated, count := classmap.ApplyBroken(content, broken)
	for _, b := range broken {
		ui.Path("%s -> %s (%s)", b.Old, b.New, b.Semantic)
	}

	if c.dryRun {
		ui.Info("\n[DRY RUN] %d replacement(s) not saved", count)
	} else {
		if err := textfile.Write(c.themePath, updated); err != nil {
			return err
		}
		ui.Success("Theme updated: %s (%d replacement(s))", filepath.Base(c.themePath), count)
		ui.Info("Backup saved: %s", filepath.Base(c.themePath)+".bak")
	}

	if c.report || c.copyReport {
		report := classmap.UpdateReport(broken)
		if c.report {
			fmt.Println("\n" + report)
		}
		if c.copyReport {
			if err := clipboard.WriteAll(report); err != nil {
				ui.Warning("Failed to copy report to clipboard: %v", err)
			} else {
				ui.Info("Report copied to clipboard")
			}
		}
	}
	return nil
}

func loadMapping(c *cfg, settings *config.Settings) (classmap.Mapping, error) {
	if c.classesJSON != "" {
		ui.Info("Loading Discord classes from: %s", c.classesJSON)
		return classmap.LoadFile(c.classesJSON)
	}
	ui.Info("Fetching latest Discord classes...")
	fetcher := classmap.NewFetcher(settings.ClassesURL)
	return fetcher.Fetch(context.Background())
}
