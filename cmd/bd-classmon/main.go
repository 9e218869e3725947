// bd-classmon watches the upstream Discord class mapping for changes,
// keeps a local cache of the last-seen snapshot, and rewrites monitored
// themes when classes move.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/pflag"

	"github.com/blueflashxs/bdtk/internal/apperr"
	"github.com/blueflashxs/bdtk/internal/classmap"
	"github.com/blueflashxs/bdtk/internal/config"
	"github.com/blueflashxs/bdtk/internal/textfile"
	"github.com/blueflashxs/bdtk/internal/ui"
)

type cfg struct {
	check      bool
	update     bool
	themes     []string
	renderHTML bool
	copyReport bool
}

func parseFlags() (*cfg, error) {
	c := &cfg{}

	pflag.BoolVar(&c.check, "check", false, "Check for upstream changes without touching themes or the cache.")
	pflag.BoolVar(&c.update, "update", false, "Apply upstream changes to monitored themes and advance the cache.")
	pflag.StringSliceVar(&c.themes, "theme", nil, "Theme file to monitor (repeatable; defaults to BDTK_THEMES).")
	pflag.BoolVar(&c.renderHTML, "html", false, "Also render the saved report to HTML.")
	pflag.BoolVar(&c.copyReport, "copy", false, "Copy the report to the clipboard.")

	pflag.Usage = func() {
		fmt.Println("Usage: bd-classmon [flags]")
		fmt.Println("\nMonitor the upstream Discord class mapping and update themes.")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if c.check == c.update {
		pflag.Usage()
		return nil, fmt.Errorf("exactly one of --check or --update is required")
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

	settings, err := config.Load()
	if err != nil {
		return err
	}
	if len(c.themes) == 0 {
		c.themes = settings.ThemePaths
	}

	cache, err := classmap.NewCache(settings.CacheDir)
	if err != nil {
		return err
	}

	ui.Info("Fetching latest Discord classes...")
	fetcher := classmap.NewFetcher(settings.ClassesURL)
	latest, err := fetcher.Fetch(context.Background())
	if err != nil {
		return err
	}

	if cache.HashMatches(latest) {
		ui.Success("No changes detected (snapshot hash unchanged)")
		return nil
	}

	cached, done, err := baseline(c.update, cache, latest)
	if err != nil || done {
		return err
	}

	changes := classmap.Diff(cached, latest)
	if changes.Empty() {
		ui.Success("No changes detected")
		return nil
	}

	classChanges := changes.ExtractClassChanges()
	ui.Warning("Changes detected: %d class rename(s)", len(classChanges))

	if c.check {
		report := classmap.ChangeReport(changes, nil, time.Now())
		fmt.Println(report)
		return copyIfAsked(c, report)
	}

	// Update mode.
	themeResults, missing := updateThemes(c.themes, classChanges)
	ui.PrintUpdateSummary(themeResults, missing)

	if err := cache.Save(latest); err != nil {
		return err
	}

	report := classmap.ChangeReport(changes, themeResults, time.Now())
	fmt.Println(report)

	if err := saveReport(cache, report, c.renderHTML); err != nil {
		ui.Warning("Failed to save report: %v", err)
	}
	return copyIfAsked(c, report)
}

// baseline loads the cached snapshot to diff against. On a first run there
// is nothing to compare: --update primes the cache with the fetched
// snapshot, --check leaves the filesystem untouched. done reports that the
// run is finished either way.
func baseline(update bool, cache *classmap.Cache, latest classmap.Mapping) (cached classmap.Mapping, done bool, err error) {
	cached, err = cache.Load()
	if err != nil {
		return nil, false, err
	}
	if cached != nil {
		return cached, false, nil
	}

	if !update {
		ui.Info("No cache found; run --update to prime it.")
		return nil, true, nil
	}
	ui.Info("No cache found; priming cache with the current snapshot.")
	if err := cache.Save(latest); err != nil {
		return nil, false, err
	}
	ui.Success("Cache written to %s", cache.Dir)
	return nil, true, nil
}

// updateThemes applies the class renames to every monitored theme, taking a
// .bak backup before each rewrite. Returns per-theme replacement counts and
// the themes that could not be found.
func updateThemes(themes []string, classChanges []classmap.ClassChange) (map[string]int, []string) {
	results := make(map[string]int)
	var missing []string

	bar := ui.NewProgressBar(len(themes), "Updating themes")
	bar.Start()
	defer bar.Finish()

	for _, path := range themes {
		bar.Increment()
		content, err := textfile.Read(path)
		if err != nil {
			missing = append(missing, path)
			continue
		}

		updated, count := classmap.ApplyChanges(content, classChanges)
		name := filepath.Base(path)
		results[name] = count
		if count == 0 {
			continue
		}

		if err := textfile.Write(path, updated); err != nil {
			ui.Error("Failed to update %s: %v", name, err)
			results[name] = 0
		}
	}
	return results, missing
}

func saveReport(cache *classmap.Cache, report string, renderHTML bool) error {
	dir, err := cache.ReportDir()
	if err != nil {
		return err
	}

	name := classmap.ReportFileName(time.Now())
	path := filepath.Join(dir, name)
	if err := textfile.WriteNoBackup(path, report); err != nil {
		return err
	}
	ui.Info("Report saved: %s", path)

	if renderHTML {
		html, err := classmap.RenderHTML(report)
		if err != nil {
			return err
		}
		htmlPath := strings.TrimSuffix(path, ".md") + ".html"
		if err := textfile.WriteNoBackup(htmlPath, html); err != nil {
			return err
		}
		ui.Info("HTML report saved: %s", htmlPath)
	}
	return nil
}

func copyIfAsked(c *cfg, report string) error {
	if !c.copyReport {
		return nil
	}
	if err := clipboard.WriteAll(report); err != nil {
		ui.Warning("Failed to copy report to clipboard: %v", err)
		return nil
	}
	ui.Info("Report copied to clipboard")
	return nil
}
