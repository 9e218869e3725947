package ui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/blueflashxs/bdtk/internal/apperr"
)

var (
	HeaderColor  = color.New(color.FgBlue, color.Bold)
	InfoColor    = color.New(color.FgCyan)
	SuccessColor = color.New(color.FgGreen)
	WarningColor = color.New(color.FgYellow)
	ErrorColor   = color.New(color.FgRed)
	PathColor    = color.New(color.FgYellow)
)

func Header(format string, a ...interface{}) {
	HeaderColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Info(format string, a ...interface{}) {
	InfoColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Success(format string, a ...interface{}) {
	SuccessColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Warning(format string, a ...interface{}) {
	WarningColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Error(format string, a ...interface{}) {
	ErrorColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Path(format string, a ...interface{}) {
	PathColor.Fprintf(os.Stderr, "  "+format+"\n", a...)
}

// Fail prints a fatal error. When the error carries a stack from a
// recovered panic, the stack is printed first.
func Fail(err error) {
	var de *apperr.DetailedError
	if errors.As(err, &de) {
		fmt.Fprintf(os.Stderr, "\n--- Stack Trace ---\n%s\n", de.Stack)
	}
	Error("Error: %v", err)
}

// --- Summaries ---

// PrintMoveSummary reports the outcome of a reorganization run.
func PrintMoveSummary(moved, skipped, warnings []string) {
	Header("\n--- Reorganization Summary ---")

	if len(moved) == 0 && len(skipped) == 0 {
		Info("No sections were processed.")
		return
	}

	if len(moved) > 0 {
		Success("Moved %d section(s):", len(moved))
		for _, name := range moved {
			fmt.Printf("  - %s\n", name)
		}
	}
	if len(skipped) > 0 {
		Error("Skipped %d section(s):", len(skipped))
		for _, name := range skipped {
			fmt.Printf("  - %s\n", name)
		}
	}
	if len(warnings) > 0 {
		Warning("%d warning(s) after reorganization:", len(warnings))
		for _, w := range warnings {
			fmt.Printf("  - %s\n", w)
		}
		Warning("Review the output file manually to ensure correctness.")
	}
}

// PrintUpdateSummary reports the outcome of a theme class update run.
// updated maps theme file name to the number of replacements applied.
func PrintUpdateSummary(updated map[string]int, missing []string) {
	Header("\n--- Update Summary ---")

	if len(updated) == 0 && len(missing) == 0 {
		Info("No themes were updated.")
		return
	}

	for name, count := range updated {
		if count > 0 {
			Success("Updated %s: %d replacement(s)", name, count)
		} else {
			Info("No updates needed for %s", name)
		}
	}
	for _, name := range missing {
		Warning("Theme not found: %s", name)
	}
}

// --- Progress Bar ---

type ProgressBar struct {
	total   int
	prefix  string
	current int
}

func NewProgressBar(total int, prefix string) *ProgressBar {
	return &ProgressBar{total: total, prefix: prefix}
}

func (p *ProgressBar) Start() {
	p.draw()
}

func (p *ProgressBar) Increment() {
	p.current++
	p.draw()
}

func (p *ProgressBar) Finish() {
	fmt.Fprintln(os.Stderr)
}

func (p *ProgressBar) draw() {
	if p.total == 0 {
		return
	}
	const barLength = 40
	percent := float64(p.current) / float64(p.total)
	filledLength := int(percent * barLength)
	bar := strings.Repeat("█", filledLength) + strings.Repeat("-", barLength-filledLength)

	percentStr := fmt.Sprintf("%.1f%%", percent*100)
	countStr := fmt.Sprintf("[%d/%d]", p.current, p.total)

	fmt.Fprintf(os.Stderr, "\r%s |%s| %s %s", p.prefix, bar, countStr, percentStr)
}
