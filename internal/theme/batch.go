// Package theme migrates hardcoded color literals in a theme CSS file to
// var(--token) references defined in a modular variables directory.
package theme

import (
	"fmt"
	"sort"
	"strings"
)

// Replacement rewrites one exact color literal to a variable reference.
type Replacement struct {
	Old   string
	New   string
	Label string
}

// batches are the curated literal-to-token migrations for the SoloLeveling
// palette. Each batch is small enough to review as one diff.
var batches = map[string]func() []Replacement{
	"bg_101015":     batchBg101015,
	"purple_alphas": batchPurpleAlphas,
	"black_alphas":  batchBlackAlphas,
	"text_whites":   batchTextWhites,
	"full":          batchFull,
}

// Batch returns the named replacement batch.
func Batch(name string) ([]Replacement, error) {
	fn, ok := batches[name]
	if !ok {
		names := make([]string, 0, len(batches))
		for n := range batches {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown batch: %s (available: %s)", name, strings.Join(names, ", "))
	}
	return fn(), nil
}

// BatchNames lists the available batch names, sorted.
func BatchNames() []string {
	names := make([]string, 0, len(batches))
	for n := range batches {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func batchBg101015() []Replacement {
	return []Replacement{
		{Old: "rgba(10, 10, 15, 0.4)", New: "var(--sl-color-bg-alpha-40)", Label: "bg-alpha-40"},
		{Old: "rgba(10, 10, 15, 0.5)", New: "var(--sl-color-bg-alpha-50)", Label: "bg-alpha-50"},
		{Old: "rgba(10, 10, 15, 0.6)", New: "var(--sl-color-bg-alpha-60)", Label: "bg-alpha-60"},
		{Old: "rgba(10, 10, 15, 0.7)", New: "var(--sl-color-bg-alpha-70)", Label: "bg-alpha-70"},
		{Old: "rgba(10, 10, 15, 0.8)", New: "var(--sl-color-bg-alpha-80)", Label: "bg-alpha-80"},
		{Old: "rgba(10, 10, 15, 0.82)", New: "var(--sl-color-bg-alpha-82)", Label: "bg-alpha-82"},
		{Old: "rgba(10, 10, 15, 0.9)", New: "var(--sl-color-bg-alpha-90)", Label: "bg-alpha-90"},
		{Old: "rgba(10, 10, 15, 0.95)", New: "var(--sl-color-bg-alpha-95)", Label: "bg-alpha-95"},
	}
}

func batchPurpleAlphas() []Replacement {
	return []Replacement{
		{Old: "rgba(139, 92, 246, 0.24)", New: "var(--sl-color-purple-alpha-24)", Label: "purple-alpha-24"},
		{Old: "rgba(139, 92, 246, 0.28)", New: "var(--sl-color-purple-alpha-28)", Label: "purple-alpha-28"},
		{Old: "rgba(139, 92, 246, 0.3)", New: "var(--sl-color-purple-alpha-30)", Label: "purple-alpha-30"},
		{Old: "rgba(139, 92, 246, 0.34)", New: "var(--sl-color-purple-alpha-34)", Label: "purple-alpha-34"},
	}
}

func batchBlackAlphas() []Replacement {
	return []Replacement{
		{Old: "rgba(0, 0, 0, 0.3)", New: "var(--sl-color-black-alpha-30)", Label: "black-alpha-30"},
		{Old: "rgba(0, 0, 0, 0.4)", New: "var(--sl-color-black-alpha-40)", Label: "black-alpha-40"},
		{Old: "rgba(0, 0, 0, 0.5)", New: "var(--sl-color-black-alpha-50)", Label: "black-alpha-50"},
		{Old: "rgba(0, 0, 0, 0.6)", New: "var(--sl-color-black-alpha-60)", Label: "black-alpha-60"},
	}
}

func batchTextWhites() []Replacement {
	return []Replacement{
		{Old: "rgba(255, 255, 255, 0.7)", New: "var(--sl-color-text-alpha-70)", Label: "text-alpha-70"},
		{Old: "rgba(255, 255, 255, 0.85)", New: "var(--sl-color-text-alpha-85)", Label: "text-alpha-85"},
		{Old: "#ffffff", New: "var(--sl-color-text)", Label: "text"},
	}
}

func batchFull() []Replacement {
	var all []Replacement
	all = append(all, batchBg101015()...)
	all = append(all, batchPurpleAlphas()...)
	all = append(all, batchBlackAlphas()...)
	all = append(all, batchTextWhites()...)
	return all
}
