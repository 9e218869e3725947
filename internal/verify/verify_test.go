package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plugin = `module.exports = class CriticalHit {
	start() {
		this.attachObserver();
	}
	stop() {
		this.cleanup();
	}
	attachObserver() {
	}
	cleanup() {
	}
	deadHelper() {
	}
	cleanup() {
	}
};`

func TestAnalyzeFindsDuplicatesAndUnused(t *testing.T) {
	report := Analyze(plugin)
	assert.False(t, report.Clean())

	require.Len(t, report.Duplicates, 1)
	assert.Contains(t, report.Duplicates[0], "cleanup")

	require.Len(t, report.Unused, 1)
	assert.Equal(t, "deadHelper", report.Unused[0].Name)
}

func TestAnalyzeLifecycleMethodsAreNotUnused(t *testing.T) {
	src := `class P {
	start() {
	}
	stop() {
	}
}`
	report := Analyze(src)
	assert.Empty(t, report.Unused, "host-invoked lifecycle methods are exempt")
}

func TestAnalyzeIgnoresCallsInComments(t *testing.T) {
	src := `class P {
	start() {
	}
	// this.helper()
	helper() {
	}
}`
	report := Analyze(src)
	require.Len(t, report.Unused, 1)
	assert.Equal(t, "helper", report.Unused[0].Name)
}

func TestAnalyzeCleanSource(t *testing.T) {
	src := `class P {
	start() {
		this.helper();
	}
	helper() {
	}
}`
	report := Analyze(src)
	assert.True(t, report.Clean())
	assert.Empty(t, report.Duplicates)
	assert.Empty(t, report.Unused)
}
