package reorg

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// CheckSyntax runs `node --check` against a temp copy of content. It is a
// best-effort signal: failures are reported to the caller, never corrected.
// Only JavaScript sources are checkable; anything else passes vacuously.
func CheckSyntax(content, path string) (bool, string, error) {
	if !strings.HasSuffix(path, ".js") {
		return true, "syntax validation not available for this file type", nil
	}

	tmp, err := os.CreateTemp("", "bdtk-syntax-*.js")
	if err != nil {
		return false, "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return false, "", fmt.Errorf("failed to write temp file: %w", err)
	}
	tmp.Close()

	cmd := exec.Command("node", "--check", tmp.Name())
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return false, stderr.String(), nil
		}
		return false, "", fmt.Errorf("`node --check` failed to run: %w", err)
	}
	return true, "", nil
}
