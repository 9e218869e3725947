// Package textfile is the shared whole-file read/modify/write layer used by
// every tool in the kit. All edits go through Write, which takes a backup
// copy of the original before the destructive rewrite.
package textfile

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"
)

// Read returns the full content of path as a string.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// Write replaces the content of path, creating a .bak copy of the previous
// content first. The backup is skipped when the file does not exist yet.
func Write(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		if _, err := Backup(path); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteNoBackup replaces the content of path without taking a backup. Used
// when the destination differs from the source file.
func WriteNoBackup(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Backup copies path to path.bak and returns the backup path.
func Backup(path string) (string, error) {
	return backup(path, path+".bak")
}

// TimestampedBackup copies path to path.<stamp>.bak so repeated migrations
// never clobber an earlier backup.
func TimestampedBackup(path string) (string, error) {
	stamp := time.Now().Format("20060102-150405")
	return backup(path, fmt.Sprintf("%s.%s.bak", path, stamp))
}

func backup(path, backupPath string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s for backup: %w", path, err)
	}
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write backup %s: %w", backupPath, err)
	}
	return backupPath, nil
}

// ProbeLocked does a best-effort check for another process holding the file
// open for writing, by attempting an append-mode open. It only reports; no
// corrective action is taken.
func ProbeLocked(path string) bool {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return true
	}
	f.Close()
	return false
}

// SHA256 returns the hex-encoded SHA-256 of the file at path.
func SHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SHA256Bytes returns the hex-encoded SHA-256 of data.
func SHA256Bytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
