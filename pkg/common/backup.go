package common

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// BackupFile copies path to a timestamped sibling before the CLI
// overwrites it (cmd/generate's --overwrite flag). Returns the backup
// path, or "" if path doesn't exist yet (nothing to back up).
func BackupFile(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	dir, base := filepath.Split(path)
	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]
	backupPath := filepath.Join(dir, fmt.Sprintf("%s.%s.bak%s", stem, timestamp, ext))

	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup %s: %w", backupPath, err)
	}

	Verbose("Backed up: %s -> %s", path, backupPath)
	return backupPath, nil
}
