// Package storage writes generated document artifacts to disk with an
// explicit save-conflict policy.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ConflictPolicy decides what happens when the target file already exists.
// The policy is configuration; intent is never inferred.
type ConflictPolicy string

// Conflict policies.
const (
	// ConflictFail refuses to touch an existing file.
	ConflictFail ConflictPolicy = "fail"
	// ConflictOverwrite replaces an existing file.
	ConflictOverwrite ConflictPolicy = "overwrite"
	// ConflictRename writes under a fresh timestamped name instead.
	ConflictRename ConflictPolicy = "rename"
)

// IsValid reports whether p is a known policy.
func (p ConflictPolicy) IsValid() bool {
	switch p {
	case ConflictFail, ConflictOverwrite, ConflictRename:
		return true
	}
	return false
}

// SaveDocument writes content to <dir>/<baseName><ext>, resolving an
// existing file per the policy. It returns the path actually written.
func SaveDocument(dir, baseName, ext, content string, policy ConflictPolicy) (string, error) {
	if !policy.IsValid() {
		return "", fmt.Errorf("unknown conflict policy %q", policy)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, baseName+ext)
	if _, err := os.Stat(path); err == nil {
		switch policy {
		case ConflictFail:
			return "", fmt.Errorf("output file already exists: %s", path)
		case ConflictRename:
			path = filepath.Join(dir, renamedBase(baseName)+ext)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, nil
}

// renamedBase derives a fresh name by appending a timestamp.
func renamedBase(baseName string) string {
	return fmt.Sprintf("%s_%s", baseName, time.Now().Format("20060102_150405"))
}

// SafeBaseName reduces a user-facing document name to a filesystem-safe
// base name, falling back to "resume" when nothing survives.
func SafeBaseName(name string) string {
	var out []rune
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		case r == ' ':
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "resume"
	}
	return string(out)
}
