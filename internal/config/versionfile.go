package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptyVersionFile is returned when a pin file holds no version name
var ErrEmptyVersionFile = errors.New("version file is empty")

// FindVersionFile walks up from dir looking for a file called name.
// Returns the path if found, or empty string if the filesystem root was
// reached without a match.
func FindVersionFile(dir, name string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("cannot stat %s: %w", path, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// ReadVersionFile returns the first non-blank line of a pin file, trimmed.
func ReadVersionFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return "", fmt.Errorf("%w: %s", ErrEmptyVersionFile, path)
}

// WriteVersionFile writes version as the sole line of path. The file is
// replaced atomically so a reader never sees a partial pin.
func WriteVersionFile(path, version string) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(version+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// RemoveVersionFile deletes a pin file. A missing file is not an error.
func RemoveVersionFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}
