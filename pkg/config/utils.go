package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindEnvFile resolves filename (".env" when empty) to an existing file.
// Absolute paths are checked as given. Relative names are looked up from
// the working directory upwards, stopping at the first directory holding
// a go.mod so a checkout never picks up a file from outside itself.
func FindEnvFile(filename string) (string, error) {
	if filename == "" {
		filename = ".env"
	}
	if filepath.IsAbs(filename) {
		if !isFile(filename) {
			return "", fmt.Errorf("env file %s: %w", filename, os.ErrNotExist)
		}
		return filename, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return searchUp(wd, filename)
}

func searchUp(dir, filename string) (string, error) {
	for {
		if candidate := filepath.Join(dir, filename); isFile(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir || isFile(filepath.Join(dir, "go.mod")) {
			return "", fmt.Errorf("env file %s above %s: %w", filename, dir, os.ErrNotExist)
		}
		dir = parent
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
