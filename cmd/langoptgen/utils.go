package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// envFileFromArgs finds --env-file in raw arguments. Kong parses it too, but
// too late for env-tagged flags.
func envFileFromArgs(args []string) (path string, explicit bool) {
	for i, arg := range args {
		if arg == "--" {
			break
		}

		if value, ok := strings.CutPrefix(arg, "--env-file="); ok {
			return value, true
		}

		if arg == "--env-file" && i+1 < len(args) {
			return args[i+1], true
		}
	}

	return defaultEnvFile, false
}

// loadEnvFiles loads the env file. A missing default .env is skipped; a
// missing file named on the command line is an error.
func loadEnvFiles(path string, explicit bool) error {
	if !explicit && !fileExists(path) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	return nil
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// writeFile writes content to a file, creating directories if necessary
func writeFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	return os.WriteFile(path, content, 0o644)
}
