package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// DefaultEnvFile is used when DOTENV_CONFIG_PATH is not set
const DefaultEnvFile = "./.env"

// EnvFilePath returns the dotenv file to load for a project.
// An explicit override wins, then DOTENV_CONFIG_PATH, then ./.env.
// Relative paths are resolved against the project root.
func EnvFilePath(projectRoot, override string) string {
	path := override
	if path == "" {
		path = os.Getenv(config.EnvDotenvPath)
	}
	if path == "" {
		path = DefaultEnvFile
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(projectRoot, path)
}

// LoadEnvFile applies a dotenv file to the process environment.
// Variables already present in the environment are not overridden.
// Returns false without error when the file does not exist.
func LoadEnvFile(path string, log *slog.Logger) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("dotenv file not found, using process environment only", "path", path)
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := godotenv.Load(path); err != nil {
		return false, fmt.Errorf("failed to load %s: %w", path, err)
	}

	log.Debug("loaded dotenv file", "path", path)
	return true, nil
}
