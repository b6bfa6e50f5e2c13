// Package config resolves the configuration directory and the files kept in it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// AppName is the application directory name.
	AppName = "taskapp"

	// OAuthClientFile holds the Google OAuth client credentials.
	OAuthClientFile = "oauth_client.json"

	// TokenFile holds the stored OAuth token.
	TokenFile = "token.json"

	// EnvFile holds optional environment defaults, e.g. LOG_LEVEL.
	EnvFile = "taskapp.env"
)

// Config holds configuration paths and common flag values.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a Config for configDir, or the XDG default when it is empty.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir}, nil
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/taskapp, falling back to $HOME/.config/taskapp.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

func (c *Config) path(name string) string {
	return filepath.Join(c.Dir, name)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string { return c.path(OAuthClientFile) }

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string { return c.path(TokenFile) }

// EnvPath returns the path to the optional env file.
func (c *Config) EnvPath() string { return c.path(EnvFile) }

// LoadEnv loads the env file into the process environment.
// Variables already set in the environment are left alone.
// A missing file is not an error.
func (c *Config) LoadEnv() error {
	err := godotenv.Load(c.EnvPath())
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("invalid %s: %w", EnvFile, err)
}

// EnsureDir creates the config directory with mode 0700 if it doesn't exist.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// HasOAuthClient reports whether the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool { return exists(c.OAuthClientPath()) }

// HasToken reports whether the token file exists.
func (c *Config) HasToken() bool { return exists(c.TokenPath()) }

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
