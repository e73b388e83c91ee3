package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"

	"msx-backend/msx/actions"
)

// Config holds every setting the server reads from the environment.
type Config struct {
	Port    string `env:"PORT,default=3000"`
	AppEnv  string `env:"APP_ENV,default=development"`
	BaseURL string `env:"BASE_URL,default=http://localhost:3000"`

	AppName    string `env:"APP_NAME,default=MSX Player"`
	AppVersion string `env:"APP_VERSION,default=1.0.0"`

	PublicDir string `env:"PUBLIC_DIR,default=./public"`
	LogDir    string `env:"LOG_DIR,default=logs"`

	// PluginScriptURL is the client runtime script the interaction page loads.
	PluginScriptURL string `env:"TVX_PLUGIN_SCRIPT,default=//msx.benzac.de/js/tvx-plugin.min.js"`

	SearchResultCount int    `env:"SEARCH_RESULT_COUNT,default=3"`
	SampleVideoURL    string `env:"SAMPLE_VIDEO_URL,default=https://msx.benzac.de/media/thankyou.mp4"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT,default=10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT,default=10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s"`
}

// LoadEnvFile merges envFile into the process environment. A missing file is
// not fatal; the caller decides how to report the returned error once logging is up.
func LoadEnvFile(envFile string) error {
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("load %s: %w", envFile, err)
	}
	return nil
}

// Load decodes the environment into a validated Config.
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate normalizes the config and rejects values the server cannot run with.
func (c *Config) Validate() error {
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.BaseURL == "" {
		return errors.New("BASE_URL is required")
	}
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.SearchResultCount < 1 {
		return fmt.Errorf("SEARCH_RESULT_COUNT must be at least 1, got %d", c.SearchResultCount)
	}
	if strings.TrimSpace(c.SampleVideoURL) == "" {
		return errors.New("SAMPLE_VIDEO_URL is required")
	}
	if _, err := actions.Video(c.SampleVideoURL); err != nil {
		return fmt.Errorf("SAMPLE_VIDEO_URL: %w", err)
	}
	return nil
}

// GetEnv returns the value of an environment variable, or "" when unset.
func GetEnv(key string) string {
	return os.Getenv(key)
}
