package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/tracker-tv/restlens-action/models"
)

// Config holds the action inputs and the runner context. Inputs follow the
// GitHub Actions convention of INPUT_<NAME> with the input name upper-cased.
type Config struct {
	APIToken           string        `env:"INPUT_API-TOKEN" validate:"required"`
	SpecPath           string        `env:"INPUT_SPEC-PATH" validate:"required"`
	FailOnError        bool          `env:"INPUT_FAIL-ON-ERROR" envDefault:"true"`
	FailOnWarning      bool          `env:"INPUT_FAIL-ON-WARNING" envDefault:"false"`
	PostPRComment      bool          `env:"INPUT_POST-PR-COMMENT" envDefault:"true"`
	PostInlineComments bool          `env:"INPUT_POST-INLINE-COMMENTS" envDefault:"true"`
	APIURL             string        `env:"INPUT_API-URL" envDefault:"https://api.restlens.dev" validate:"required,url"`
	AppURL             string        `env:"INPUT_APP-URL" envDefault:"https://restlens.dev" validate:"required,url"`
	GithubToken        string        `env:"INPUT_GITHUB-TOKEN"`
	PollInterval       time.Duration `env:"INPUT_POLL-INTERVAL" envDefault:"2s" validate:"gt=0"`
	MaxAttempts        int           `env:"INPUT_MAX-ATTEMPTS" envDefault:"60" validate:"gt=0"`

	Runner Runner
}

type Runner struct {
	EventName   string `env:"GITHUB_EVENT_NAME"`
	EventPath   string `env:"GITHUB_EVENT_PATH"`
	Repository  string `env:"GITHUB_REPOSITORY"`
	SHA         string `env:"GITHUB_SHA"`
	OutputPath  string `env:"GITHUB_OUTPUT"`
	StepSummary string `env:"GITHUB_STEP_SUMMARY"`
	APIURL      string `env:"GITHUB_API_URL" envDefault:"https://api.github.com"`
	Debug       bool   `env:"RUNNER_DEBUG"`
}

// InputEnvKey returns the environment variable the runner uses for an input.
func InputEnvKey(name string) string {
	return "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}

// Load reads an optional .env file, parses the environment and applies
// overrides keyed by input name (e.g. "spec-path") on top of it.
func Load(overrides map[string]string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return Parse(env.ToMap(os.Environ()), overrides)
}

func Parse(environ map[string]string, overrides map[string]string) (*Config, error) {
	merged := make(map[string]string, len(environ)+len(overrides))
	for k, v := range environ {
		merged[k] = v
	}
	for name, v := range overrides {
		merged[InputEnvKey(name)] = v
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: merged}); err != nil {
		return nil, err
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	cfg.AppURL = strings.TrimRight(cfg.AppURL, "/")

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Thresholds() models.Thresholds {
	return models.Thresholds{FailOnError: c.FailOnError, FailOnWarning: c.FailOnWarning}
}
