// Package config loads agentlint's own settings.
//
// Settings are layered, highest precedence last:
//
//  1. Built-in defaults.
//  2. An optional YAML settings file (.agentlint.yaml unless --config names one).
//  3. An optional .env file next to it.
//  4. AGENTLINT_ environment variables, where "__" maps to "." (for example
//     AGENTLINT_BASELINE_DIR -> baseline_dir).
//
// Command-line flags are applied on top by the caller.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// DefaultFile is the settings file looked up in the working directory.
const DefaultFile = ".agentlint.yaml"

const envPrefix = "AGENTLINT_"

// Output formats.
const (
	FormatText = "text"
	FormatCI   = "ci"
	FormatJSON = "json"
)

// Settings controls how agentlint reports and where it keeps state.
type Settings struct {
	Format      string `koanf:"format" validate:"oneof=text ci json"`
	CI          bool   `koanf:"ci"`
	Strict      bool   `koanf:"strict"`
	NoColor     bool   `koanf:"no_color"`
	Debug       bool   `koanf:"debug"`
	LogFile     string `koanf:"log_file"`
	BaselineDir string `koanf:"baseline_dir" validate:"required"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Format:      FormatText,
		BaselineDir: DefaultBaselineDir(),
	}
}

// DefaultBaselineDir returns ~/.agentlint/baselines.
func DefaultBaselineDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".agentlint", "baselines")
	}
	return filepath.Join(home, ".agentlint", "baselines")
}

// Load builds Settings from the layers described in the package comment.
// An explicit path must exist; the default file is optional.
func Load(path string) (Settings, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	k := koanf.New(".")

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Settings{}, errors.Wrapf(err, "failed to load settings file %s", path)
		}
	} else if explicit {
		return Settings{}, errors.Wrapf(err, "settings file %s", path)
	}

	// .env is optional; a missing file is not an error.
	_ = godotenv.Load(filepath.Join(filepath.Dir(path), ".env"))

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(s, envPrefix), "__", "."))
	}), nil); err != nil {
		return Settings{}, errors.Wrap(err, "failed to read environment settings")
	}

	s := Defaults()
	if err := k.Unmarshal("", &s); err != nil {
		return Settings{}, errors.Wrap(err, "failed to decode settings")
	}
	if s.Format == "" {
		s.Format = FormatText
	}
	if s.BaselineDir == "" {
		s.BaselineDir = DefaultBaselineDir()
	}
	if envBool("CI") {
		s.CI = true
	}

	if err := Validate(s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the settings constraints.
func Validate(s Settings) error {
	if err := validator.New().Struct(s); err != nil {
		return errors.Wrap(err, "invalid settings")
	}
	return nil
}

// envBool reports whether the named variable holds a truthy value.
func envBool(name string) bool {
	switch strings.ToLower(os.Getenv(name)) {
	case "true", "1", "yes":
		return true
	}
	return false
}
