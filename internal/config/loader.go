package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds an Analysis by layering, lowest precedence first:
//  1. defaults (Default())
//  2. YAML file named by TKL_CONFIG, if set
//  3. environment variables with the TKL_ prefix (TKL_WORKERS, ...)
func Load() (*Analysis, error) {
	k := koanf.New(".")

	if path := os.Getenv("TKL_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// TKL_FRAMES_PER_SECOND -> frames_per_second, etc. Underscores are kept
	// to match the koanf tags on the struct.
	envProvider := env.Provider("TKL_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "TKL_"))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
