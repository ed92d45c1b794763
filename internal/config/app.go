package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/aurorashell/pkg/log"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

type AppConfig struct {
	RuntimePath string `env:"AURORA_RUNTIME_PATH" envDefault:".aurora-cli"`

	// Prompting
	Plain   bool `env:"AURORA_PLAIN" envDefault:"false"`
	History bool `env:"AURORA_HISTORY" envDefault:"false"`

	// Output
	Output   string `env:"AURORA_OUTPUT" envDefault:"text"`
	NoBanner bool   `env:"AURORA_NO_BANNER" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("failed to parse App config: %w", err)
	}
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	log.FromCtx(ctx).Debug().
		Str("runtime", c.RuntimePath).
		Bool("plain", c.Plain).
		Str("output", c.Output).
		Msg("app config loaded")
	return c, nil
}

func (c AppConfig) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want %s or %s)", c.Output, OutputText, OutputJSON)
	}
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetHistoryPath() string {
	if !c.History {
		return ""
	}
	return filepath.Join(c.RuntimePath, "input_history")
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}
