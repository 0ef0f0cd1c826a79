package commands

import (
	"github.com/open-libra/open-libra/src/builder"
	"github.com/open-libra/open-libra/src/config"
	"github.com/sirupsen/logrus"
)

//CLIConfig contains the configuration of every open-libra command
type CLIConfig struct {
	OpenLibra    config.Config `mapstructure:",squash"`
	OutputDir    string        `mapstructure:"output"`
	Seed         string        `mapstructure:"seed"`
	Listen       string        `mapstructure:"listen"`
	Advertise    string        `mapstructure:"advertise"`
	Role         string        `mapstructure:"role"`
	Permissioned bool          `mapstructure:"permissioned"`
	Validators   int           `mapstructure:"validators"`
	MintKey      string        `mapstructure:"mint-key"`

	logger *logrus.Logger
}

//NewDefaultCLIConfig creates a CLIConfig with default values
func NewDefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		OpenLibra:    *config.NewDefaultConfig(),
		OutputDir:    config.DefaultOutputDir,
		Listen:       config.DefaultAddress,
		Advertise:    config.DefaultAddress,
		Role:         config.DefaultRole,
		Permissioned: true,
		Validators:   builder.DefaultValidators,
	}
}

// Logger returns the logger of the command, built from the log settings once
// flags and config file are loaded.
func (c *CLIConfig) Logger() *logrus.Logger {
	if c.logger != nil {
		return c.logger
	}
	return c.OpenLibra.Logger()
}
