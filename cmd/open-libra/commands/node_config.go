package commands

import (
	"github.com/open-libra/open-libra/src/builder"
	"github.com/open-libra/open-libra/src/common"
	"github.com/open-libra/open-libra/src/config"
	"github.com/open-libra/open-libra/src/crypto/keys"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewConfigCmd produces a ConfigCmd which generates the keys and configuration
// of a validator node
func NewConfigCmd(c *CLIConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Generate validator keys and node configuration",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlagsLoadViper(cmd, c)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(c)
		},
	}

	AddConfigFlags(cmd, c)

	return cmd
}

//AddConfigFlags adds flags to the config command
func AddConfigFlags(cmd *cobra.Command, c *CLIConfig) {
	cmd.Flags().StringP("output", "o", c.OutputDir, "Directory where the node files will be written")
	cmd.Flags().String("seed", c.Seed, "Hex encoded 32 byte seed for deterministic keys")
	cmd.Flags().String("listen", c.Listen, "Listen multiaddr")
	cmd.Flags().String("advertise", c.Advertise, "Advertised multiaddr")
	cmd.Flags().String("role", c.Role, "Node role (validator)")
	cmd.Flags().Bool("permissioned", c.Permissioned, "Permissioned validator network")
	cmd.Flags().Int("validators", c.Validators, "Number of validators to generate")
}

func runConfig(c *CLIConfig) error {
	logger := c.Logger().WithField("prefix", "config")

	logger.WithFields(logrus.Fields{
		"output":       c.OutputDir,
		"listen":       c.Listen,
		"advertise":    c.Advertise,
		"role":         c.Role,
		"permissioned": c.Permissioned,
		"validators":   c.Validators,
	}).Debug("CONFIG")

	variant, err := config.VariantFor(c.Role, c.Permissioned)
	if err != nil {
		return err
	}

	listen, err := config.ParseAddress(c.Listen)
	if err != nil {
		return err
	}

	advertise, err := config.ParseAddress(c.Advertise)
	if err != nil {
		return err
	}

	conf := builder.NewDefaultBuilderConfig()
	conf.OutputDir = c.OutputDir
	conf.ListenAddr = listen
	conf.AdvertiseAddr = advertise
	conf.Variant = variant
	conf.Validators = c.Validators
	conf.Logger = logger

	if c.Seed != "" {
		seed, err := parseSeed(c.Seed)
		if err != nil {
			return err
		}
		conf.Seed = &seed
	}

	if err := builder.NewBuilder(conf).Build(); err != nil {
		return err
	}

	logger.Info("Success: all configuration files generated successfully")

	return nil
}

func parseSeed(s string) (keys.Seed, error) {
	seed, err := keys.ParseSeed(s)
	if err != nil {
		return keys.Seed{}, common.NewGenesisErr(common.Encoding, "--seed", err)
	}
	return seed, nil
}
