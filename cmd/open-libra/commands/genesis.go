package commands

import (
	"github.com/open-libra/open-libra/src/genesis"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewGenesisCmd produces a GenesisCmd which merges peer_info.toml files into
// the genesis transaction and peer registries
func NewGenesisCmd(c *CLIConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis [peer_info.toml ...]",
		Short: "Generate genesis.blob and peer registries from peer_info.toml files",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlagsLoadViper(cmd, c)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenesis(c, args)
		},
	}

	AddGenesisFlags(cmd, c)

	return cmd
}

//AddGenesisFlags adds flags to the genesis command
func AddGenesisFlags(cmd *cobra.Command, c *CLIConfig) {
	cmd.Flags().StringP("output", "o", c.OutputDir, "Directory where the genesis files will be written")
	cmd.Flags().String("seed", c.Seed, "Hex encoded 32 byte seed for a deterministic faucet key")
	cmd.Flags().String("mint-key", c.MintKey, "Existing mint.key to use as the faucet key")
}

func runGenesis(c *CLIConfig, args []string) error {
	logger := c.Logger().WithField("prefix", "genesis")

	logger.WithFields(logrus.Fields{
		"output":   c.OutputDir,
		"mint-key": c.MintKey,
		"peers":    args,
	}).Debug("GENESIS")

	conf := genesis.NewDefaultGeneratorConfig()
	conf.OutputDir = c.OutputDir
	conf.MintKeyFile = c.MintKey
	conf.Logger = logger

	if c.Seed != "" && c.MintKey == "" {
		seed, err := parseSeed(c.Seed)
		if err != nil {
			return err
		}
		conf.Seed = &seed
	}

	return genesis.NewGenerator(conf).Generate(args)
}
