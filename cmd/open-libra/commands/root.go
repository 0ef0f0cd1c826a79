package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd returns the open-libra command with all its subcommands.
func NewRootCmd() *cobra.Command {
	return newRootCmd(NewDefaultCLIConfig())
}

func newRootCmd(c *CLIConfig) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:              "open-libra",
		Short:            "open-libra validator and genesis configuration",
		TraverseChildren: true,
	}

	rootCmd.PersistentFlags().String("log", c.OpenLibra.LogLevel, "Log level (debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().String("audit-log", c.OpenLibra.AuditLog, "Append Info and above log entries to this file, as JSON")
	rootCmd.PersistentFlags().String("config-dir", c.OpenLibra.ConfigDir, "Directory of an optional open-libra.toml")

	rootCmd.AddCommand(
		NewConfigCmd(c),
		NewGenesisCmd(c),
		NewVerifyCmd(c),
		NewVersionCmd(),
	)

	return rootCmd
}

// Bind all flags and read the config into a fresh viper instance
func bindFlagsLoadViper(cmd *cobra.Command, c *CLIConfig) error {
	v := viper.New()

	// Register flags with viper. Include flags from this command and all other
	// persistent flags from the parent
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// first unmarshal to read from CLI flags
	if err := v.Unmarshal(c); err != nil {
		return err
	}

	// look for config file in [config-dir]/open-libra.toml (.json, .yaml also work)
	v.SetConfigName("open-libra")
	v.AddConfigPath(c.OpenLibra.ConfigDir)

	found := true
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		found = false
	}

	// second unmarshal to read from config file
	if err := v.Unmarshal(c); err != nil {
		return err
	}

	if found {
		c.Logger().Debugf("Using config file: %s", v.ConfigFileUsed())
	} else {
		c.Logger().Debugf("No config file found in: %s", c.OpenLibra.ConfigDir)
	}

	return nil
}
