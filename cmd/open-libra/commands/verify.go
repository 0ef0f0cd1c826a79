package commands

import (
	"fmt"

	"github.com/open-libra/open-libra/src/common"
	"github.com/open-libra/open-libra/src/genesis"
	"github.com/spf13/cobra"
)

// NewVerifyCmd produces a VerifyCmd which checks a genesis.blob and lists its
// validators
func NewVerifyCmd(c *CLIConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [genesis.blob]",
		Short: "Verify the signature of a genesis.blob and list its validators",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlagsLoadViper(cmd, c)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := common.ReadFile(args[0])
			if err != nil {
				return err
			}

			tx, err := genesis.Verify(blob)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "faucet: %s\n", common.EncodeToString(tx.Payload.FaucetPublicKey))
			fmt.Fprintf(out, "validator set: %s\n", tx.Payload.ValidatorSet.Hex())
			for _, id := range tx.Payload.ValidatorSet.IDs() {
				fmt.Fprintln(out, id)
			}

			return nil
		},
	}
}
