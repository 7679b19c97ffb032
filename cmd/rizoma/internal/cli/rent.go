package cli

import (
	"fmt"

	"rizoma/internal/record"

	"github.com/spf13/cobra"
)

// RentOptions holds flags for the rent command.
type RentOptions struct {
	*RootOptions
	DataLen int
}

// NewRentCommand creates the rent command.
func NewRentCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RentOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "rent",
		Short: "Print the rent-exempt minimum for an account",
		Long: `Print the rent-exempt minimum balance under the default rent schedule.
Without --data-len it reports the cost of one record.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.DataLen < 0 {
				return fmt.Errorf("invalid --data-len %d", opts.DataLen)
			}
			lamports := record.DefaultRent.MinimumBalance(opts.DataLen)
			return newOutput(cmd, opts.RootOptions).Print(
				map[string]any{"data_len": opts.DataLen, "lamports": lamports},
				fmt.Sprintf("%d bytes: %d lamports", opts.DataLen, lamports),
			)
		},
	}

	cmd.Flags().IntVar(&opts.DataLen, "data-len", record.Space, "account data length in bytes")

	return cmd
}
