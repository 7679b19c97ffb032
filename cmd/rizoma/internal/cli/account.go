package cli

import (
	"fmt"
	"strconv"

	pb "rizoma/api/proto/v1"
	"rizoma/internal/keys"

	"github.com/spf13/cobra"
)

// NewAddressCommand creates the address command.
func NewAddressCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "address",
		Short:         "Print the payer address",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := keys.Load(opts.Keypair)
			if err != nil {
				return err
			}
			return newOutput(cmd, opts).Print(map[string]string{"address": kp.Public.String()}, kp.Public.String())
		},
	}
}

// NewAirdropCommand creates the airdrop command.
func NewAirdropCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "airdrop <lamports> [address]",
		Short: "Request lamports from the faucet",
		Long: `Request lamports from the server faucet. The address defaults to the payer.

Example:
  rizoma airdrop 1000000000`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lamports, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid lamports %q: %w", args[0], err)
			}
			address, err := targetAddress(opts, args[1:])
			if err != nil {
				return err
			}

			client, ctx, done, err := opts.client(cmd)
			if err != nil {
				return err
			}
			defer done()

			resp, err := client.Airdrop(ctx, &pb.AirdropRequest{Address: address.String(), Lamports: lamports})
			if err != nil {
				return err
			}
			return newOutput(cmd, opts).Print(
				map[string]any{"address": address.String(), "lamports": resp.Lamports},
				fmt.Sprintf("%s: %d lamports", address, resp.Lamports),
			)
		},
	}
}

// NewBalanceCommand creates the balance command.
func NewBalanceCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "balance [address]",
		Short:         "Print an account balance in lamports",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := targetAddress(opts, args)
			if err != nil {
				return err
			}

			client, ctx, done, err := opts.client(cmd)
			if err != nil {
				return err
			}
			defer done()

			resp, err := client.GetBalance(ctx, &pb.GetBalanceRequest{Address: address.String()})
			if err != nil {
				return err
			}
			return newOutput(cmd, opts).Print(
				map[string]any{"address": address.String(), "lamports": resp.Lamports},
				fmt.Sprintf("%d lamports", resp.Lamports),
			)
		},
	}
}

// targetAddress is the explicit argument when given, the payer otherwise.
func targetAddress(opts *RootOptions, args []string) (keys.PublicKey, error) {
	if len(args) > 0 {
		return keys.ParsePublicKey(args[0])
	}
	kp, err := keys.Load(opts.Keypair)
	if err != nil {
		return keys.PublicKey{}, err
	}
	return kp.Public, nil
}
