package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"rizoma/internal/keys"

	"github.com/spf13/cobra"
)

// KeygenOptions holds flags for the keygen command.
type KeygenOptions struct {
	*RootOptions
	Outfile string
	Force   bool
}

// NewKeygenCommand creates the keygen command.
func NewKeygenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &KeygenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a payer keypair",
		Long: `Generate a new ed25519 keypair and write it as a JSON array of 64 bytes.

Example:
  rizoma keygen --outfile ~/.config/rizoma/id.json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeygen(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Outfile, "outfile", "o", "", "keypair file (defaults to --keypair)")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "overwrite an existing keypair file")

	return cmd
}

func runKeygen(cmd *cobra.Command, opts *KeygenOptions) error {
	path := opts.Outfile
	if path == "" {
		path = opts.Keypair
	}

	if !opts.Force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, pass --force to overwrite", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	kp, err := keys.Generate()
	if err != nil {
		return err
	}
	if err := kp.Save(path); err != nil {
		return err
	}

	return newOutput(cmd, opts.RootOptions).Print(
		map[string]string{"address": kp.Public.String(), "keypair": path},
		fmt.Sprintf("Wrote new keypair to %s", path),
		fmt.Sprintf("pubkey: %s", kp.Public),
	)
}
