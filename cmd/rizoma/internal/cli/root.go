package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	pb "rizoma/api/proto/v1"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Dialer opens a RecordStore client for target. The returned func closes it.
type Dialer func(ctx context.Context, target string) (pb.RecordStoreClient, func() error, error)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Server  string
	Keypair string
	Format  string // "json" | "text"
	Timeout time.Duration

	dial Dialer
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the rizoma CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(dialGRPC)
}

func newRootCommand(dial Dialer) *cobra.Command {
	opts := &RootOptions{dial: dial}

	cmd := &cobra.Command{
		Use:           "rizoma",
		Short:         "rizoma - permanent text records",
		Long:          "Store short texts as rent-exempt records and read them back.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.Server, "server", "s", "localhost:50051", "RecordStore gRPC address")
	cmd.PersistentFlags().StringVarP(&opts.Keypair, "keypair", "k", defaultKeypairPath(), "payer keypair file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 10*time.Second, "per-request timeout")

	cmd.AddCommand(NewKeygenCommand(opts))
	cmd.AddCommand(NewAddressCommand(opts))
	cmd.AddCommand(NewAirdropCommand(opts))
	cmd.AddCommand(NewBalanceCommand(opts))
	cmd.AddCommand(NewStoreCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewRentCommand(opts))

	return cmd
}

// client dials the server and bounds the call with --timeout.
func (o *RootOptions) client(cmd *cobra.Command) (pb.RecordStoreClient, context.Context, func(), error) {
	ctx, cancel := context.WithTimeout(cmd.Context(), o.Timeout)
	c, closeConn, err := o.dial(ctx, o.Server)
	if err != nil {
		cancel()
		return nil, nil, nil, fmt.Errorf("dial %s: %w", o.Server, err)
	}
	return c, ctx, func() {
		cancel()
		_ = closeConn()
	}, nil
}

func dialGRPC(_ context.Context, target string) (pb.RecordStoreClient, func() error, error) {
	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, err
	}
	return pb.NewRecordStoreClient(conn), conn.Close, nil
}

func defaultKeypairPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "id.json"
	}
	return filepath.Join(home, ".config", "rizoma", "id.json")
}
