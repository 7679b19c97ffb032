package cli

import (
	"fmt"
	"time"

	pb "rizoma/api/proto/v1"
	"rizoma/internal/auth"
	"rizoma/internal/keys"
	"rizoma/internal/record"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/metadata"
)

// NewStoreCommand creates the store command.
func NewStoreCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "store <text>",
		Short: "Store a text as a new record",
		Long: `Store a text as a new record paid for by the payer keypair.

A fresh record address is generated for every call. The payer signs a
token binding that address and the text, and the record locks the
rent-exempt minimum from the payer balance.

Example:
  rizoma store "hello world"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]

			payer, err := keys.Load(opts.Keypair)
			if err != nil {
				return err
			}
			slot, err := keys.Generate()
			if err != nil {
				return err
			}
			payerToken, recordToken, err := auth.SignStore(payer, slot, record.ProgramID, text, time.Now(), auth.DefaultTTL)
			if err != nil {
				return err
			}

			client, ctx, done, err := opts.client(cmd)
			if err != nil {
				return err
			}
			defer done()

			ctx = metadata.AppendToOutgoingContext(ctx,
				auth.Header, auth.Scheme+payerToken,
				auth.RecordHeader, auth.Scheme+recordToken,
			)
			if _, err := client.StoreMessage(ctx, &pb.StoreMessageRequest{Record: slot.Public.String(), Text: text}); err != nil {
				return err
			}

			return newOutput(cmd, opts).Print(
				map[string]string{"record": slot.Public.String(), "owner": payer.Public.String()},
				fmt.Sprintf("record: %s", slot.Public),
			)
		},
	}
}

// NewGetCommand creates the get command.
func NewGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "get <address>",
		Short:         "Print a stored record",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := keys.ParsePublicKey(args[0]); err != nil {
				return err
			}

			client, ctx, done, err := opts.client(cmd)
			if err != nil {
				return err
			}
			defer done()

			resp, err := client.GetRecord(ctx, &pb.GetRecordRequest{Address: args[0]})
			if err != nil {
				return err
			}
			rec := resp.Record
			if rec == nil {
				return fmt.Errorf("record %s: empty response", args[0])
			}

			var created string
			if rec.CreatedAt != nil {
				created = rec.CreatedAt.AsTime().UTC().Format(time.RFC3339)
			}
			return newOutput(cmd, opts).Print(
				map[string]any{
					"address":    rec.Address,
					"owner":      rec.Owner,
					"text":       rec.Text,
					"lamports":   rec.Lamports,
					"created_at": created,
				},
				fmt.Sprintf("address:  %s", rec.Address),
				fmt.Sprintf("owner:    %s", rec.Owner),
				fmt.Sprintf("lamports: %d", rec.Lamports),
				fmt.Sprintf("created:  %s", created),
				fmt.Sprintf("text:     %s", rec.Text),
			)
		},
	}
}
