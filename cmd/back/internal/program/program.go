package program

import (
	"context"
	"fmt"
	"time"

	"rizoma/cmd/back/internal/app"
	"rizoma/internal/keys"
	"rizoma/internal/record"
)

type Ledger interface {
	CreateAccount(ctx context.Context, acc app.NewAccount) (app.Account, error)
}

// Processor executes the store_message instruction against the ledger.
type Processor struct {
	ledger Ledger
	rent   record.Rent
	now    func() time.Time
}

func NewProcessor(ledger Ledger, rent record.Rent) *Processor {
	return &Processor{
		ledger: ledger,
		rent:   rent,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

type StoreMessage struct {
	// Signer has already proven its signature; it pays for the allocation.
	Signer keys.PublicKey
	// Record is the fresh account that will hold the message.
	Record keys.PublicKey
	// RecordSigner is the key that co-signed as the record account. It must
	// equal Record: nobody allocates an address they do not hold.
	RecordSigner keys.PublicKey
	Text         string
}

// RecordLamports is what every store call moves from the signer into the record.
func (p *Processor) RecordLamports() uint64 {
	return p.rent.MinimumBalance(record.Space)
}

// StoreMessage writes the signer and text into a newly allocated record.
// Nothing is debited or written unless every step succeeds.
func (p *Processor) StoreMessage(ctx context.Context, in StoreMessage) (app.Record, error) {
	if in.Signer.IsZero() {
		return app.Record{}, app.ErrMissingSignature
	}
	if in.RecordSigner.IsZero() || in.RecordSigner != in.Record {
		return app.Record{}, fmt.Errorf("record %s: %w", in.Record, app.ErrMissingSignature)
	}

	data, err := record.Encode(record.Record{Owner: in.Signer, Text: in.Text})
	if err != nil {
		return app.Record{}, fmt.Errorf("%w: %w", app.ErrAccountDidNotSerialize, err)
	}

	acc, err := p.ledger.CreateAccount(ctx, app.NewAccount{
		Address:   in.Record,
		Payer:     in.Signer,
		Owner:     record.ProgramKey,
		Lamports:  p.RecordLamports(),
		Data:      data,
		CreatedAt: p.now(),
	})
	if err != nil {
		return app.Record{}, fmt.Errorf("store message into %s: %w", in.Record, err)
	}

	return app.Record{
		Address:   acc.Address,
		Owner:     in.Signer,
		Text:      in.Text,
		Lamports:  acc.Lamports,
		Data:      acc.Data,
		CreatedAt: acc.CreatedAt,
	}, nil
}
