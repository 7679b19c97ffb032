package app

import (
	"errors"
	"fmt"
	"time"

	"rizoma/internal/keys"
	"rizoma/internal/record"
)

var (
	ErrMissingSignature       = errors.New("missing required signature")
	ErrInsufficientFunds      = errors.New("insufficient funds for rent")
	ErrAccountInUse           = errors.New("account already in use")
	ErrAccountDidNotSerialize = errors.New("account did not serialize")
	ErrAccountNotFound        = errors.New("account not found")
	ErrAccountNotOwned        = errors.New("account owned by a different program")
)

// Account is one ledger entry: a wallet owned by the system program or a
// record owned by the record program.
type Account struct {
	Address   keys.PublicKey
	Owner     keys.PublicKey
	Lamports  uint64
	Data      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount allocates Address funded by Payer.
type NewAccount struct {
	Address   keys.PublicKey
	Payer     keys.PublicKey
	Owner     keys.PublicKey
	Lamports  uint64
	Data      []byte
	CreatedAt time.Time
}

type Record struct {
	Address   keys.PublicKey `json:"address"`
	Owner     keys.PublicKey `json:"owner"`
	Text      string         `json:"text"`
	Lamports  uint64         `json:"lamports"`
	Data      []byte         `json:"data"`
	CreatedAt time.Time      `json:"created_at"`
}

func RecordFromAccount(acc Account) (Record, error) {
	if acc.Owner != record.ProgramKey {
		return Record{}, fmt.Errorf("%w: %s is owned by %s", ErrAccountNotOwned, acc.Address, acc.Owner)
	}
	r, err := record.Decode(acc.Data)
	if err != nil {
		return Record{}, fmt.Errorf("decode %s: %w", acc.Address, err)
	}
	return Record{
		Address:   acc.Address,
		Owner:     r.Owner,
		Text:      r.Text,
		Lamports:  acc.Lamports,
		Data:      acc.Data,
		CreatedAt: acc.CreatedAt,
	}, nil
}
