package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rizoma/cmd/back/internal/app"
	"rizoma/internal/keys"
	"rizoma/internal/record"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Queries stick to syntax shared by postgres and sqlite: numbered
// placeholders in order of first use and ON CONFLICT upserts.

type Repository struct {
	db  *sql.DB
	now func() time.Time
}

func NewRepository(rawDB *sql.DB) *Repository {
	return &Repository{db: rawDB, now: func() time.Time { return time.Now().UTC() }}
}

// Open connects to the ledger database. sqlite is limited to one connection
// so that in-memory databases are shared and writers never see SQLITE_BUSY.
func Open(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == "sqlite3" {
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite pragma: %w", err)
		}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return db, nil
}

// CreateAccount moves acc.Lamports from the payer into a new account in one
// transaction. The payer must be a system-owned wallet holding enough lamports
// and the address must be unused.
func (d Repository) CreateAccount(ctx context.Context, acc app.NewAccount) (app.Account, error) {
	if acc.Lamports > maxLamports {
		return app.Account{}, fmt.Errorf("%w: %d lamports", app.ErrInsufficientFunds, acc.Lamports)
	}
	data := acc.Data
	if data == nil {
		data = []byte{}
	}
	createdAt := acc.CreatedAt
	if createdAt.IsZero() {
		createdAt = d.now()
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return app.Account{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	debit := `update accounts
	set lamports = lamports - $1, updated_at = $2
	where address = $3 and owner = $4 and lamports >= $1`
	res, err := tx.ExecContext(ctx, debit, int64(acc.Lamports), createdAt, acc.Payer, record.SystemProgramKey)
	if err != nil {
		return app.Account{}, fmt.Errorf("debit payer %s: %w", acc.Payer, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return app.Account{}, fmt.Errorf("debit payer %s: %w", acc.Payer, err)
	} else if n == 0 {
		return app.Account{}, fmt.Errorf("%w: payer %s needs %d lamports", app.ErrInsufficientFunds, acc.Payer, acc.Lamports)
	}

	insert := `insert into accounts (address, owner, lamports, data, created_at, updated_at)
	values ($1, $2, $3, $4, $5, $5)
	on conflict (address) do nothing`
	res, err = tx.ExecContext(ctx, insert, acc.Address, acc.Owner, int64(acc.Lamports), data, createdAt)
	if err != nil {
		return app.Account{}, fmt.Errorf("allocate %s: %w", acc.Address, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return app.Account{}, fmt.Errorf("allocate %s: %w", acc.Address, err)
	} else if n == 0 {
		return app.Account{}, fmt.Errorf("%w: %s", app.ErrAccountInUse, acc.Address)
	}

	if err := tx.Commit(); err != nil {
		return app.Account{}, fmt.Errorf("commit: %w", err)
	}

	return app.Account{
		Address:   acc.Address,
		Owner:     acc.Owner,
		Lamports:  acc.Lamports,
		Data:      data,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}, nil
}

const selectAccount = `select address, owner, lamports, data, created_at, updated_at from accounts where address = $1`

func (d Repository) GetAccount(ctx context.Context, address keys.PublicKey) (app.Account, error) {
	acc, err := scanAccount(d.db.QueryRowContext(ctx, selectAccount, address))
	if errors.Is(err, sql.ErrNoRows) {
		return app.Account{}, fmt.Errorf("%w: %s", app.ErrAccountNotFound, address)
	}
	return acc, err
}

func scanAccount(row *sql.Row) (app.Account, error) {
	var acc app.Account
	var lamports int64
	err := row.Scan(&acc.Address, &acc.Owner, &lamports, &acc.Data, &acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		return app.Account{}, err
	}
	acc.Lamports = uint64(lamports)
	return acc, nil
}

// Credit adds lamports to a system-owned wallet, creating it when absent.
func (d Repository) Credit(ctx context.Context, address keys.PublicKey, lamports uint64) (app.Account, error) {
	if lamports > maxLamports {
		return app.Account{}, fmt.Errorf("credit %d lamports: amount out of range", lamports)
	}
	now := d.now()

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return app.Account{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	upsert := `insert into accounts (address, owner, lamports, data, created_at, updated_at)
	values ($1, $2, $3, $4, $5, $5)
	on conflict (address) do update
	set lamports = accounts.lamports + excluded.lamports, updated_at = excluded.updated_at
	where accounts.owner = $2`
	res, err := tx.ExecContext(ctx, upsert, address, record.SystemProgramKey, int64(lamports), []byte{}, now)
	if err != nil {
		return app.Account{}, fmt.Errorf("credit %s: %w", address, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return app.Account{}, fmt.Errorf("credit %s: %w", address, err)
	} else if n == 0 {
		return app.Account{}, fmt.Errorf("credit %s: %w", address, app.ErrAccountNotOwned)
	}

	acc, err := scanAccount(tx.QueryRowContext(ctx, selectAccount, address))
	if err != nil {
		return app.Account{}, fmt.Errorf("credit %s: %w", address, err)
	}
	if err := tx.Commit(); err != nil {
		return app.Account{}, fmt.Errorf("commit: %w", err)
	}
	return acc, nil
}

const maxLamports = uint64(1<<63 - 1)
