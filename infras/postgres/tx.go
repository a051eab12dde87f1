package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	serializationFailureCode = "40001"
	serializableTxMaxRetry   = 3
)

// WithTx runs fn inside a transaction on the write connection, committing on
// nil error and rolling back otherwise.
func (conn *Connection) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return conn.withTx(ctx, nil, fn)
}

// WithSerializableTx runs fn at the SERIALIZABLE isolation level. Postgres
// aborts one of two transactions whose reads and writes conflict, so the
// block is retried a small number of times on serialization failure before
// the error is surfaced.
func (conn *Connection) WithSerializableTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error

	for attempt := 0; attempt < serializableTxMaxRetry; attempt++ {
		err = conn.withTx(ctx, opts, fn)
		if err == nil || !isSerializationFailure(err) {
			return err
		}

		log.Warn().
			Int("attempt", attempt+1).
			Msg("serialization failure, retrying transaction")
	}

	return err
}

func (conn *Connection) withTx(ctx context.Context, opts *sql.TxOptions, fn func(tx *sqlx.Tx) error) error {
	tx, err := conn.Write.BeginTxx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == serializationFailureCode
	}

	return false
}
