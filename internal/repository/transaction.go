package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	apperrors "github.com/ege-tracker/score-api/internal/errors"
)

// transactionManager implements TransactionManager
type transactionManager struct {
	db *sql.DB
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(db *sql.DB) TransactionManager {
	return &transactionManager{db: db}
}

// WithTransaction executes fn within a database transaction. The transaction
// is rolled back on every error path, so a failed fn leaves no partial state.
func (tm *transactionManager) WithTransaction(ctx context.Context, fn func(repos *Repositories) error) error {
	tx, err := tm.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.DatabaseError("failed to begin transaction", err)
	}

	// Repositories bound to the transaction
	repos := &Repositories{
		Student: NewStudentRepository(dbExecutor(tx)),
		Score:   NewScoreRepository(dbExecutor(tx)),
		Tx:      tm,
	}

	if err := fn(repos); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return apperrors.DatabaseError("rollback failed", errors.Join(err, rollbackErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperrors.DatabaseError("failed to commit transaction", err)
	}

	return nil
}

// dbExecutor is an interface that both *sql.DB and *sql.Tx implement
type dbExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// NewRepositories creates a new repository collection
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Student: NewStudentRepository(dbExecutor(db)),
		Score:   NewScoreRepository(dbExecutor(db)),
		Tx:      NewTransactionManager(db),
	}
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
