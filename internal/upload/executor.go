// Package upload executes generated SQL statements against a MariaDB/MySQL
// connection, one transaction per statement, and keeps the executed and
// failed statement lists for reporting.
package upload

import (
	"context"
	"database/sql"
	"fmt"
)

// FailedStatement pairs a statement with the error text its execution
// produced.
type FailedStatement struct {
	Statement string
	Err       string
}

// Executor runs statements strictly sequentially. A failing statement is
// rolled back and recorded; it never aborts the batch.
type Executor struct {
	db       *sql.DB
	executed []string
	failed   []FailedStatement
}

// NewExecutor wraps an open database handle.
func NewExecutor(db *sql.DB) *Executor {
	return &Executor{db: db}
}

// Execute runs one statement inside its own transaction: commit on success,
// rollback on failure. The statement lands on the executed or failed list
// either way.
func (e *Executor) Execute(ctx context.Context, statement string) error {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		e.failed = append(e.failed, FailedStatement{Statement: statement, Err: err.Error()})
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, statement); err != nil {
		_ = tx.Rollback()
		e.failed = append(e.failed, FailedStatement{Statement: statement, Err: err.Error()})
		return fmt.Errorf("statement failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		e.failed = append(e.failed, FailedStatement{Statement: statement, Err: err.Error()})
		return fmt.Errorf("failed to commit: %w", err)
	}

	e.executed = append(e.executed, statement)
	return nil
}

// Executed returns the statements that committed, in execution order.
func (e *Executor) Executed() []string {
	return e.executed
}

// Failed returns the statements that were rolled back, with their errors.
func (e *Executor) Failed() []FailedStatement {
	return e.failed
}
