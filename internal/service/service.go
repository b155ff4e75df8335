// Package service implements the application operations on top of the
// repositories and the pure derivation packages (ledger, report). Mutations
// are synchronous and atomic: batch transforms run inside one DB transaction,
// single-entity writes are single statements.
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a referenced entity does not exist. Handlers
// map it to 404; journal edits deliberately do NOT return it (a nonexistent
// transaction id is a no-op there).
var ErrNotFound = errors.New("not found")

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode with stub repositories).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}
