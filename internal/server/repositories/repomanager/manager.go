// Package repomanager hands out repositories bound to a database handle or
// an open transaction, and applies schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/jabbaspizza/accounts/internal/dbx"
	"github.com/jabbaspizza/accounts/internal/server/repositories/accounts"
)

type RepositoryManager interface {
	Accounts(db dbx.DBTX) accounts.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
