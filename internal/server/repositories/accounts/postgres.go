package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jabbaspizza/accounts/internal/common"
	"github.com/jabbaspizza/accounts/internal/dbx"
	"github.com/jabbaspizza/accounts/internal/server/models"
)

// uniqueViolation is the Postgres error code raised when an insert hits the
// accounts_email_key constraint.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {

	query :=
		`INSERT INTO accounts (email, first_name, last_name, hashed_password)
         VALUES ($1, $2, $3, $4)
		 RETURNING id, is_active, is_verified
		 `

	err := r.db.QueryRowContext(ctx, query,
		account.Email, account.FirstName, account.LastName, account.HashedPassword).
		Scan(&account.ID, &account.IsActive, &account.IsVerified)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorDuplicateEmail
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query :=
		`SELECT id, email, first_name, last_name, hashed_password, is_active, is_verified FROM accounts
		 WHERE email = $1
		 `

	account := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&account.ID, &account.Email, &account.FirstName, &account.LastName,
		&account.HashedPassword, &account.IsActive, &account.IsVerified)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) Update(ctx context.Context, account *models.Account) (*models.Account, error) {
	query :=
		`UPDATE accounts SET email = $1, first_name = $2, last_name = $3, hashed_password = $4
		 WHERE id = $5
		 RETURNING id, email, first_name, last_name, is_active, is_verified
		 `

	updated := &models.Account{}
	err := r.db.QueryRowContext(ctx, query,
		account.Email, account.FirstName, account.LastName, account.HashedPassword, account.ID).
		Scan(&updated.ID, &updated.Email, &updated.FirstName, &updated.LastName,
			&updated.IsActive, &updated.IsVerified)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorDuplicateEmail
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM accounts
		 WHERE id = $1
		 `

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
