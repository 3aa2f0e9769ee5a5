// Package services implements the account lifecycle on top of the
// repositories. Each operation runs as a single transaction; domain errors
// come back as common sentinels, storage failures roll the transaction back.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jabbaspizza/accounts/internal/common"
	"github.com/jabbaspizza/accounts/internal/dbx"
	"github.com/jabbaspizza/accounts/internal/logging"
	"github.com/jabbaspizza/accounts/internal/server/models"
	"github.com/jabbaspizza/accounts/internal/server/repositories/repomanager"
)

type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *AccountService {
	return &AccountService{
		db:          db,
		repomanager: m,
		logger:      l.With("module", "account_service"),
	}
}

// Create inserts a new account. The duplicate check and the insert run in
// the same transaction; the unique index on email backstops the race two
// concurrent creates can still lose, and its violation surfaces as the same
// ErrorDuplicateEmail.
func (s *AccountService) Create(ctx context.Context, email, firstName, lastName, hashedPassword string) (*models.Account, error) {

	var created *models.Account

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		_, err := repo.GetByEmail(ctx, email)
		if err == nil {
			return common.ErrorDuplicateEmail
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error checking for existing account: %w", err)
		}

		created, err = repo.Create(ctx, &models.Account{
			Email:          email,
			FirstName:      firstName,
			LastName:       lastName,
			HashedPassword: hashedPassword,
		})
		if err != nil {
			if errors.Is(err, common.ErrorDuplicateEmail) {
				return err
			}
			return fmt.Errorf("error creating account: %w", err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, common.ErrorDuplicateEmail) {
			s.logger.Warn(ctx, "Account already exists", "email", email)
			return nil, err
		}
		s.logger.Error(ctx, "Failed to create account", "email", email, "error", err.Error())
		return nil, err
	}

	return created, nil
}

// GetByEmail returns the account for email, or (nil, nil) when no such
// account exists. Absence is not an error here; the transport layer decides
// what to make of it.
func (s *AccountService) GetByEmail(ctx context.Context, email string) (*models.Account, error) {

	repo := s.repomanager.Accounts(s.db)

	account, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		s.logger.Error(ctx, "Failed to fetch account", "email", email, "error", err.Error())
		return nil, err
	}

	return account, nil
}

// Update replaces all mutable fields of the account with the given id in one
// transaction and returns the updated account.
func (s *AccountService) Update(ctx context.Context, id int64, email, firstName, lastName, hashedPassword string) (*models.Account, error) {

	var updated *models.Account

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		var err error
		updated, err = repo.Update(ctx, &models.Account{
			ID:             id,
			Email:          email,
			FirstName:      firstName,
			LastName:       lastName,
			HashedPassword: hashedPassword,
		})
		return err
	})

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "Account not found", "account_id", id)
			return nil, err
		}
		if errors.Is(err, common.ErrorDuplicateEmail) {
			s.logger.Warn(ctx, "Account already exists", "email", email)
			return nil, err
		}
		s.logger.Error(ctx, "Failed to update account", "account_id", id, "error", err.Error())
		return nil, err
	}

	return updated, nil
}

// Delete removes the account with the given id. Hard delete; the id is
// never reused because it comes from an identity column.
func (s *AccountService) Delete(ctx context.Context, id int64) error {

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)
		return repo.Delete(ctx, id)
	})

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "Account not found", "account_id", id)
			return err
		}
		s.logger.Error(ctx, "Failed to delete account", "account_id", id, "error", err.Error())
		return err
	}

	return nil
}
