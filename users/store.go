// Package users encapsulates all functionality related to local user records.
// This file, `store.go`, is the persistence layer for the `users` table.
package users

import (
	"context"
	"errors"
	"fmt"

	// `pgx` specific imports for PostgreSQL interaction.
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/visiontest-go/apperror"
	"github.com/user/visiontest-go/auth"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// Store provides create-or-fetch and lookup operations on users.
// It satisfies auth.UserRepository.
type Store struct {
	// `db` is the shared pool; each call acquires a connection and releases it on return.
	db *pgxpool.Pool
}

// NewStore creates a new Store.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// GetUserByEmail returns the user with this exact email, or (nil, nil) when there is none.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	query := `SELECT id, email, full_name FROM users WHERE email = $1`

	var user auth.User
	err := s.db.QueryRow(ctx, query, email).Scan(&user.ID, &user.Email, &user.FullName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}
	return &user, nil
}

// CreateUser returns the existing user for this email, or inserts a new one.
//
// The existence check and the insert are not atomic. When a concurrent request wins the
// race, the insert hits the `users_email_key` constraint; that case is treated as
// "already exists" and the winner's row is returned.
func (s *Store) CreateUser(ctx context.Context, email, name string) (*auth.User, error) {
	existing, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	var user auth.User
	// `pgx.BeginFunc` commits when the callback returns nil and rolls back otherwise.
	err = pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx,
			`INSERT INTO users (email, full_name) VALUES ($1, $2) RETURNING id, email, full_name`,
			email, name,
		).Scan(&user.ID, &user.Email, &user.FullName)
	})
	if err != nil {
		if isUniqueViolation(err) {
			winner, getErr := s.GetUserByEmail(ctx, email)
			if getErr != nil {
				return nil, getErr
			}
			if winner != nil {
				return winner, nil
			}
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}
	return &user, nil
}

// DeleteUser removes a user. The profile row goes with it through ON DELETE CASCADE.
// It returns a NotFoundError when no user has this id.
func (s *Store) DeleteUser(ctx context.Context, id int) error {
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperror.NewNotFoundError(fmt.Sprintf("user with ID %d not found", id), nil)
		}
		return nil
	})
	if err != nil {
		if apperror.IsNotFound(err) {
			return err
		}
		return apperror.NewDatabaseError("failed to delete user", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
