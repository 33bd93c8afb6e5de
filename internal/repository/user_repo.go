package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"todoapi/internal/models"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

// Ensure implementation of the Users interface at compile time.
var _ Users = (*UserSQLite)(nil)

const (
	insertUserSQL           = `INSERT INTO users (id, username, name, password_hash) VALUES (?, ?, ?, ?)`
	selectUserByUsernameSQL = `SELECT id, username, name, password_hash FROM users WHERE username = ?`
)

// Create inserts a new user and returns its store-assigned id. The UNIQUE
// constraint on username decides concurrent signups for the same name; the
// loser surfaces as a plain wrapped error.
func (r *UserSQLite) Create(ctx context.Context, username, name, passwordHash string) (string, error) {
	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, insertUserSQL, id, username, name, passwordHash); err != nil {
		return "", fmt.Errorf("insert user %q: %w", username, err)
	}
	return id, nil
}

// GetByUsername fetches a user by username. Returns ErrNotFound if absent.
func (r *UserSQLite) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username).
		Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}
