package repository

import (
	"context"
	"database/sql"
	"errors"

	"todoapi/internal/models"
)

// ErrNotFound is returned when a record is absent or owned by another user.
// Callers cannot tell the two cases apart.
var ErrNotFound = errors.New("record not found")

type Users interface {
	Create(ctx context.Context, username, name, passwordHash string) (string, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type Todos interface {
	Create(ctx context.Context, t models.Todo) (models.Todo, error)
	ListByOwner(ctx context.Context, userID string) ([]models.Todo, error)
	GetByIDAndOwner(ctx context.Context, id, userID string) (*models.Todo, error)
	Update(ctx context.Context, t models.Todo) error
	Delete(ctx context.Context, id, userID string) error
}

type Repository struct {
	Users Users
	Todos Todos
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserSQLite(db),
		Todos: NewTodoSQLite(db),
	}
}
