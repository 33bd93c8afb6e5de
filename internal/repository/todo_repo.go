package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"todoapi/internal/models"
)

type TodoSQLite struct {
	db *sql.DB
}

func NewTodoSQLite(db *sql.DB) *TodoSQLite {
	return &TodoSQLite{db: db}
}

var _ Todos = (*TodoSQLite)(nil)

const (
	insertTodoSQL = `INSERT INTO todos (id, title, done, user_id) VALUES (?, ?, ?, ?)`
	// rowid preserves insertion order
	selectTodosByOwnerSQL = `SELECT id, title, done, user_id FROM todos WHERE user_id = ? ORDER BY rowid`
	selectTodoByOwnerSQL  = `SELECT id, title, done, user_id FROM todos WHERE id = ? AND user_id = ?`
	updateTodoSQL         = `UPDATE todos SET title = ?, done = ? WHERE id = ? AND user_id = ?`
	deleteTodoSQL         = `DELETE FROM todos WHERE id = ? AND user_id = ?`
)

// Create inserts a new todo. If the ID is empty a fresh one is assigned.
// The stored record is returned.
func (r *TodoSQLite) Create(ctx context.Context, t models.Todo) (models.Todo, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if _, err := r.db.ExecContext(ctx, insertTodoSQL, t.ID, t.Title, t.Done, t.UserID); err != nil {
		return models.Todo{}, fmt.Errorf("insert todo for user %q: %w", t.UserID, err)
	}
	return t, nil
}

// ListByOwner returns the user's todos in insertion order. The slice is
// never nil so an empty result serializes as [].
func (r *TodoSQLite) ListByOwner(ctx context.Context, userID string) ([]models.Todo, error) {
	rows, err := r.db.QueryContext(ctx, selectTodosByOwnerSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select todos for user %q: %w", userID, err)
	}
	defer func() { _ = rows.Close() }()

	todos := make([]models.Todo, 0)
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Done, &t.UserID); err != nil {
			return nil, fmt.Errorf("scan todo row: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todo rows: %w", err)
	}
	return todos, nil
}

// GetByIDAndOwner fetches a todo by (id, owner). ErrNotFound covers both an
// unknown id and an id owned by someone else.
func (r *TodoSQLite) GetByIDAndOwner(ctx context.Context, id, userID string) (*models.Todo, error) {
	var t models.Todo
	err := r.db.QueryRowContext(ctx, selectTodoByOwnerSQL, id, userID).
		Scan(&t.ID, &t.Title, &t.Done, &t.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select todo %q: %w", id, err)
	}
	return &t, nil
}

// Update persists title and done for an owned todo.
func (r *TodoSQLite) Update(ctx context.Context, t models.Todo) error {
	res, err := r.db.ExecContext(ctx, updateTodoSQL, t.Title, t.Done, t.ID, t.UserID)
	if err != nil {
		return fmt.Errorf("update todo %q: %w", t.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for todo %q: %w", t.ID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an owned todo permanently.
func (r *TodoSQLite) Delete(ctx context.Context, id, userID string) error {
	res, err := r.db.ExecContext(ctx, deleteTodoSQL, id, userID)
	if err != nil {
		return fmt.Errorf("delete todo %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for todo %q: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
