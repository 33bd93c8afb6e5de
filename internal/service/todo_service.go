package service

import (
	"context"
	"errors"
	"strings"

	"todoapi/internal/models"
	"todoapi/internal/repository"
)

// Domain errors for todo flows.
var (
	ErrTitleRequired = errors.New("title is required")
	ErrTodoNotFound  = errors.New("todo not found")
)

// TodoService applies owner scoping on top of the todo store.
type TodoService struct {
	todos repository.Todos
}

func NewTodoService(todos repository.Todos) *TodoService {
	return &TodoService{todos: todos}
}

// Create stores a new todo owned by userID with done=false.
// The title must be non-empty after trimming, but is stored as given.
func (s *TodoService) Create(ctx context.Context, userID, title string) (models.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return models.Todo{}, ErrTitleRequired
	}
	return s.todos.Create(ctx, models.Todo{
		Title:  title,
		Done:   false,
		UserID: userID,
	})
}

// List returns all of the user's todos in insertion order.
func (s *TodoService) List(ctx context.Context, userID string) ([]models.Todo, error) {
	return s.todos.ListByOwner(ctx, userID)
}

// Get returns the todo only if it is owned by userID; otherwise
// ErrTodoNotFound, whether the id is unknown or belongs to someone else.
func (s *TodoService) Get(ctx context.Context, userID, id string) (models.Todo, error) {
	t, err := s.todos.GetByIDAndOwner(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Todo{}, ErrTodoNotFound
		}
		return models.Todo{}, err
	}
	return *t, nil
}

// Update applies only the fields present in p to an owned todo and returns
// the updated record. A supplied title is accepted as-is, even whitespace.
func (s *TodoService) Update(ctx context.Context, userID, id string, p UpdateParams) (models.Todo, error) {
	t, err := s.Get(ctx, userID, id)
	if err != nil {
		return models.Todo{}, err
	}

	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Done != nil {
		t.Done = *p.Done
	}

	if err := s.todos.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// deleted between the ownership check and the write
			return models.Todo{}, ErrTodoNotFound
		}
		return models.Todo{}, err
	}
	return t, nil
}

// Delete permanently removes an owned todo.
func (s *TodoService) Delete(ctx context.Context, userID, id string) error {
	err := s.todos.Delete(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTodoNotFound
	}
	return err
}
