package service

import (
	"context"

	"todoapi/internal/models"
	"todoapi/internal/repository"
)

// Authorization covers signup, login and stateless token parsing.
type Authorization interface {
	SignUp(ctx context.Context, username, password, name string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (string, error)
}

// Todos exposes CRUD scoped to the authenticated owner. Every operation
// takes the caller's user id; records owned by others behave as absent.
type Todos interface {
	Create(ctx context.Context, userID, title string) (models.Todo, error)
	List(ctx context.Context, userID string) ([]models.Todo, error)
	Get(ctx context.Context, userID, id string) (models.Todo, error)
	Update(ctx context.Context, userID, id string, p UpdateParams) (models.Todo, error)
	Delete(ctx context.Context, userID, id string) error
}

// UpdateParams carries the optional fields of a partial todo update.
// Nil means "leave unchanged".
type UpdateParams struct {
	Title *string
	Done  *bool
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Todos
}

// NewService wires the repository layer into concrete services.
// signingKey is the shared JWT secret from configuration.
func NewService(repos *repository.Repository, signingKey string) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, signingKey),
		Todos:         NewTodoService(repos.Todos),
	}
}
