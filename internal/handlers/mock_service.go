package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"todoapi/internal/models"
	"todoapi/internal/service"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID  string
	signUpErr error
	loginTok  string
	loginErr  error
	parseID   string
	parseErr  error

	lastSignUpUsername string
	lastSignUpPassword string
	lastSignUpName     string
	lastLoginUsername  string
	lastLoginPassword  string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password, name string) (string, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	m.lastSignUpName = name
	return m.signUpID, m.signUpErr
}

func (m *mockAuth) Login(ctx context.Context, username, password string) (string, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginTok, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockTodos struct {
	createTodo models.Todo
	createErr  error
	listResp   []models.Todo
	listErr    error
	getTodo    models.Todo
	getErr     error
	updateTodo models.Todo
	updateErr  error
	deleteErr  error

	createCalls int
	listCalls   int
	getCalls    int
	updateCalls int
	deleteCalls int

	lastUserID string
	lastID     string
	lastTitle  string
	lastParams service.UpdateParams
}

func (m *mockTodos) Create(ctx context.Context, userID, title string) (models.Todo, error) {
	m.createCalls++
	m.lastUserID = userID
	m.lastTitle = title
	return m.createTodo, m.createErr
}

func (m *mockTodos) List(ctx context.Context, userID string) ([]models.Todo, error) {
	m.listCalls++
	m.lastUserID = userID
	return m.listResp, m.listErr
}

func (m *mockTodos) Get(ctx context.Context, userID, id string) (models.Todo, error) {
	m.getCalls++
	m.lastUserID = userID
	m.lastID = id
	return m.getTodo, m.getErr
}

func (m *mockTodos) Update(ctx context.Context, userID, id string, p service.UpdateParams) (models.Todo, error) {
	m.updateCalls++
	m.lastUserID = userID
	m.lastID = id
	m.lastParams = p
	return m.updateTodo, m.updateErr
}

func (m *mockTodos) Delete(ctx context.Context, userID, id string) error {
	m.deleteCalls++
	m.lastUserID = userID
	m.lastID = id
	return m.deleteErr
}

// ---- Shared Test Helpers ----

// newTestRouter builds the full route table around mocked services.
func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}
