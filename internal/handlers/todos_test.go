package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"todoapi/internal/models"
	"todoapi/internal/service"
)

// authedRequest performs a request with a token the mock auth accepts.
func authedRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("token", "valid-token")
	r.ServeHTTP(w, req)
	return w
}

func newTodoRouter(todos *mockTodos) (*gin.Engine, *mockAuth) {
	auth := &mockAuth{parseID: "owner-1"}
	s := &service.Service{Authorization: auth, Todos: todos}
	return newTestRouter(s), auth
}

func TestCreateTodo(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		createErr error
		wantCode  int
		wantMsg   string
		wantCalls int
	}{
		{
			name:      "success",
			body:      `{"title":"buy milk"}`,
			wantCode:  http.StatusCreated,
			wantMsg:   "todo created",
			wantCalls: 1,
		},
		{
			name:      "whitespace title",
			body:      `{"title":"   "}`,
			createErr: service.ErrTitleRequired,
			wantCode:  http.StatusBadRequest,
			wantMsg:   "Title is required",
			wantCalls: 1,
		},
		{
			name:      "malformed body",
			body:      `{"title":`,
			wantCode:  http.StatusBadRequest,
			wantMsg:   "Title is required",
			wantCalls: 0,
		},
		{
			name:      "store failure",
			body:      `{"title":"buy milk"}`,
			createErr: errors.New("disk on fire"),
			wantCode:  http.StatusInternalServerError,
			wantMsg:   "Internal server error",
			wantCalls: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			todos := &mockTodos{createErr: tc.createErr}
			r, _ := newTodoRouter(todos)

			w := authedRequest(r, http.MethodPost, "/todo", tc.body)
			if w.Code != tc.wantCode {
				t.Fatalf("status=%d, want %d; body=%s", w.Code, tc.wantCode, w.Body.String())
			}

			var m map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &m)
			if m["message"] != tc.wantMsg {
				t.Fatalf("message: got %v, want %q", m["message"], tc.wantMsg)
			}
			if todos.createCalls != tc.wantCalls {
				t.Fatalf("create calls: got %d, want %d", todos.createCalls, tc.wantCalls)
			}
			if tc.wantCalls > 0 && todos.lastUserID != "owner-1" {
				t.Fatalf("owner id: got %q, want %q", todos.lastUserID, "owner-1")
			}
		})
	}
}

func TestListTodos_ReturnsRawArray(t *testing.T) {
	todos := &mockTodos{listResp: []models.Todo{
		{ID: "t1", Title: "first", Done: false, UserID: "owner-1"},
		{ID: "t2", Title: "second", Done: true, UserID: "owner-1"},
	}}
	r, _ := newTodoRouter(todos)

	w := authedRequest(r, http.MethodGet, "/todos", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	var out []models.Todo
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("expected a raw array, got %s: %v", w.Body.String(), err)
	}
	if len(out) != 2 || out[0].ID != "t1" || out[1].ID != "t2" {
		t.Fatalf("unexpected list: %+v", out)
	}
	if todos.lastUserID != "owner-1" {
		t.Fatalf("list scoped to %q, want owner-1", todos.lastUserID)
	}
}

func TestListTodos_EmptyIsArrayNotNull(t *testing.T) {
	todos := &mockTodos{listResp: []models.Todo{}}
	r, _ := newTodoRouter(todos)

	w := authedRequest(r, http.MethodGet, "/todos", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if got := w.Body.String(); got != "[]" {
		t.Fatalf("expected [], got %s", got)
	}
}

func TestGetTodo(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		todos := &mockTodos{getTodo: models.Todo{ID: "t1", Title: "X", Done: false, UserID: "owner-1"}}
		r, _ := newTodoRouter(todos)

		w := authedRequest(r, http.MethodGet, "/todo/t1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}

		var out models.Todo
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if out.Title != "X" || out.Done {
			t.Fatalf("unexpected todo: %+v", out)
		}
		if todos.lastID != "t1" || todos.lastUserID != "owner-1" {
			t.Fatalf("lookup pair: (%q,%q)", todos.lastID, todos.lastUserID)
		}
	})

	t.Run("absent or not owned", func(t *testing.T) {
		todos := &mockTodos{getErr: service.ErrTodoNotFound}
		r, _ := newTodoRouter(todos)

		w := authedRequest(r, http.MethodGet, "/todo/someone-elses", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("status=%d, want 404; body=%s", w.Code, w.Body.String())
		}

		var m map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &m)
		if m["message"] != "Todo not found" {
			t.Fatalf("unexpected message: %v", m["message"])
		}
	})
}

func TestUpdateTodo_PartialFields(t *testing.T) {
	updated := models.Todo{ID: "t1", Title: "X", Done: true, UserID: "owner-1"}
	todos := &mockTodos{updateTodo: updated}
	r, _ := newTodoRouter(todos)

	w := authedRequest(r, http.MethodPut, "/todo/t1", `{"done":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	// only done was supplied
	if todos.lastParams.Title != nil {
		t.Fatalf("title should be absent, got %q", *todos.lastParams.Title)
	}
	if todos.lastParams.Done == nil || !*todos.lastParams.Done {
		t.Fatal("done=true should be passed through")
	}

	var m struct {
		Message string      `json:"message"`
		Todo    models.Todo `json:"todo"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.Message != "todo updated successfully" || m.Todo != updated {
		t.Fatalf("unexpected response: %+v", m)
	}
}

func TestUpdateTodo_NotFound(t *testing.T) {
	todos := &mockTodos{updateErr: service.ErrTodoNotFound}
	r, _ := newTodoRouter(todos)

	w := authedRequest(r, http.MethodPut, "/todo/nope", `{"title":"Y"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404; body=%s", w.Code, w.Body.String())
	}
}

func TestDeleteTodo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		todos := &mockTodos{}
		r, _ := newTodoRouter(todos)

		w := authedRequest(r, http.MethodDelete, "/todo/t1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}

		var m map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &m)
		if m["message"] != "todo deleted successfully" {
			t.Fatalf("unexpected message: %v", m["message"])
		}
		if todos.deleteCalls != 1 || todos.lastID != "t1" {
			t.Fatalf("delete calls=%d id=%q", todos.deleteCalls, todos.lastID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		todos := &mockTodos{deleteErr: service.ErrTodoNotFound}
		r, _ := newTodoRouter(todos)

		w := authedRequest(r, http.MethodDelete, "/todo/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("status=%d, want 404; body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("store failure", func(t *testing.T) {
		todos := &mockTodos{deleteErr: errors.New("db down")}
		r, _ := newTodoRouter(todos)

		w := authedRequest(r, http.MethodDelete, "/todo/t1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status=%d, want 500; body=%s", w.Code, w.Body.String())
		}

		var m map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &m)
		if m["message"] != "Internal server error" {
			t.Fatalf("unexpected message: %v", m["message"])
		}
	})
}
