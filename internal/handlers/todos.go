package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapi/internal/service"
)

const (
	msgTitleRequired = "Title is required"
	msgTodoNotFound  = "Todo not found"
	msgTodoCreated   = "todo created"
	msgTodoUpdated   = "todo updated successfully"
	msgTodoDeleted   = "todo deleted successfully"
)

type createTodoRequest struct {
	Title string `json:"title"`
}

// updateTodoRequest uses pointers so "field absent" and "field set to zero
// value" stay distinguishable for partial updates.
type updateTodoRequest struct {
	Title *string `json:"title"`
	Done  *bool   `json:"done"`
}

// @Summary      Create todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body  createTodoRequest  true  "Todo payload"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /todo [post]
// @Security     TokenAuth
func (h *Handler) createTodo(c *gin.Context) {
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// a missing or unreadable body has no usable title either
		c.JSON(http.StatusBadRequest, gin.H{"message": msgTitleRequired})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.services.Todos.Create(ctx, authedUserID(c), req.Title); err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"message": msgTitleRequired})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, "todo_create_failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msgTodoCreated})
}

// @Summary      List todos
// @Tags         todos
// @Produce      json
// @Success      200  {array}   models.Todo
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /todos [get]
// @Security     TokenAuth
func (h *Handler) listTodos(c *gin.Context) {
	ctx := c.Request.Context()
	todos, err := h.services.Todos.List(ctx, authedUserID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, "todo_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, todos)
}

// @Summary      Get todo by id
// @Tags         todos
// @Produce      json
// @Param        id   path      string  true  "Todo id"
// @Success      200  {object}  models.Todo
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /todo/{id} [get]
// @Security     TokenAuth
func (h *Handler) getTodo(c *gin.Context) {
	ctx := c.Request.Context()
	todo, err := h.services.Todos.Get(ctx, authedUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgTodoNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, "todo_get_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, todo)
}

// @Summary      Update todo
// @Description  Partial update: only supplied fields change.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "Todo id"
// @Param        body  body  updateTodoRequest  true  "Fields to change"
// @Success      200   {object}  map[string]interface{}  "message, todo"
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /todo/{id} [put]
// @Security     TokenAuth
func (h *Handler) updateTodo(c *gin.Context) {
	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgBadInput})
		return
	}

	ctx := c.Request.Context()
	todo, err := h.services.Todos.Update(ctx, authedUserID(c), c.Param("id"), service.UpdateParams{
		Title: req.Title,
		Done:  req.Done,
	})
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgTodoNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, "todo_update_failed", err, "id", c.Param("id"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msgTodoUpdated,
		"todo":    todo,
	})
}

// @Summary      Delete todo
// @Tags         todos
// @Produce      json
// @Param        id   path      string  true  "Todo id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /todo/{id} [delete]
// @Security     TokenAuth
func (h *Handler) deleteTodo(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.services.Todos.Delete(ctx, authedUserID(c), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgTodoNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, "todo_delete_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgTodoDeleted})
}
