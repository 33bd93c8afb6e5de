package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapi/internal/service"
)

const (
	msgSignedUp     = "you are signed up successfully"
	msgLoggedIn     = "you are logged in successfully"
	msgUserExists   = "User already exists"
	msgUserNotFound = "User does not exist"
	msgBadInput     = "invalid input"
	msgInternal     = "Internal server error"
)

// signupRequest is validated strictly: the username must look like an email.
type signupRequest struct {
	Username string `json:"username" binding:"required,min=3,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

// loginRequest is deliberately unvalidated beyond JSON shape; bad
// credentials fall through to the usual 404/401 paths.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"message": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  signupRequest  true  "Credentials"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if h.log != nil {
			h.log.Infow("signup_bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"message": msgBadInput,
			"error":   err.Error(),
		})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.services.SignUp(ctx, req.Username, req.Password, req.Name); err != nil {
		if errors.Is(err, service.ErrUserExists) {
			c.JSON(http.StatusBadRequest, gin.H{"message": msgUserExists})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, "signup_failed", err, "username", req.Username)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msgSignedUp})
}

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200   {object}  map[string]string  "message, token"
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /login [post]
func (h *Handler) logIn(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgBadInput})
		return
	}

	ctx := c.Request.Context()
	token, err := h.services.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": msgUserNotFound})
		case errors.Is(err, service.ErrInvalidCredentials):
			if h.log != nil {
				h.log.Infow("login_rejected", "username", req.Username)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, msgInternal, "login_failed", err, "username", req.Username)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msgLoggedIn,
		"token":   token,
	})
}
