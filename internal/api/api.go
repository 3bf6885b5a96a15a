// Package api exposes the directory over HTTP. Handlers translate requests
// into directory operations and map the error taxonomy onto status codes;
// every response body is a redacted projection, never a raw record.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/celerix-dev/celerix-directory/internal/auth"
	"github.com/celerix-dev/celerix-directory/internal/directory"
	"github.com/celerix-dev/celerix-directory/pkg/schema"
)

type Handler struct {
	Directory *directory.Directory
	Tokens    *auth.TokenService
}

// fail maps directory errors to client/server status codes. Client errors
// carry their message; anything else is a generic 500 with no internal
// detail.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, directory.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields: email, password, role"})
	case errors.Is(err, directory.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role: must be admin or user"})
	case errors.Is(err, directory.ErrEmailExists):
		c.JSON(http.StatusConflict, gin.H{"message": "User with this email already exists"})
	case errors.Is(err, directory.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, directory.ErrSelfDeletion):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot delete yourself"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields: email, password"})
		return
	}

	user, err := h.Directory.GetByEmail(input.Email)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		fail(c, err)
		return
	}

	if !auth.VerifyPassword(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := h.Tokens.Issue(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user.Public()})
}

func (h *Handler) CreateUser(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields: email, password, role"})
		return
	}

	// The directory only ever stores the opaque hash.
	credential := ""
	if input.Password != "" {
		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		credential = hash
	}

	user, err := h.Directory.Create(input.Email, credential, input.Name, input.Role)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User created", "user": user})
}

func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.Directory.GetByID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user.Public())
}

func (h *Handler) ListAll(c *gin.Context) {
	users, err := h.Directory.ListAll()
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]schema.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) ListPaged(c *gin.Context) {
	// Malformed or missing values parse to zero and normalize to the
	// defaults inside the pagination engine.
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.Directory.ListPaged(page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result.Public())
}

func (h *Handler) DeleteUser(c *gin.Context) {
	principal, _ := auth.PrincipalFrom(c)

	deleted, err := h.Directory.Delete(c.Param("id"), principal.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted", "user": deleted})
}
