package sandbox

import (
	"errors"
	"net/http"
	"strings"

	"app/internal/api"
	"app/internal/domain/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// POST /api/auth/login （form-encoded）
func (s *Server) login(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	if email == "" || password == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "VALIDATION_ERROR"})
	}

	var u model.User
	err := s.db.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "UNAUTHORIZED"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "UNAUTHORIZED"})
	}

	if err := s.issueSessionCookie(c, u.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}
	return c.JSON(http.StatusOK, u)
}

// POST /api/auth/logout
func (s *Server) logout(c echo.Context) error {
	s.clearSessionCookie(c)
	return c.NoContent(http.StatusNoContent)
}

// GET /api/auth/me
func (s *Server) me(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "UNAUTHORIZED"})
	}

	var u model.User
	err := s.db.First(&u, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "UNAUTHORIZED"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}
	return c.JSON(http.StatusOK, u)
}

// POST /api/users （会員登録）
func (s *Server) signup(c echo.Context) error {
	var req api.SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "VALIDATION_ERROR"})
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || len(req.Password) < 8 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "VALIDATION_ERROR"})
	}

	var existing model.User
	err := s.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return c.JSON(http.StatusConflict, errorResponse{Error: "CONFLICT"})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}

	u := model.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
	if err := s.db.Create(&u).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}

	return c.JSON(http.StatusCreated, u)
}

// PUT /api/users/me
func (s *Server) updateProfile(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "UNAUTHORIZED"})
	}

	var req api.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "VALIDATION_ERROR"})
	}

	var u model.User
	if err := s.db.First(&u, "id = ?", userID).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}

	u.FirstName = req.FirstName
	u.LastName = req.LastName
	if err := s.db.Save(&u).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}

	return c.JSON(http.StatusOK, u)
}
