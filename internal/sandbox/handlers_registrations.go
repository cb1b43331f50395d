package sandbox

import (
	"errors"
	"net/http"

	"app/internal/api"
	"app/internal/domain/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// POST /api/workshop-registrations/:id/register
func (s *Server) registerWorkshop(c echo.Context) error {
	userID, _ := userIDFromContext(c)
	workshopID := c.Param("id")

	var reg model.Registration
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var w model.Workshop
		if err := tx.First(&w, "id = ?", workshopID).Error; err != nil {
			return err
		}

		var existing model.Registration
		err := tx.Where("user_id = ? AND workshop_id = ?", userID, workshopID).First(&existing).Error
		if err == nil {
			return errAlreadyRegistered
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if w.SpotsLeft <= 0 {
			return errWorkshopFull
		}

		reg = model.Registration{
			ID:         uuid.NewString(),
			UserID:     userID,
			WorkshopID: workshopID,
		}
		if err := tx.Create(&reg).Error; err != nil {
			return err
		}

		w.SpotsLeft--
		return tx.Save(&w).Error
	})

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "NOT_FOUND"})
	case errors.Is(err, errAlreadyRegistered):
		return c.JSON(http.StatusConflict, errorResponse{Error: "ALREADY_REGISTERED"})
	case errors.Is(err, errWorkshopFull):
		return c.JSON(http.StatusConflict, errorResponse{Error: "FULL"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}

	return c.JSON(http.StatusOK, reg)
}

// DELETE /api/workshop-registrations/:id/cancel
func (s *Server) cancelRegistration(c echo.Context) error {
	userID, _ := userIDFromContext(c)
	workshopID := c.Param("id")

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var reg model.Registration
		if err := tx.Where("user_id = ? AND workshop_id = ?", userID, workshopID).First(&reg).Error; err != nil {
			return err
		}
		if err := tx.Delete(&reg).Error; err != nil {
			return err
		}

		var w model.Workshop
		if err := tx.First(&w, "id = ?", workshopID).Error; err != nil {
			return err
		}
		w.SpotsLeft++
		return tx.Save(&w).Error
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "NOT_FOUND"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}

	return c.NoContent(http.StatusNoContent)
}

// GET /api/workshop-registrations/user/my-registrations
func (s *Server) myRegistrations(c echo.Context) error {
	userID, _ := userIDFromContext(c)

	var regs []model.Registration
	if err := s.db.Where("user_id = ?", userID).Order("created_at").Find(&regs).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}
	return c.JSON(http.StatusOK, api.RegistrationListResponse{Items: regs})
}

var (
	errAlreadyRegistered = errors.New("already registered")
	errWorkshopFull      = errors.New("workshop full")
)
