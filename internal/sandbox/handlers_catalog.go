package sandbox

import (
	"errors"
	"net/http"

	"app/internal/api"
	"app/internal/domain/model"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// GET /api/products
func (s *Server) listProducts(c echo.Context) error {
	var products []model.Product
	if err := s.db.Where("is_active = ?", true).Order("created_at").Find(&products).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}
	return c.JSON(http.StatusOK, api.ProductListResponse{Items: products})
}

// GET /api/products/:id
func (s *Server) getProduct(c echo.Context) error {
	var p model.Product
	err := s.db.First(&p, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "NOT_FOUND"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}
	return c.JSON(http.StatusOK, p)
}

// GET /api/workshops
func (s *Server) listWorkshops(c echo.Context) error {
	var workshops []model.Workshop
	if err := s.db.Order("starts_at").Find(&workshops).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}
	return c.JSON(http.StatusOK, api.WorkshopListResponse{Items: workshops})
}

// GET /api/workshops/:id
func (s *Server) getWorkshop(c echo.Context) error {
	var w model.Workshop
	err := s.db.First(&w, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "NOT_FOUND"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}
	return c.JSON(http.StatusOK, w)
}
