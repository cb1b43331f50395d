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

// getOrCreateActiveCart はユーザーのACTIVEカート（無ければ作る）。
func (s *Server) getOrCreateActiveCart(db *gorm.DB, userID string) (model.Cart, error) {
	var cart model.Cart
	err := db.Where("user_id = ? AND status = ?", userID, model.CartStatusActive).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = model.Cart{
			ID:     uuid.NewString(),
			UserID: userID,
			Status: model.CartStatusActive,
		}
		if err := db.Create(&cart).Error; err != nil {
			return model.Cart{}, err
		}
		return cart, nil
	}
	return cart, err
}

// buildCartResponse はカート明細をスナップショット価格で集計する。
func (s *Server) buildCartResponse(db *gorm.DB, cartID string) (api.CartResponse, error) {
	var items []model.CartItem
	if err := db.Where("cart_id = ?", cartID).Order("created_at").Find(&items).Error; err != nil {
		return api.CartResponse{}, err
	}

	resp := api.CartResponse{Items: make([]api.CartItemDTO, 0, len(items))}
	for _, it := range items {
		resp.Items = append(resp.Items, api.CartItemDTO{
			ID:        it.ID,
			ProductID: it.ProductID,
			Price:     it.UnitPriceSnapshot,
			Quantity:  it.Quantity,
		})
		resp.Total += it.UnitPriceSnapshot * it.Quantity
	}
	return resp, nil
}

// GET /api/carts/me
func (s *Server) getCart(c echo.Context) error {
	userID, _ := userIDFromContext(c)

	cart, err := s.getOrCreateActiveCart(s.db, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}

	resp, err := s.buildCartResponse(s.db, cart.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}
	return c.JSON(http.StatusOK, resp)
}

// POST /api/cart-items （同一商品は数量加算）
func (s *Server) addCartItem(c echo.Context) error {
	userID, _ := userIDFromContext(c)

	var req api.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "VALIDATION_ERROR"})
	}
	if req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "INVALID_PRODUCT"})
	}
	if req.Quantity < 1 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "INVALID_QUANTITY"})
	}

	var p model.Product
	err := s.db.First(&p, "id = ?", req.ProductID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !p.IsActive) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "INVALID_PRODUCT"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}

	cart, err := s.getOrCreateActiveCart(s.db, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}

	// 既存明細があれば加算、無ければ追加時点の価格で新規作成
	var item model.CartItem
	err = s.db.Where("cart_id = ? AND product_id = ?", cart.ID, req.ProductID).First(&item).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = model.CartItem{
			ID:                uuid.NewString(),
			CartID:            cart.ID,
			ProductID:         req.ProductID,
			Quantity:          req.Quantity,
			UnitPriceSnapshot: p.Price,
		}
		if err := s.db.Create(&item).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
		}
	case err != nil:
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	default:
		item.Quantity += req.Quantity
		if err := s.db.Save(&item).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
		}
	}

	resp, err := s.buildCartResponse(s.db, cart.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}
	return c.JSON(http.StatusOK, resp)
}

// findOwnedCartItem は明細を所有チェックつきで引く。
func (s *Server) findOwnedCartItem(userID string, itemID string) (model.CartItem, model.Cart, error) {
	var item model.CartItem
	if err := s.db.First(&item, "id = ?", itemID).Error; err != nil {
		return model.CartItem{}, model.Cart{}, err
	}

	var cart model.Cart
	if err := s.db.First(&cart, "id = ?", item.CartID).Error; err != nil {
		return model.CartItem{}, model.Cart{}, err
	}
	if cart.UserID != userID {
		// 他人の明細は存在しない扱い
		return model.CartItem{}, model.Cart{}, gorm.ErrRecordNotFound
	}
	return item, cart, nil
}

// PATCH /api/cart-items/:id
func (s *Server) updateCartItem(c echo.Context) error {
	userID, _ := userIDFromContext(c)

	var req api.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "VALIDATION_ERROR"})
	}
	if req.Quantity < 1 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "INVALID_QUANTITY"})
	}

	item, cart, err := s.findOwnedCartItem(userID, c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "NOT_FOUND"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}

	item.Quantity = req.Quantity
	if err := s.db.Save(&item).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}

	resp, err := s.buildCartResponse(s.db, cart.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}
	return c.JSON(http.StatusOK, resp)
}

// DELETE /api/cart-items/:id
func (s *Server) deleteCartItem(c echo.Context) error {
	userID, _ := userIDFromContext(c)

	item, cart, err := s.findOwnedCartItem(userID, c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "NOT_FOUND"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}

	if err := s.db.Delete(&item).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}

	resp, err := s.buildCartResponse(s.db, cart.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}
	return c.JSON(http.StatusOK, resp)
}
