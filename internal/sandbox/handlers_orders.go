package sandbox

import (
	"errors"
	"net/http"
	"time"

	"app/internal/api"
	"app/internal/domain/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var (
	errCartEmpty   = errors.New("cart empty")
	errAlreadyPaid = errors.New("already paid")
	errNotPayable  = errors.New("not payable")
)

func (s *Server) orderDTO(db *gorm.DB, o model.Order) (api.OrderDTO, error) {
	var items []model.OrderItem
	if err := db.Where("order_id = ?", o.ID).Order("created_at").Find(&items).Error; err != nil {
		return api.OrderDTO{}, err
	}

	dto := api.OrderDTO{
		ID:         o.ID,
		Status:     o.Status,
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
		PaidAt:     o.PaidAt,
		Items:      make([]api.OrderItemDTO, 0, len(items)),
	}
	for _, it := range items {
		dto.Items = append(dto.Items, api.OrderItemDTO{
			ID:        it.ID,
			ProductID: it.ProductID,
			Title:     it.TitleSnapshot,
			Price:     it.UnitPriceSnapshot,
			Quantity:  it.Quantity,
		})
	}
	return dto, nil
}

// GET /api/orders
func (s *Server) listOrders(c echo.Context) error {
	userID, _ := userIDFromContext(c)

	var orders []model.Order
	if err := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&orders).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}

	out := api.OrderListResponse{Items: make([]api.OrderDTO, 0, len(orders))}
	for _, o := range orders {
		dto, err := s.orderDTO(s.db, o)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
		}
		out.Items = append(out.Items, dto)
	}
	return c.JSON(http.StatusOK, out)
}

// POST /api/orders/checkout
// ACTIVEカートを注文へアトミックに変換する。空カートは400。
func (s *Server) checkout(c echo.Context) error {
	userID, _ := userIDFromContext(c)

	var created model.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cart model.Cart
		err := tx.Where("user_id = ? AND status = ?", userID, model.CartStatusActive).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errCartEmpty
		}
		if err != nil {
			return err
		}

		var items []model.CartItem
		if err := tx.Where("cart_id = ?", cart.ID).Order("created_at").Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return errCartEmpty
		}

		var total int64
		orderID := uuid.NewString()
		orderItems := make([]model.OrderItem, 0, len(items))
		for _, it := range items {
			// タイトルは注文時点のスナップショット
			var p model.Product
			title := ""
			if err := tx.First(&p, "id = ?", it.ProductID).Error; err == nil {
				title = p.Title
			}

			orderItems = append(orderItems, model.OrderItem{
				ID:                uuid.NewString(),
				OrderID:           orderID,
				ProductID:         it.ProductID,
				TitleSnapshot:     title,
				UnitPriceSnapshot: it.UnitPriceSnapshot,
				Quantity:          it.Quantity,
			})
			total += it.UnitPriceSnapshot * it.Quantity
		}

		created = model.Order{
			ID:         orderID,
			UserID:     userID,
			Status:     model.OrderStatusPending,
			TotalPrice: total,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return err
		}

		// カートはCHECKED_OUTにして明細を消す（再注文防止）
		cart.Status = model.CartStatusCheckedOut
		if err := tx.Save(&cart).Error; err != nil {
			return err
		}
		return tx.Where("cart_id = ?", cart.ID).Delete(&model.CartItem{}).Error
	})

	if errors.Is(err, errCartEmpty) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "CART_EMPTY"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}

	dto, err := s.orderDTO(s.db, created)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}
	return c.JSON(http.StatusCreated, dto)
}

// PATCH /api/orders/:id/pay
// PENDING → PAID は一度だけ。再実行は409。
func (s *Server) payOrder(c echo.Context) error {
	userID, _ := userIDFromContext(c)
	orderID := c.Param("id")

	var order model.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			return err
		}
		if order.UserID != userID {
			// 他人の注文は存在しない扱い
			return gorm.ErrRecordNotFound
		}

		switch order.Status {
		case model.OrderStatusPaid:
			return errAlreadyPaid
		case model.OrderStatusCanceled:
			return errNotPayable
		}

		now := time.Now()
		order.Status = model.OrderStatusPaid
		order.PaidAt = &now
		return tx.Save(&order).Error
	})

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "NOT_FOUND"})
	case errors.Is(err, errAlreadyPaid):
		return c.JSON(http.StatusConflict, errorResponse{Error: "ALREADY_PAID"})
	case errors.Is(err, errNotPayable):
		return c.JSON(http.StatusConflict, errorResponse{Error: "NOT_PAYABLE"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}

	dto, err := s.orderDTO(s.db, order)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "INTERNAL"})
	}
	return c.JSON(http.StatusOK, dto)
}
