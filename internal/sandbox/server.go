package sandbox

import (
	"app/internal/config"

	"github.com/decred/slog"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// Server はサンドボックスAPI。クライアントが消費するHTTP契約を
// そのまま実装したローカル用バックエンド（本物の決済は呼ばない）。
type Server struct {
	db  *gorm.DB
	cfg config.SandboxConfig
	log slog.Logger
}

func NewServer(db *gorm.DB, cfg config.SandboxConfig, log slog.Logger) *Server {
	if log == nil {
		log = slog.Disabled
	}
	return &Server{db: db, cfg: cfg, log: log}
}

// Echo はルーティング済みの echo.Echo を組み立てる。
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	api := e.Group("/api")

	api.POST("/auth/login", s.login)
	api.POST("/auth/logout", s.logout)
	api.GET("/auth/me", s.me, s.requireSession)

	api.POST("/users", s.signup)
	api.PUT("/users/me", s.updateProfile, s.requireSession)

	api.GET("/products", s.listProducts)
	api.GET("/products/:id", s.getProduct)

	api.GET("/workshops", s.listWorkshops)
	api.GET("/workshops/:id", s.getWorkshop)

	api.POST("/workshop-registrations/:id/register", s.registerWorkshop, s.requireSession)
	api.DELETE("/workshop-registrations/:id/cancel", s.cancelRegistration, s.requireSession)
	api.GET("/workshop-registrations/user/my-registrations", s.myRegistrations, s.requireSession)

	api.GET("/carts/me", s.getCart, s.requireSession)
	api.POST("/cart-items", s.addCartItem, s.requireSession)
	api.PATCH("/cart-items/:id", s.updateCartItem, s.requireSession)
	api.DELETE("/cart-items/:id", s.deleteCartItem, s.requireSession)

	api.GET("/orders", s.listOrders, s.requireSession)
	api.POST("/orders/checkout", s.checkout, s.requireSession)
	api.PATCH("/orders/:id/pay", s.payOrder, s.requireSession)

	return e
}

type errorResponse struct {
	Error string `json:"error"`
}
