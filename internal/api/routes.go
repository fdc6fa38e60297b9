package api

import (
	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Users    *UserHandler
	Products *ProductHandler
	Orders   *OrderHandler
	Payments *PaymentHandler
	Stats    *StatsHandler
	Admin    echo.MiddlewareFunc
}

// Register wires the full route table under /api/v1. Paths and auth
// requirements are part of the frontend contract.
func Register(e *echo.Echo, h Handlers) {
	v1 := e.Group("/api/v1")

	user := v1.Group("/user")
	user.POST("/new", h.Users.Create)
	user.GET("/all", h.Users.All, h.Admin)
	user.GET("/:id", h.Users.Get)
	user.DELETE("/:id", h.Users.Delete, h.Admin)

	product := v1.Group("/product")
	product.POST("/new", h.Products.Create, h.Admin)
	product.GET("/latest", h.Products.Latest)
	product.GET("/all", h.Products.All)
	product.GET("/category", h.Products.Categories)
	product.GET("/admin-products", h.Products.AdminProducts, h.Admin)
	product.GET("/:id", h.Products.Get)
	product.PUT("/:id", h.Products.Update, h.Admin)
	product.DELETE("/:id", h.Products.Delete, h.Admin)

	order := v1.Group("/order")
	order.POST("/new", h.Orders.Create)
	order.GET("/my", h.Orders.My)
	order.GET("/all-orders", h.Orders.All, h.Admin)
	order.GET("/:id", h.Orders.Get)
	order.PUT("/:id", h.Orders.Process, h.Admin)
	order.DELETE("/:id", h.Orders.Delete, h.Admin)

	pay := v1.Group("/payment")
	pay.POST("/create", h.Payments.CreatePayment)
	pay.POST("/coupon/new", h.Payments.NewCoupon, h.Admin)
	pay.GET("/coupon/discount", h.Payments.Discount)
	pay.GET("/coupon/all", h.Payments.AllCoupons, h.Admin)
	pay.DELETE("/coupon/delete/:id", h.Payments.DeleteCoupon, h.Admin)

	admin := v1.Group("/admin", h.Admin)
	admin.GET("/stats", h.Stats.Dashboard)
	admin.GET("/pie", h.Stats.Pie)
	admin.GET("/bar", h.Stats.Bar)
	admin.GET("/line", h.Stats.Line)
}
