package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shopmatic/internal/entity"
	"shopmatic/internal/service"
)

type OrderHandler struct {
	orders *service.OrderService
}

func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create places an order --> POST /order/new
func (h *OrderHandler) Create(c echo.Context) error {
	order := entity.Order{}
	if err := c.Bind(&order); err != nil {
		return entity.BadRequest("Invalid request payload")
	}

	if _, err := h.orders.Create(c.Request().Context(), &order); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Order Placed Successfully"})
}

// My lists the caller's orders --> GET /order/my?id=
func (h *OrderHandler) My(c echo.Context) error {
	orders, err := h.orders.MyOrders(c.Request().Context(), c.QueryParam("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "order": orders})
}

// All lists every order --> GET /order/all-orders
func (h *OrderHandler) All(c echo.Context) error {
	orders, err := h.orders.All(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "order": orders})
}

// Get returns order detail --> GET /order/:id
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return entity.BadRequest("Invalid ID")
	}
	order, err := h.orders.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "order": order})
}

// Process advances the status one step --> PUT /order/:id
func (h *OrderHandler) Process(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return entity.BadRequest("Invalid ID")
	}
	if _, err := h.orders.Advance(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Order Processed Successfully"})
}

// Delete removes an order --> DELETE /order/:id
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return entity.BadRequest("Invalid ID")
	}
	if err := h.orders.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Order Deleted Successfully"})
}
