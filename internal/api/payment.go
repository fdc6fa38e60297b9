package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shopmatic/internal/entity"
	"shopmatic/internal/payment"
	"shopmatic/internal/service"
)

type PaymentHandler struct {
	coupons   *service.CouponService
	processor *payment.Client
}

func NewPaymentHandler(coupons *service.CouponService, processor *payment.Client) *PaymentHandler {
	return &PaymentHandler{coupons: coupons, processor: processor}
}

// CreatePayment registers a payment intent --> POST /payment/create
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	body := struct {
		Amount   float64     `json:"amount"`
		Shipping interface{} `json:"shipping"`
	}{}
	if err := c.Bind(&body); err != nil {
		return entity.BadRequest("Invalid request payload")
	}
	if body.Amount == 0 {
		return entity.BadRequest("Please Enter the Amount")
	}

	intent, err := h.processor.CreateIntent(c.Request().Context(), body.Amount, body.Shipping)
	if err != nil {
		return err
	}

	// Field name predates this service; existing clients read it as is.
	return c.JSON(http.StatusOK, echo.Map{"success": true, "cleintSecret": intent.ClientSecret})
}

// NewCoupon creates a coupon --> POST /payment/coupon/new
func (h *PaymentHandler) NewCoupon(c echo.Context) error {
	body := struct {
		Coupon string  `json:"coupon"`
		Amount float64 `json:"amount"`
	}{}
	if err := c.Bind(&body); err != nil {
		return entity.BadRequest("Invalid request payload")
	}

	coupon, err := h.coupons.Create(c.Request().Context(), body.Coupon, body.Amount)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": fmt.Sprintf("Coupon %s Created Successfully", coupon.Code),
	})
}

// Discount resolves a code --> GET /payment/coupon/discount?coupon=
func (h *PaymentHandler) Discount(c echo.Context) error {
	amount, err := h.coupons.Discount(c.Request().Context(), c.QueryParam("coupon"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "discount": amount})
}

// AllCoupons lists every coupon --> GET /payment/coupon/all
func (h *PaymentHandler) AllCoupons(c echo.Context) error {
	coupons, err := h.coupons.All(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "coupons": coupons})
}

// DeleteCoupon removes a coupon --> DELETE /payment/coupon/delete/:id
func (h *PaymentHandler) DeleteCoupon(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return entity.BadRequest("Invalid Coupon Id")
	}
	if err := h.coupons.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Coupon Deleted Successfully"})
}
