package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"shopmatic/internal/entity"
	"shopmatic/internal/service"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Create upserts a user by external id --> POST /user/new
func (h *UserHandler) Create(c echo.Context) error {
	body := struct {
		ID     string    `json:"_id"`
		Name   string    `json:"name"`
		Email  string    `json:"email"`
		Photo  string    `json:"photo"`
		Gender string    `json:"gender"`
		DOB    time.Time `json:"dob"`
	}{}
	if err := c.Bind(&body); err != nil {
		return entity.BadRequest("Invalid request payload")
	}

	user, err := h.users.Upsert(c.Request().Context(), service.NewUserParams{
		ID:     body.ID,
		Name:   body.Name,
		Email:  body.Email,
		Photo:  body.Photo,
		Gender: body.Gender,
		DOB:    body.DOB,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": fmt.Sprintf("Welcome, %s", user.Name),
	})
}

// All lists every user --> GET /user/all
func (h *UserHandler) All(c echo.Context) error {
	users, err := h.users.All(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "users": users})
}

// Get returns one user --> GET /user/:id
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.users.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": user})
}

// Delete removes a user --> DELETE /user/:id
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.users.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "User Deleted Successfully"})
}
