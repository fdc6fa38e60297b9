package api

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shopmatic/internal/entity"
	"shopmatic/internal/service"
)

type ProductHandler struct {
	products *service.ProductService
}

func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// Create adds a product from a multipart form --> POST /product/new
func (h *ProductHandler) Create(c echo.Context) error {
	price, _ := strconv.ParseFloat(c.FormValue("price"), 64)
	stock, _ := strconv.Atoi(c.FormValue("stock"))

	_, err := h.products.Create(c.Request().Context(), service.NewProductParams{
		Name:     c.FormValue("name"),
		Price:    price,
		Stock:    stock,
		Category: c.FormValue("category"),
		Photo:    formFile(c, "photo"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Product created Successfully"})
}

// Latest returns the five newest products --> GET /product/latest
func (h *ProductHandler) Latest(c echo.Context) error {
	products, err := h.products.Latest(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "products": products})
}

// All runs the filtered, paginated listing --> GET /product/all
func (h *ProductHandler) All(c echo.Context) error {
	price, _ := strconv.ParseFloat(c.QueryParam("price"), 64)
	page, _ := strconv.Atoi(c.QueryParam("page"))

	products, totalPage, err := h.products.Search(c.Request().Context(), entity.ProductFilter{
		Search:   c.QueryParam("search"),
		MaxPrice: price,
		Category: c.QueryParam("category"),
		Sort:     c.QueryParam("sort"),
		Page:     page,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"products":  products,
		"totalPage": totalPage,
	})
}

// Categories lists the distinct categories --> GET /product/category
func (h *ProductHandler) Categories(c echo.Context) error {
	categories, err := h.products.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "categories": categories})
}

// AdminProducts lists everything, unpaginated --> GET /product/admin-products
func (h *ProductHandler) AdminProducts(c echo.Context) error {
	products, err := h.products.AdminProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "products": products})
}

// Get returns one product --> GET /product/:id
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return entity.BadRequest("Invalid ID")
	}
	product, err := h.products.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "product": product})
}

// Update applies a partial multipart update --> PUT /product/:id
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return entity.BadRequest("Invalid ID")
	}

	price, _ := strconv.ParseFloat(c.FormValue("price"), 64)
	stock, _ := strconv.Atoi(c.FormValue("stock"))

	_, err = h.products.Update(c.Request().Context(), id, service.UpdateProductParams{
		Name:     c.FormValue("name"),
		Price:    price,
		Stock:    stock,
		Category: c.FormValue("category"),
		Photo:    formFile(c, "photo"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Product updated Successfully"})
}

// Delete removes a product and its photo --> DELETE /product/:id
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return entity.BadRequest("Invalid ID")
	}
	if err := h.products.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Product deleted Successfully"})
}

func formFile(c echo.Context, name string) *multipart.FileHeader {
	file, err := c.FormFile(name)
	if err != nil {
		return nil
	}
	return file
}
