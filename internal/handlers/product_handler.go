package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"katalog/internal/middleware"
	"katalog/internal/models"
	"katalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PagingConfig bounds the page size clients may request.
type PagingConfig struct {
	DefaultSize int
	MaxSize     int
}

// pageQuery is the paging part of a listing request.
type pageQuery struct {
	Page int `validate:"gte=0"`
	Size int `validate:"gte=1"`
}

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	productService *services.ProductService
	paging         PagingConfig
	validate       *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService, paging PagingConfig) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		paging:         paging,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the product routes. Reads are public; writes go
// through auth.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.ListProducts)
	productRoutes.Get("/search", h.SearchProducts)
	productRoutes.Get("/:id", h.GetProduct)
	productRoutes.Post("/", auth, h.CreateProduct)
	productRoutes.Put("/:id", auth, h.UpdateProduct)
	productRoutes.Delete("/:id", auth, h.DeleteProduct)
}

// ListProducts handles GET /products with optional city_id, subcategory_id
// and tag_id filters.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	page, err := h.pageRequest(c)
	if err != nil {
		return badRequest(c, "Invalid paging parameters", err)
	}

	var filter models.FilterOptions
	if filter.CityIDs, err = idSet(c, "city_id"); err != nil {
		return badRequest(c, "Invalid city_id", err)
	}
	if filter.SubcategoryIDs, err = idSet(c, "subcategory_id"); err != nil {
		return badRequest(c, "Invalid subcategory_id", err)
	}
	if filter.TagIDs, err = idSet(c, "tag_id"); err != nil {
		return badRequest(c, "Invalid tag_id", err)
	}

	result, err := h.productService.FindProducts(c.UserContext(), page, filter, sortOptions(c))
	if err != nil {
		return respondError(c, "Could not list products", err)
	}
	return c.JSON(result)
}

// SearchProducts handles GET /products/search?name=.
func (h *ProductHandler) SearchProducts(c *fiber.Ctx) error {
	page, err := h.pageRequest(c)
	if err != nil {
		return badRequest(c, "Invalid paging parameters", err)
	}

	result, err := h.productService.SearchProducts(c.UserContext(), c.Query("name"), page, sortOptions(c))
	if err != nil {
		return respondError(c, "Could not search products", err)
	}
	return c.JSON(result)
}

// GetProduct handles GET /products/:id.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return badRequest(c, "Invalid product ID", err)
	}

	product, err := h.productService.GetProduct(c.UserContext(), id)
	if err != nil {
		return respondError(c, "Could not get product", err)
	}
	return c.JSON(product)
}

// CreateProduct handles POST /products.
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	memberID, ok := middleware.MemberID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Authentication required"})
	}

	var in models.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body", err)
	}

	product, err := h.productService.CreateProduct(c.UserContext(), memberID, in)
	if err != nil {
		return respondError(c, "Could not create product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct handles PUT /products/:id.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	memberID, ok := middleware.MemberID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Authentication required"})
	}
	id, err := productID(c)
	if err != nil {
		return badRequest(c, "Invalid product ID", err)
	}

	var in models.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body", err)
	}

	product, err := h.productService.UpdateProduct(c.UserContext(), memberID, id, in)
	if err != nil {
		return respondError(c, "Could not update product", err)
	}
	return c.JSON(product)
}

// DeleteProduct handles DELETE /products/:id.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	memberID, ok := middleware.MemberID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Authentication required"})
	}
	id, err := productID(c)
	if err != nil {
		return badRequest(c, "Invalid product ID", err)
	}

	if err := h.productService.DeleteProduct(c.UserContext(), memberID, id); err != nil {
		return respondError(c, "Could not delete product", err)
	}
	return c.JSON(fiber.Map{"message": fmt.Sprintf("Product %d deleted successfully", id)})
}

// pageRequest reads page and size, applying the configured default and cap.
func (h *ProductHandler) pageRequest(c *fiber.Ctx) (models.PageRequest, error) {
	page, err := intQuery(c, "page", 0)
	if err != nil {
		return models.PageRequest{}, err
	}
	size, err := intQuery(c, "size", h.paging.DefaultSize)
	if err != nil {
		return models.PageRequest{}, err
	}

	q := pageQuery{Page: page, Size: size}
	if err := h.validate.Struct(q); err != nil {
		return models.PageRequest{}, err
	}
	if err := h.validate.Var(size, fmt.Sprintf("lte=%d", h.paging.MaxSize)); err != nil {
		return models.PageRequest{}, fmt.Errorf("size must not exceed %d", h.paging.MaxSize)
	}
	return models.PageRequest{Page: q.Page, Size: q.Size}, nil
}

func sortOptions(c *fiber.Ctx) models.SortOptions {
	return models.SortOptions{
		SortBy:        c.Query("sort_by"),
		SortDirection: c.Query("sort_direction"),
	}
}

func intQuery(c *fiber.Ctx, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	return v, nil
}

// idSet collects IDs from repeated keys and comma-separated values, so
// ?tag_id=1&tag_id=2 and ?tag_id=1,2 are equivalent.
func idSet(c *fiber.Ctx, key string) ([]uint, error) {
	var ids []uint
	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		for _, part := range strings.Split(string(raw), ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseUint(part, 10, 64)
			if err != nil || id == 0 {
				return nil, fmt.Errorf("%s must be a positive integer, got %q", key, part)
			}
			ids = append(ids, uint(id))
		}
	}
	return ids, nil
}

func productID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("product ID must be a positive integer, got %q", c.Params("id"))
	}
	return uint(id), nil
}
