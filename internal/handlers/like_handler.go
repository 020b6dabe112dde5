package handlers

import (
	"katalog/internal/middleware"
	"katalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// LikeHandler handles HTTP requests for product likes.
type LikeHandler struct {
	likeService *services.LikeService
}

// NewLikeHandler creates a new LikeHandler.
func NewLikeHandler(likeService *services.LikeService) *LikeHandler {
	return &LikeHandler{
		likeService: likeService,
	}
}

// RegisterRoutes registers the like routes. Every route goes through auth.
func (h *LikeHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/products/:id/likes", auth, h.Status)
	router.Post("/products/:id/likes", auth, h.Like)
	router.Delete("/products/:id/likes", auth, h.Unlike)
}

// Status handles GET /products/:id/likes.
func (h *LikeHandler) Status(c *fiber.Ctx) error {
	memberID, ok := middleware.MemberID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Authentication required"})
	}
	id, err := productID(c)
	if err != nil {
		return badRequest(c, "Invalid product ID", err)
	}

	status, err := h.likeService.Status(c.UserContext(), id, memberID)
	if err != nil {
		return respondError(c, "Could not get like status", err)
	}
	return c.JSON(status)
}

// Like handles POST /products/:id/likes.
func (h *LikeHandler) Like(c *fiber.Ctx) error {
	memberID, ok := middleware.MemberID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Authentication required"})
	}
	id, err := productID(c)
	if err != nil {
		return badRequest(c, "Invalid product ID", err)
	}

	status, err := h.likeService.Like(c.UserContext(), id, memberID)
	if err != nil {
		return respondError(c, "Could not like product", err)
	}
	return c.JSON(status)
}

// Unlike handles DELETE /products/:id/likes.
func (h *LikeHandler) Unlike(c *fiber.Ctx) error {
	memberID, ok := middleware.MemberID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Authentication required"})
	}
	id, err := productID(c)
	if err != nil {
		return badRequest(c, "Invalid product ID", err)
	}

	status, err := h.likeService.Unlike(c.UserContext(), id, memberID)
	if err != nil {
		return respondError(c, "Could not unlike product", err)
	}
	return c.JSON(status)
}
