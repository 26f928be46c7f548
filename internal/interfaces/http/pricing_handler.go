package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/karamansaglik/pharmacy-api/internal/application/dto"
	"github.com/karamansaglik/pharmacy-api/internal/application/usecase"
	"github.com/karamansaglik/pharmacy-api/internal/domain"
)

// PricingHandler handles price comparison requests (protected).
type PricingHandler struct {
	uc *usecase.PricingUseCase
}

// NewPricingHandler builds the handler.
func NewPricingHandler(uc *usecase.PricingUseCase) *PricingHandler {
	return &PricingHandler{uc: uc}
}

// Compare godoc
// @Summary      Compare product price against external listings
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Product ID"
// @Success      200  {object}  dto.PriceComparisonResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/price-comparison [get]
func (h *PricingHandler) Compare(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.uc.Compare(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
