package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/karamansaglik/pharmacy-api/internal/application/dto"
	"github.com/karamansaglik/pharmacy-api/internal/application/usecase"
)

// CurrencyHandler serves FX quotes for the dashboard ticker (protected).
type CurrencyHandler struct {
	uc *usecase.CurrencyUseCase
}

// NewCurrencyHandler builds the handler.
func NewCurrencyHandler(uc *usecase.CurrencyUseCase) *CurrencyHandler {
	return &CurrencyHandler{uc: uc}
}

// GetRates godoc
// @Summary      Current USD/EUR to TRY rates
// @Tags         currency
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CurrencyRatesResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/currency [get]
func (h *CurrencyHandler) GetRates(c *fiber.Ctx) error {
	out, err := h.uc.GetRates(c.Context())
	if err != nil {
		// No cache and no provider: unlike price comparison there is no
		// product to fall back on, so surface the outage.
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "RATES_UNAVAILABLE", Message: "exchange rates are temporarily unavailable"})
	}
	return c.JSON(out)
}
