package handler

import (
	"log/slog"
	"net/http"

	"bakehouse/internal/delivery/http/response"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// QuoteHandlerParams holds dependencies for QuoteHandler, injected by Fx.
type QuoteHandlerParams struct {
	fx.In

	PricingUC usecase.PricingUsecase
	Logger    *slog.Logger
}

// QuoteHandler holds dependencies for cake quote handlers.
type QuoteHandler struct {
	pricingUC usecase.PricingUsecase
	logger    *slog.Logger
}

// NewQuoteHandler is the constructor for QuoteHandler.
func NewQuoteHandler(params QuoteHandlerParams) *QuoteHandler {
	return &QuoteHandler{
		pricingUC: params.PricingUC,
		logger:    params.Logger,
	}
}

// CakeQuoteRequest represents the request body for a cake price quote.
type CakeQuoteRequest struct {
	Complexity    string  `json:"complexity"`
	RealCakeKg    float64 `json:"real_cake_kg" validate:"min=0"`
	DummyCakeKg   float64 `json:"dummy_cake_kg" validate:"min=0"`
	FlavorCharge  bool    `json:"flavor_charge"`
	ToyComplexity string  `json:"toy_complexity"`
	ToyQuantity   int     `json:"toy_quantity" validate:"min=0"`
	ApplyDiscount bool    `json:"apply_discount"`
}

// QuoteCake handles producing an itemized cake price quote.
func (h *QuoteHandler) QuoteCake(c echo.Context) error {
	var req CakeQuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quote input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	quote, err := h.pricingUC.QuoteCake(&usecase.CakeQuoteInput{
		Complexity:    req.Complexity,
		RealCakeKg:    req.RealCakeKg,
		DummyCakeKg:   req.DummyCakeKg,
		FlavorCharge:  req.FlavorCharge,
		ToyComplexity: req.ToyComplexity,
		ToyQuantity:   req.ToyQuantity,
		ApplyDiscount: req.ApplyDiscount,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote, "Cake quote computed successfully")
}

// handleAppError converts AppError to appropriate HTTP response
func (h *QuoteHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
