package handler

import (
	"log/slog"
	"net/http"

	"bakehouse/internal/delivery/http/response"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DeliveryFeeHandlerParams holds dependencies for DeliveryFeeHandler, injected by Fx.
type DeliveryFeeHandlerParams struct {
	fx.In

	FeeUC  usecase.DeliveryFeeUsecase
	Logger *slog.Logger
}

// DeliveryFeeHandler holds dependencies for delivery-fee handlers.
type DeliveryFeeHandler struct {
	feeUC  usecase.DeliveryFeeUsecase
	logger *slog.Logger
}

// NewDeliveryFeeHandler is the constructor for DeliveryFeeHandler.
func NewDeliveryFeeHandler(params DeliveryFeeHandlerParams) *DeliveryFeeHandler {
	return &DeliveryFeeHandler{
		feeUC:  params.FeeUC,
		logger: params.Logger,
	}
}

// CreateDeliveryFeeRequest represents the request body for adding a fee schedule.
type CreateDeliveryFeeRequest struct {
	Location              string  `json:"location" validate:"required"`
	Zone                  string  `json:"zone"`
	MinOrderAmount        float64 `json:"min_order_amount" validate:"min=0"`
	DeliveryCharge        float64 `json:"delivery_charge" validate:"min=0"`
	AmountForFreeDelivery float64 `json:"amount_for_free_delivery" validate:"min=0"`
}

// UpdateDeliveryFeeRequest represents the request body for updating a fee schedule.
type UpdateDeliveryFeeRequest struct {
	Location              *string  `json:"location,omitempty"`
	Zone                  *string  `json:"zone,omitempty"`
	MinOrderAmount        *float64 `json:"min_order_amount,omitempty" validate:"omitempty,min=0"`
	DeliveryCharge        *float64 `json:"delivery_charge,omitempty" validate:"omitempty,min=0"`
	AmountForFreeDelivery *float64 `json:"amount_for_free_delivery,omitempty" validate:"omitempty,min=0"`
}

// CreateFee handles adding a new delivery fee schedule.
func (h *DeliveryFeeHandler) CreateFee(c echo.Context) error {
	var req CreateDeliveryFeeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery fee input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateDeliveryFeeInput{
		Location:              req.Location,
		Zone:                  req.Zone,
		MinOrderAmount:        req.MinOrderAmount,
		DeliveryCharge:        req.DeliveryCharge,
		AmountForFreeDelivery: req.AmountForFreeDelivery,
	}

	fee, err := h.feeUC.CreateFee(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, fee, "Delivery fee created successfully")
}

// ListFees handles retrieving all fee schedules, optionally filtered by an
// ?q= search query.
func (h *DeliveryFeeHandler) ListFees(c echo.Context) error {
	fees, err := h.feeUC.ListFees(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, fees, "Delivery fees retrieved successfully")
}

// UpdateFee handles a partial update of a fee schedule.
func (h *DeliveryFeeHandler) UpdateFee(c echo.Context) error {
	feeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery fee ID")
	}

	var req UpdateDeliveryFeeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery fee input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateDeliveryFeeInput{
		Location:              req.Location,
		Zone:                  req.Zone,
		MinOrderAmount:        req.MinOrderAmount,
		DeliveryCharge:        req.DeliveryCharge,
		AmountForFreeDelivery: req.AmountForFreeDelivery,
	}

	fee, err := h.feeUC.UpdateFee(c.Request().Context(), feeID, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, fee, "Delivery fee updated successfully")
}

// DeleteFee handles removing a fee schedule.
func (h *DeliveryFeeHandler) DeleteFee(c echo.Context) error {
	feeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery fee ID")
	}

	if err := h.feeUC.DeleteFee(c.Request().Context(), feeID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Delivery fee deleted successfully")
}

// handleAppError converts AppError to appropriate HTTP response
func (h *DeliveryFeeHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
