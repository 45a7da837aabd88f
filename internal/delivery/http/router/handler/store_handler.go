// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"bakehouse/internal/delivery/http/response"
	"bakehouse/internal/domain/entity"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
	Logger  *slog.Logger
}

// StoreHandler holds dependencies for store-related handlers.
type StoreHandler struct {
	storeUC usecase.StoreUsecase
	logger  *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler.
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeUC: params.StoreUC,
		logger:  params.Logger,
	}
}

// CreateStoreRequest represents the request body for registering a store.
type CreateStoreRequest struct {
	Name          string `json:"name" validate:"required"`
	Address       string `json:"address" validate:"required"`
	ContactNumber string `json:"contact_number" validate:"omitempty,contact_number"`
	Supervisor    string `json:"supervisor"`
	Hours         string `json:"hours" validate:"omitempty,store_hours"`
	Status        string `json:"status"`
	Category      string `json:"category"`
	PinLocation   string `json:"pin_location"`
}

// UpdateStoreRequest represents the request body for updating a store.
type UpdateStoreRequest struct {
	Name          *string `json:"name,omitempty"`
	Address       *string `json:"address,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty" validate:"omitempty,contact_number"`
	Supervisor    *string `json:"supervisor,omitempty"`
	Hours         *string `json:"hours,omitempty" validate:"omitempty,store_hours"`
	Status        *string `json:"status,omitempty"`
	Category      *string `json:"category,omitempty"`
	PinLocation   *string `json:"pin_location,omitempty"`
}

// CreateStore handles registering a new store.
func (h *StoreHandler) CreateStore(c echo.Context) error {
	var req CreateStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateStoreInput{
		Name:          req.Name,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
		Supervisor:    req.Supervisor,
		Hours:         req.Hours,
		Status:        entity.StoreStatus(req.Status),
		Category:      req.Category,
		PinLocation:   req.PinLocation,
	}

	store, err := h.storeUC.CreateStore(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, store, "Store created successfully")
}

// ListStores handles retrieving all stores, optionally filtered by an ?q=
// search query.
func (h *StoreHandler) ListStores(c echo.Context) error {
	stores, err := h.storeUC.ListStores(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stores, "Stores retrieved successfully")
}

// UpdateStore handles a partial update of a store.
func (h *StoreHandler) UpdateStore(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	var req UpdateStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateStoreInput{
		Name:          req.Name,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
		Supervisor:    req.Supervisor,
		Hours:         req.Hours,
		Category:      req.Category,
		PinLocation:   req.PinLocation,
	}
	if req.Status != nil {
		status := entity.StoreStatus(*req.Status)
		input.Status = &status
	}

	store, err := h.storeUC.UpdateStore(c.Request().Context(), storeID, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, store, "Store updated successfully")
}

// DeleteStore handles removing a store.
func (h *StoreHandler) DeleteStore(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	if err := h.storeUC.DeleteStore(c.Request().Context(), storeID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Store deleted successfully")
}

// handleAppError converts AppError to appropriate HTTP response
func (h *StoreHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
