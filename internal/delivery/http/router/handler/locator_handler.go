package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"bakehouse/internal/delivery/http/response"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocatorHandlerParams holds dependencies for LocatorHandler, injected by Fx.
type LocatorHandlerParams struct {
	fx.In

	LocatorUC usecase.LocatorUsecase
	Logger    *slog.Logger
}

// LocatorHandler holds dependencies for nearest-store handlers.
type LocatorHandler struct {
	locatorUC usecase.LocatorUsecase
	logger    *slog.Logger
}

// NewLocatorHandler is the constructor for LocatorHandler.
func NewLocatorHandler(params LocatorHandlerParams) *LocatorHandler {
	return &LocatorHandler{
		locatorUC: params.LocatorUC,
		logger:    params.Logger,
	}
}

// FindNearest handles resolving a customer address to the closest stores.
// Query parameters: address (required), category, limit.
func (h *LocatorHandler) FindNearest(c echo.Context) error {
	address := strings.TrimSpace(c.QueryParam("address"))
	if address == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "address query parameter is required")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return response.BadRequest(c, "VALIDATION_ERROR", "limit must be a positive integer")
		}
		limit = parsed
	}

	result, err := h.locatorUC.FindNearest(c.Request().Context(), address, c.QueryParam("category"), limit)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Nearest stores retrieved successfully")
}

// handleAppError converts AppError to appropriate HTTP response
func (h *LocatorHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
