package middleware

import (
	"crypto/subtle"
	"net/http"

	"bakehouse/config"

	"github.com/labstack/echo/v4"
)

// PinHeader carries the admin PIN on mutating requests.
const PinHeader = "X-Admin-Pin"

// PinMiddleware gates mutating routes behind a shared admin PIN.
type PinMiddleware struct {
	cfg *config.Config
}

// NewPinMiddleware is the constructor for PinMiddleware.
func NewPinMiddleware(cfg *config.Config) *PinMiddleware {
	return &PinMiddleware{cfg: cfg}
}

// RequirePin validates the PIN header against the configured value. The
// comparison is constant time.
func (m *PinMiddleware) RequirePin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.cfg.Admin == nil || m.cfg.Admin.Pin == "" {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Admin PIN is not configured"})
		}

		pin := c.Request().Header.Get(PinHeader)
		if pin == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "PIN header is missing"})
		}

		if subtle.ConstantTimeCompare([]byte(pin), []byte(m.cfg.Admin.Pin)) != 1 {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid PIN"})
		}

		return next(c)
	}
}
