package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bakehouse/internal/delivery/http/validator"
	"bakehouse/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuoteContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/quotes/cake", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newQuoteHandler() *QuoteHandler {
	return &QuoteHandler{
		pricingUC: impl.NewPricingService(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestQuoteHandler_QuoteCake_Success(t *testing.T) {
	c, rec := newQuoteContext(t, `{
		"complexity": "Design by Cream Easy",
		"real_cake_kg": 2,
		"flavor_charge": true,
		"apply_discount": true
	}`)

	require.NoError(t, newQuoteHandler().QuoteCake(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			RealCakePrice float64 `json:"real_cake_price"`
			FlavorCharge  float64 `json:"flavor_charge"`
			Total         float64 `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 252.0, body.Data.RealCakePrice)
	assert.Equal(t, 42.0, body.Data.FlavorCharge)
	assert.InDelta(t, 264.6, body.Data.Total, 1e-9)
}

func TestQuoteHandler_QuoteCake_UnknownTier(t *testing.T) {
	c, rec := newQuoteContext(t, `{
		"complexity": "impossible",
		"real_cake_kg": 1
	}`)

	require.NoError(t, newQuoteHandler().QuoteCake(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestQuoteHandler_QuoteCake_NegativeWeightRejectedByValidator(t *testing.T) {
	c, rec := newQuoteContext(t, `{
		"complexity": "Design by Cream Easy",
		"real_cake_kg": -2
	}`)

	require.NoError(t, newQuoteHandler().QuoteCake(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
