// Package validator adapts go-playground/validator to Echo's Validator
// interface and registers the custom validations used by the HTTP layer.
package validator

import (
	"net/http"
	"regexp"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var (
	contactNumberPattern = regexp.MustCompile(`^\+?[0-9\s()-]{7,15}$`)
	storeHoursPattern    = regexp.MustCompile(`^\d{1,2}(:\d{2})?\s*([AP]M)?\s*-\s*\d{1,2}(:\d{2})?\s*([AP]M)?$`)
)

// Validator wraps a go-playground validator instance.
type Validator struct {
	validate *playground.Validate
}

// New creates the validator and registers the custom tags.
func New() *Validator {
	validate := playground.New()

	// Registration only fails for blank tags or nil funcs.
	_ = validate.RegisterValidation("contact_number", func(fl playground.FieldLevel) bool {
		return contactNumberPattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("store_hours", func(fl playground.FieldLevel) bool {
		return storeHoursPattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: validate}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
