// Package validators holds custom validator/v10 rules shared by the domain packages.
package validators

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
	phonePattern    = regexp.MustCompile(`^\+?[0-9 ()-]{7,20}$`)

	instance *validator.Validate
	once     sync.Once
)

// New returns the shared validator with every custom rule registered.
func New() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("currency", CurrencyValidation)
		_ = v.RegisterValidation("phone", PhoneValidation)
		v.RegisterCustomTypeFunc(DecimalValuer, decimal.Decimal{})
		instance = v
	})
	return instance
}

// CurrencyValidation accepts three upper-case letters, e.g. KES or USD.
func CurrencyValidation(fl validator.FieldLevel) bool {
	return currencyPattern.MatchString(fl.Field().String())
}

// PhoneValidation accepts digits with an optional leading plus and common separators.
func PhoneValidation(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

// DecimalValuer exposes decimal.Decimal fields to numeric tags such as gt=0 or gte=0.
func DecimalValuer(field reflect.Value) interface{} {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	f, _ := d.Float64()
	return f
}
