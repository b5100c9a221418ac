package models

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation error codes surfaced as field-level messages on forms.
const (
	CodeMissingName             = "MissingName"
	CodeMissingPrice            = "MissingPrice"
	CodePriceNotANumber         = "PriceNotANumber"
	CodePriceNotGreaterThanZero = "PriceNotGreaterThanZero"
	CodeMissingStock            = "MissingStock"
	CodeStockNotAnInteger       = "StockNotAnInteger"
	CodeStockNotGreaterThanZero = "StockNotGreaterThanZero"

	CodeMissingAddress = "ErrorMissingAddress"
	CodeMissingCity    = "ErrorMissingCity"
	CodeMissingZipCode = "ErrorMissingZipCode"
	CodeMissingCountry = "ErrorMissingCountry"
	CodeEmptyCart      = "ErrorEmptyCart"
)

// FieldError reports a single failed validation rule for a form field.
type FieldError struct {
	Field string `json:"field"`
	Code  string `json:"code"`
}

// ProductViewModel is the form-facing projection of a Product. Price and
// Stock are strings so locale-specific input ("1,20") can be validated and
// parsed explicitly instead of failing at bind time. ID is never bound from
// client input; handlers set it from the route.
type ProductViewModel struct {
	ID          uint   `json:"-"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Details     string `json:"details"`
	Price       string `json:"price" validate:"required,localedecimal,decimalgtzero"`
	Stock       string `json:"stock" validate:"required,intstring,intgtzero"`
}

// OrderViewModel carries the checkout form fields together with the
// cart lines the customer is ordering.
type OrderViewModel struct {
	Name    string     `json:"name" validate:"required"`
	Address string     `json:"address" validate:"required"`
	City    string     `json:"city" validate:"required"`
	Zip     string     `json:"zip" validate:"required"`
	Country string     `json:"country" validate:"required"`
	Lines   []CartLine `json:"lines"`
}

// ParseDecimal parses a price string accepting either a comma or a dot
// as decimal separator, so "1,20" and "1.20" both yield 1.20.
func ParseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.Replace(strings.TrimSpace(s), ",", ".", 1), 64)
}

// ParseStock parses a stock string as a base-10 integer.
func ParseStock(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

var validate = newValidator()

// newValidator registers the string-field rules used by the view models.
// Tag evaluation stops at the first failed rule per field, so each field
// yields exactly one error code, the most specific one.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("localedecimal", func(fl validator.FieldLevel) bool {
		_, err := ParseDecimal(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("decimalgtzero", func(fl validator.FieldLevel) bool {
		d, err := ParseDecimal(fl.Field().String())
		return err == nil && d > 0
	})
	_ = v.RegisterValidation("intstring", func(fl validator.FieldLevel) bool {
		_, err := ParseStock(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("intgtzero", func(fl validator.FieldLevel) bool {
		n, err := ParseStock(fl.Field().String())
		return err == nil && n > 0
	})
	return v
}

// productCodes maps field name and failed rule to the error code shown
// on the product form.
var productCodes = map[string]map[string]string{
	"Name": {"required": CodeMissingName},
	"Price": {
		"required":      CodeMissingPrice,
		"localedecimal": CodePriceNotANumber,
		"decimalgtzero": CodePriceNotGreaterThanZero,
	},
	"Stock": {
		"required":  CodeMissingStock,
		"intstring": CodeStockNotAnInteger,
		"intgtzero": CodeStockNotGreaterThanZero,
	},
}

var orderCodes = map[string]map[string]string{
	"Name":    {"required": "ErrorMissingName"},
	"Address": {"required": CodeMissingAddress},
	"City":    {"required": CodeMissingCity},
	"Zip":     {"required": CodeMissingZipCode},
	"Country": {"required": CodeMissingCountry},
}

// Validate checks the product form fields and returns one error code per
// failing field. An empty slice means the view model is safe to save.
func (vm *ProductViewModel) Validate() []FieldError {
	return collectErrors(validate.Struct(vm), productCodes)
}

// Validate checks the checkout form fields. The cart itself is checked
// separately so an empty cart is reported alongside address errors.
func (vm *OrderViewModel) Validate() []FieldError {
	errs := collectErrors(validate.Struct(vm), orderCodes)
	if len(vm.Lines) == 0 {
		errs = append(errs, FieldError{Field: "Lines", Code: CodeEmptyCart})
	}
	return errs
}

func collectErrors(err error, codes map[string]map[string]string) []FieldError {
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Code: err.Error()}}
	}
	var errs []FieldError
	for _, e := range validationErrors {
		code := codes[e.Field()][e.Tag()]
		if code == "" {
			code = e.Tag()
		}
		errs = append(errs, FieldError{Field: e.Field(), Code: code})
	}
	return errs
}

// ToViewModel projects a stored product into its form representation.
func (p *Product) ToViewModel() ProductViewModel {
	return ProductViewModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Details:     p.Details,
		Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		Stock:       strconv.Itoa(p.Quantity),
	}
}
