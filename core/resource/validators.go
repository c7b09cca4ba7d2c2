package resource

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/accredipro/institute/core"
)

var (
	taxRateTag  = "taxrate"
	taxRateText = "{0} must be at least 0 and below 100"
)

// InitValidators registers the widget validation rules. core.InitValidators must run first.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(taxRateTag, taxRateValidation)
	core.RegisterCustomTranslation(validate, translator, taxRateTag, taxRateText)
}

func taxRateValidation(fl validator.FieldLevel) bool {
	rate := fl.Field().Float()
	return rate >= 0 && rate < 100
}
