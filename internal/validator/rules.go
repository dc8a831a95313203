package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"craftfolio/internal/models"
)

// registerCustomRules installs the validation tags backed by model
// enumerations.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'portfolio-category': the fixed selection list for portfolio items
	mustRegister("portfolio-category", validatePortfolioCategory)
}

func validatePortfolioCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty values are 'required's business
	}
	return models.ValidCategory(value)
}
