package validator

import (
	"doctor-directory/internal/domain/taxonomy"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Taxonomy membership tags used by the doctor DTOs.
	v.RegisterValidation("specialized_area", func(fl validator.FieldLevel) bool {
		return taxonomy.IsSpecializedArea(fl.Field().String())
	})
	v.RegisterValidation("language", func(fl validator.FieldLevel) bool {
		return taxonomy.IsLanguage(fl.Field().String())
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "url":
				errors[field] = field + " must be a valid URL"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must have at most " + e.Param() + " items"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "specialized_area":
				errors[field] = field + " must be a known care category or care area code"
			case "language":
				errors[field] = field + " must be a known language code"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
