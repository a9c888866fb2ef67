package helper

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func FormatValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var errMsg string
		for i, e := range validationErrors {
			if i > 0 {
				errMsg += "; "
			}
			switch e.Tag() {
			case "required":
				errMsg += e.Field() + " is required"
			case "email":
				errMsg += e.Field() + " must be an email"
			case "min":
				errMsg += e.Field() + " must be at least " + e.Param()
			case "max":
				errMsg += e.Field() + " must be at most " + e.Param()
			case "oneof":
				errMsg += e.Field() + " must be one of: " + e.Param()
			case "gt":
				errMsg += e.Field() + " must be greater than " + e.Param()
			default:
				errMsg += e.Field() + " is not valid"
			}
		}
		return errMsg
	}
	return err.Error()
}
