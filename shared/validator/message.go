package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "{field} is required",
	"notblank": "{field} must not be blank",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"oneof":    "{field} must be one of {param}",
	"max":      "{field} must be less than or equal to {param}",
	"min":      "{field} must be greater than or equal to {param}",
	"email":    "{field} must be a valid email address",
	"optemail": "{field} must be empty or a valid email address",
}

// Length rules read differently on text.
var stringMessages = map[string]string{
	"max": "{field} must be at most {param} characters",
	"min": "{field} must be at least {param} characters",
}

// message renders the first failed rule that has a template.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		template := messages[valErr.Tag()]
		if valErr.Kind() == reflect.String {
			if text, ok := stringMessages[valErr.Tag()]; ok {
				template = text
			}
		}

		if template == "" {
			continue
		}

		return strings.NewReplacer("{field}", valErr.Field(), "{param}", valErr.Param()).Replace(template)
	}

	return valErrors.Error()
}
