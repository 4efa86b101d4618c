package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"staywise/shared/failure"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// maxBodyBytes bounds a decoded request body.
const maxBodyBytes = 1 << 20

var validate *val.Validate

func notBlank(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return !field.Field().IsZero()
	}

	return strings.TrimSpace(str) != ""
}

// optionalEmail accepts an empty string or an email address.
func optionalEmail(field val.FieldLevel) bool {
	str := field.Field().String()

	return str == "" || validate.Var(str, "email") == nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// Messages name fields the way clients send them.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	for tag, fn := range map[string]val.Func{
		"notblank": notBlank,
		"optemail": optionalEmail,
	} {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate decodes a JSON body into data and checks its `validate` tags.
// Every problem is reported as a 400 failure.
func Validate[T any](r io.Reader, data *T) error {
	err := json.NewDecoder(io.LimitReader(r, maxBodyBytes)).Decode(data)
	if errors.Is(err, io.EOF) {
		return failure.BadRequestFromString("request body is required") //nolint:wrapcheck
	}

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
