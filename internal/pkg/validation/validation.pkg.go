package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"

	"github.com/go-playground/validator/v10"
)

var val *validator.Validate

var validationMessages = map[string]string{
	"required": "is required",
	"url":      "must be a valid URL",
	"number":   "must be a number",
	"oneof":    "must be one of the allowed values: %s",
	"email":    "must be a valid email address",
	"min":      "must be greater than or equal to %s",
	"max":      "must be less than or equal to %s",
	"len":      "must have the exact length of %s",
	"uuid":     "must be a valid UUID",
	"amount":   "must be a positive amount with at most two decimal places",
}

// amountPattern accepts fiat amounts as decimal strings: "25", "25.0", "25.00".
var amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

func Setup() error {
	val = validator.New(validator.WithRequiredStructEnabled())

	if err := registerValidations(val); err != nil {
		return fmt.Errorf("failed to register custom validations: %w", err)
	}

	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := registerValidations(v); err != nil {
			return fmt.Errorf("failed to register custom validations in Gin engine: %w", err)
		}
	} else {
		return fmt.Errorf("failed to get validation engine")
	}

	return nil
}

func registerValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("amount", validateAmount); err != nil {
		return fmt.Errorf("failed to register amount validation: %w", err)
	}
	return nil
}

func validateAmount(fl validator.FieldLevel) bool {
	return IsAmountValid(fl.Field().String())
}

// IsAmountValid reports whether the string is a well-formed, strictly
// positive fiat amount. This is the single validity check gating order
// creation.
func IsAmountValid(amount string) bool {
	if !amountPattern.MatchString(amount) {
		return false
	}

	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return false
	}

	return value > 0
}

func Validate(payload interface{}) error {
	if err := val.Struct(payload); err != nil {
		var errorMessages []string

		validationErrors := parsingErrorValidate(err)
		if validationErrors != "" {
			errorMessages = append(errorMessages, validationErrors)
		}
		message := "Validation failed: " + strings.Join(errorMessages, ", ")
		return errors.New(message)
	}

	return nil
}

func parsingErrorValidate(err error) string {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		var sb strings.Builder
		for _, e := range errs {
			name := e.Namespace()
			field := e.Field()
			tag := e.Tag()
			param := e.Param()

			msg := validationMessages[tag]
			if strings.Contains(msg, "%s") {
				msg = fmt.Sprintf(msg, param)
			}
			sb.WriteString(fmt.Sprintf("%s: %s %s", name, field, msg))
			sb.WriteString(", ")
		}
		return strings.TrimSuffix(sb.String(), ", ")
	}
	return err.Error()
}
