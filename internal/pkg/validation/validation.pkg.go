package validation

import (
	"errors"
	"fmt"
	"go-storefront/internal/common/enum"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"

	"github.com/go-playground/validator/v10"
)

var (
	val     *validator.Validate
	valOnce sync.Once
)

var validationMessages = map[string]string{
	"required":    "is required",
	"required_if": "is required when %s",
	"url":         "must be a valid URL",
	"email":       "must be a valid email address",
	"oneof":       "must be one of the allowed values: %s",
	"min":         "must be greater than or equal to %s",
	"max":         "must be less than or equal to %s",
	"gt":          "must be greater than %s",
	"gte":         "must be greater than or equal to %s",
	"lt":          "must be less than %s",
	"lte":         "must be less than or equal to %s",
	"ltfield":     "must be less than the value of the %s field",
	"enum":        "must be one of the allowed enum values: %s",
}

// Setup builds the shared validator and registers the custom tags on gin's
// binding engine too, so ShouldBind* honours them.
func Setup() error {
	var err error
	valOnce.Do(func() {
		val = newValidator()
		if err = registerValidations(val); err != nil {
			err = fmt.Errorf("failed to register custom validations: %w", err)
			return
		}

		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			if err = registerValidations(v); err != nil {
				err = fmt.Errorf("failed to register custom validations in Gin engine: %w", err)
			}
		} else {
			err = fmt.Errorf("failed to get validation engine")
		}
	})
	return err
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := strings.SplitN(fld.Tag.Get("env"), ",", 2)[0]; name != "" {
			return name
		}
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func registerValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("enum", enum.ValidateEnum); err != nil {
		return fmt.Errorf("failed to register enum validation: %w", err)
	}
	return nil
}

func Validate(payload interface{}) error {
	if err := Setup(); err != nil {
		return err
	}

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
			field := e.Field()
			tag := e.Tag()
			param := e.Param()
			tp := e.Type()

			msg, ok := validationMessages[tag]
			if !ok {
				msg = "failed on the '" + tag + "' rule"
			}
			switch tag {
			case "enum":
				msg = fmt.Sprintf(msg, tp)
			default:
				if strings.Contains(msg, "%s") {
					msg = fmt.Sprintf(msg, param)
				}
			}
			sb.WriteString(fmt.Sprintf("%s %s", field, msg))
			sb.WriteString(", ")
		}
		return strings.TrimSuffix(sb.String(), ", ")
	}
	return err.Error()
}
