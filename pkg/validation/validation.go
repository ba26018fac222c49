package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/models"
)

var setupOnce sync.Once

// Setup teaches gin's validator to report json field names and to compare
// decimal.Decimal values numerically. Safe to call more than once.
func Setup() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		Configure(v)
	})
}

func Configure(v *validator.Validate) {
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// FromBindError turns a gin binding error into a ValidationError keyed by
// json field names.
func FromBindError(err error) *custom_error.ValidationError {
	result := custom_error.NewValidationError()

	var fieldErrors validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &fieldErrors):
		for _, fe := range fieldErrors {
			field := fieldPath(fe)
			result.Add(field, message(field, fe))
		}
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		if typeErr.Type == reflect.TypeOf(models.Date{}) {
			result.Add(field, fmt.Sprintf("The %s field must be a valid date.", humanize(field)))
			break
		}
		result.Add(field, fmt.Sprintf("The %s field must be of type %s.", humanize(field), typeErr.Type.String()))
	case errors.As(err, &syntaxErr):
		result.Add("body", "The request body is not valid JSON.")
	default:
		result.Add("body", err.Error())
	}

	return result
}

// fieldPath strips the struct name from the namespace: stockRequest.suppliers[0] -> suppliers.0
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	ns = strings.ReplaceAll(ns, "[", ".")
	return strings.ReplaceAll(ns, "]", "")
}

func message(field string, fe validator.FieldError) string {
	name := humanize(field)
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", name)
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("The %s field must have at least %s items.", name, fe.Param())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s field must be at least %s characters.", name, fe.Param())
		}
		return fmt.Sprintf("The %s field must be at least %s.", name, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s field must not be greater than %s characters.", name, fe.Param())
		}
		return fmt.Sprintf("The %s field must not be greater than %s.", name, fe.Param())
	case "gt":
		return fmt.Sprintf("The %s field must be greater than %s.", name, fe.Param())
	default:
		return fmt.Sprintf("The %s field is invalid.", name)
	}
}

func humanize(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
