package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// validate is shared by all services; validator caches struct metadata and is safe for
// concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names so messages match the request payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	})
	return v
}

// validateStruct runs the validator and converts the first failure into a
// *ValidationError. It returns nil when the input is valid.
func validateStruct(input interface{}) *ValidationError {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return invalid("", err.Error())
	}
	fe := fieldErrs[0]
	field := fieldPath(fe.Namespace())
	return invalid(field, describe(field, fe))
}

// fieldPath drops the root struct name: "RoutineInput.exercises[0].sets[1].reps"
// becomes "exercises[0].sets[1].reps".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func describe(field string, fe validator.FieldError) string {
	quoted := fmt.Sprintf("%q", field)
	switch fe.Tag() {
	case "required":
		return quoted + " is required"
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s length must be at least %s characters long", quoted, fe.Param())
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("%s must contain at least %s items", quoted, fe.Param())
		default:
			return fmt.Sprintf("%s must be greater than or equal to %s", quoted, fe.Param())
		}
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s length must be less than or equal to %s characters long", quoted, fe.Param())
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("%s must contain less than or equal to %s items", quoted, fe.Param())
		default:
			return fmt.Sprintf("%s must be less than or equal to %s", quoted, fe.Param())
		}
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", quoted, strings.Join(strings.Fields(fe.Param()), ", "))
	case "url":
		return quoted + " must be a valid uri"
	case "objectid":
		return quoted + " must be a valid id"
	default:
		return fmt.Sprintf("%s failed on the %q rule", quoted, fe.Tag())
	}
}
