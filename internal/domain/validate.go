package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validate runs the struct's `binding` tags through gin's validator and reports the first
// failing field by its JSON name.
func Validate(obj any) error {
	err := binding.Validator.ValidateStruct(obj)
	if err == nil {
		return nil
	}
	return fieldError(obj, err)
}

// BindingError turns an error from gin's JSON binding of obj into a ValidationError:
// validator failures name the offending field, decoding failures name the body.
func BindingError(obj any, err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return fieldError(obj, err)
	}
	return ValidationError{Field: "body", Msg: "invalid request body: " + err.Error(), Err: err}
}

func fieldError(obj any, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return ValidationError{Msg: err.Error(), Err: err}
	}
	fe := fieldErrs[0]
	return ValidationError{
		Field: jsonName(obj, fe.StructField()),
		Msg:   describe(fe),
		Err:   err,
	}
}

func jsonName(obj any, field string) string {
	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return field
	}
	sf, ok := t.FieldByName(field)
	if !ok {
		return field
	}
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field
	}
	return name
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "datetime":
		return "must be a YYYY-MM-DD date"
	default:
		return "is invalid"
	}
}
