// Package validation checks request bodies against the `validate` tags on the
// model input types, so a form's shape and its rules live in one definition.
//
// Field names in errors use the struct's json tag, which is what clients send.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError describes one rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// Error is returned by Struct when one or more fields fail.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// Validator returns the shared validator instance.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonName)
		// Registration only fails on an empty tag or nil func.
		_ = validate.RegisterValidation("datelike", isDateLike)
		_ = validate.RegisterValidation("maxbytes", isWithinBytes)
	})
	return validate
}

// Struct validates s. It returns nil or an *Error; any other failure from the
// underlying validator (e.g. a non-struct argument) is returned as-is.
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "maxbytes":
		return fmt.Sprintf("%s must be at most %s bytes", fe.Field(), fe.Param())
	case "datelike":
		return fmt.Sprintf("%s must be a date (YYYY-MM-DD)", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

var dateLayouts = []string{time.DateOnly, time.RFC3339}

// isDateLike accepts calendar dates as sent by the booking dialog
// (2026-11-02) and full RFC 3339 timestamps.
func isDateLike(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// isWithinBytes checks the UTF-8 length of a string field, unlike max which
// counts characters.
func isWithinBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}
