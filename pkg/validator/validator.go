// Package validator wraps go-playground/validator with field-keyed,
// human-readable error maps suitable for re-rendering HTML forms.
package validator

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their json name so error keys match form field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
	return v
}

// Messages overrides the default text for a struct's fields. Keys are either
// "field.tag" (most specific) or "field" (any tag on that field).
type Messages map[string]string

var (
	messagesMu sync.RWMutex
	messages   = map[reflect.Type]Messages{}
)

// RegisterMessages attaches custom messages to the struct type of s.
func RegisterMessages(s any, m Messages) {
	messagesMu.Lock()
	defer messagesMu.Unlock()
	messages[structType(s)] = m
}

// RegisterValidation adds a custom tag. It must be called during package
// initialisation, before any Validate call.
func RegisterValidation(tag string, fn func(value string) bool) error {
	return validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String())
	})
}

// Validate validates a struct using go-playground/validator tags.
func Validate(s any) error {
	if err := validate.Struct(s); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return &ValidationError{Errors: validationErrors, typ: structType(s)}
		}
		return err
	}
	return nil
}

// ValidationError wraps validator.ValidationErrors with user-friendly messages.
type ValidationError struct {
	Errors validator.ValidationErrors
	typ    reflect.Type
}

func (e *ValidationError) Error() string {
	fields := e.Fields()
	msgs := make([]string, 0, len(e.Errors))
	seen := make(map[string]bool, len(fields))
	for _, fe := range e.Errors {
		name := fieldName(fe)
		if seen[name] {
			continue
		}
		seen[name] = true
		msgs = append(msgs, fmt.Sprintf("%s: %s", name, fields[name]))
	}
	return strings.Join(msgs, "; ")
}

// Fields returns one message per field. When a field fails more than once
// (slice elements, for example) the first failure wins.
func (e *ValidationError) Fields() map[string]string {
	messagesMu.RLock()
	custom := messages[e.typ]
	messagesMu.RUnlock()

	fields := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		name := fieldName(fe)
		if _, ok := fields[name]; ok {
			continue
		}
		fields[name] = messageFor(custom, name, fe)
	}
	return fields
}

// fieldName strips slice indexes so skills[2] reports as skills.
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

func messageFor(custom Messages, field string, fe validator.FieldError) string {
	if msg, ok := custom[field+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := custom[field]; ok {
		return msg
	}
	return msgForTag(fe)
}

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed on '%s' validation", fe.Tag())
	}
}

func structType(s any) reflect.Type {
	t := reflect.TypeOf(s)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
