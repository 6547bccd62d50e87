package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// Error describes the first place a value diverged from its schema.
type Error struct {
	Schema   string
	Path     string
	Expected string
	Actual   string
	cause    error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("schema %s: invalid value %s, expected %s", e.Schema, e.Actual, e.Expected)
	}
	return fmt.Sprintf("schema %s: invalid value for key %q: expected %s but got %s", e.Schema, e.Path, e.Expected, e.Actual)
}

func (e *Error) Unwrap() error { return e.cause }

const unknownFieldPrefix = "json: unknown field "

func fromDecodeError(name string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &Error{
			Schema:   name,
			Path:     typeErr.Field,
			Expected: kindOf(typeErr.Type),
			Actual:   typeErr.Value,
			cause:    err,
		}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &Error{
			Schema:   name,
			Expected: "valid JSON",
			Actual:   fmt.Sprintf("syntax error at offset %d", syntaxErr.Offset),
			cause:    err,
		}
	}

	if msg := err.Error(); strings.HasPrefix(msg, unknownFieldPrefix) {
		field := strings.Trim(strings.TrimPrefix(msg, unknownFieldPrefix), `"`)
		return &Error{
			Schema:   name,
			Path:     field,
			Expected: "no additional properties",
			Actual:   "unknown field",
			cause:    err,
		}
	}

	return &Error{Schema: name, Expected: "valid JSON", Actual: err.Error(), cause: err}
}

func fromFieldError(name string, fe validator.FieldError) error {
	e := &Error{Schema: name, Path: fieldPath(fe.Namespace()), cause: fe}

	switch fe.Tag() {
	case "required":
		e.Expected = "required " + kindOf(fe.Type())
		e.Actual = "nothing"
	case TagTimestamp:
		e.Expected = "date"
		e.Actual = fmt.Sprintf("%v", fe.Value())
	case TagIsNull:
		e.Expected = "null"
		e.Actual = fmt.Sprintf("%v", fe.Value())
	default:
		e.Expected = fe.Tag()
		if fe.Param() != "" {
			e.Expected += "=" + fe.Param()
		}
		e.Actual = fmt.Sprintf("%v", fe.Value())
	}
	return e
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func kindOf(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map:
		return "object"
	case reflect.Struct:
		if t.Name() != "" {
			return t.Name()
		}
		return "object"
	default:
		return t.String()
	}
}
