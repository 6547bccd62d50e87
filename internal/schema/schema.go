// Package schema decodes untyped JSON into tagged Go structs and back,
// failing loudly on any shape mismatch.
//
// The struct tags are the schema: `json` names the field, `validate` declares
// presence and value rules (go-playground/validator), and `required` /
// `additionalProperties` drive the exported JSON Schema (swaggest/jsonschema-go).
// Decode and Encode run the same rules, so both directions stay symmetric.
package schema

import (
	"bytes"
	"encoding/json"
	"io"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/swaggest/jsonschema-go"
)

// Custom validation tags.
const (
	TagTimestamp = "timestamp"
	TagIsNull    = "isnull"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		// The kinds are validated through what they decoded to: a valid
		// Timestamp becomes a time.Time, anything else its raw JSON text.
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			ts := field.Interface().(Timestamp)
			if ts.Valid() {
				return ts.Time()
			}
			return ts.Raw()
		}, Timestamp{})
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			n := field.Interface().(Null)
			if !n.Present() {
				return nil
			}
			return n.Raw()
		}, Null{})

		// Registration only fails on an empty tag or nil func.
		_ = v.RegisterValidation(TagTimestamp, func(fl validator.FieldLevel) bool {
			_, ok := fl.Field().Interface().(time.Time)
			return ok
		})
		_ = v.RegisterValidation(TagIsNull, func(fl validator.FieldLevel) bool {
			raw, ok := fl.Field().Interface().(string)
			return ok && raw == "null"
		})
		validate = v
	})
	return validate
}

// Decode converts one JSON document into T. Unknown or duplicated keys (matched
// case-sensitively), missing fields, primitive kind mismatches and trailing
// data are all errors.
func Decode[T any](data []byte) (T, error) {
	var out T
	name := typeName(reflect.TypeOf(out))

	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) && isStruct(reflect.TypeOf(out)) {
		return out, &Error{Schema: name, Expected: "object", Actual: "null"}
	}

	if err := checkKeys(name, trimmed, reflect.TypeOf(out)); err != nil {
		return out, err
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, fromDecodeError(name, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return out, &Error{Schema: name, Expected: "end of document", Actual: "trailing data"}
	}

	if err := check(name, out); err != nil {
		return out, err
	}
	return out, nil
}

// Encode validates v against its tags and marshals it.
func Encode(v any) ([]byte, error) {
	name := typeName(reflect.TypeOf(v))
	if err := check(name, v); err != nil {
		return nil, err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s", name)
	}
	return data, nil
}

// Describe returns the JSON Schema document for the shape of v.
func Describe(v any) (string, error) {
	r := jsonschema.Reflector{}
	s, err := r.Reflect(v, jsonschema.InlineRefs)
	if err != nil {
		return "", errors.Wrapf(err, "reflect schema for %s", typeName(reflect.TypeOf(v)))
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "marshal schema")
	}
	return string(data), nil
}

func check(name string, v any) error {
	if !isStruct(reflect.TypeOf(v)) {
		return nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return &Error{Schema: name, Expected: "object", Actual: "null"}
	}
	err := instance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fromFieldError(name, verrs[0])
	}
	return errors.Wrapf(err, "validate %s", name)
}

func isStruct(t reflect.Type) bool {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t != nil && t.Kind() == reflect.Struct
}

func typeName(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return "nil"
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
