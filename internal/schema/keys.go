package schema

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
)

var unmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()

// checkKeys walks data against t before it is decoded. encoding/json matches
// keys case-insensitively and keeps the last of duplicated keys; here a key
// must equal a json tag exactly and appear once per object.
//
// Malformed input is left to the decoder: only *Error values are returned.
func checkKeys(name string, data []byte, t reflect.Type) error {
	if t == nil {
		return nil
	}
	w := &keyWalker{dec: json.NewDecoder(bytes.NewReader(data)), schema: name}
	if err := w.value(t, ""); err != nil {
		if se, ok := err.(*Error); ok {
			return se
		}
	}
	return nil
}

type keyWalker struct {
	dec    *json.Decoder
	schema string
}

func (w *keyWalker) value(t reflect.Type, path string) error {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	// Kinds with their own decoding (Timestamp, Null, json.RawMessage) are opaque.
	if reflect.PointerTo(t).Implements(unmarshalerType) {
		return w.skip()
	}

	tok, err := w.dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return nil
	}
	switch {
	case d == '{' && t.Kind() == reflect.Struct:
		return w.object(t, path)
	case d == '[' && (t.Kind() == reflect.Slice || t.Kind() == reflect.Array):
		return w.array(t.Elem(), path)
	default:
		return w.rest()
	}
}

func (w *keyWalker) object(t reflect.Type, path string) error {
	fields := jsonFields(t)
	seen := make(map[string]bool, len(fields))

	for w.dec.More() {
		tok, err := w.dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		full := key
		if path != "" {
			full = path + "." + key
		}

		if seen[key] {
			return &Error{Schema: w.schema, Path: full, Expected: "unique keys", Actual: "duplicate key"}
		}
		seen[key] = true

		ft, ok := fields[key]
		if !ok {
			return &Error{Schema: w.schema, Path: full, Expected: "no additional properties", Actual: "unknown field"}
		}
		if err := w.value(ft, full); err != nil {
			return err
		}
	}
	_, err := w.dec.Token()
	return err
}

func (w *keyWalker) array(elem reflect.Type, path string) error {
	for w.dec.More() {
		if err := w.value(elem, path); err != nil {
			return err
		}
	}
	_, err := w.dec.Token()
	return err
}

// skip consumes one complete value.
func (w *keyWalker) skip() error {
	tok, err := w.dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); ok && (d == '{' || d == '[') {
		return w.rest()
	}
	return nil
}

// rest consumes the remainder of a container whose opening delimiter was read.
func (w *keyWalker) rest() error {
	for depth := 1; depth > 0; {
		tok, err := w.dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

// jsonFields maps the exact json names of t's exported fields to their types.
func jsonFields(t reflect.Type) map[string]reflect.Type {
	fields := make(map[string]reflect.Type, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		fields[name] = f.Type
	}
	return fields
}
