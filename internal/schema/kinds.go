package schema

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/swaggest/jsonschema-go"
)

// Timestamp accepts an RFC 3339 JSON string (fractional seconds optional) or a
// JSON number of Unix milliseconds. A decoded value encodes back to the text it
// was read from; one built with NewTimestamp encodes as RFC 3339.
//
// Decoding never fails on its own: an unparsable value is kept and rejected by
// the "timestamp" validation tag, so the error carries the field path.
type Timestamp struct {
	t     time.Time
	raw   string
	valid bool
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t, valid: true}
}

func (ts Timestamp) Time() time.Time { return ts.t }

// Valid reports whether the decoded value was a calendar timestamp.
func (ts Timestamp) Valid() bool { return ts.valid }

// Raw is the JSON text that was decoded.
func (ts Timestamp) Raw() string { return ts.raw }

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.valid && ts.raw != "" {
		return []byte(ts.raw), nil
	}
	return json.Marshal(ts.t.Format(time.RFC3339Nano))
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*ts = Timestamp{raw: string(data)}
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			ts.t, ts.valid = t, true
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n, err := json.Number(data).Int64()
		if err == nil {
			ts.t, ts.valid = time.UnixMilli(n).UTC(), true
		}
	}
	return nil
}

func (Timestamp) JSONSchema() (jsonschema.Schema, error) {
	s := jsonschema.Schema{}
	s.AddType(jsonschema.String)
	s.WithFormat("date-time")
	return s, nil
}

// Null is a field that must be present and JSON null. The zero value means the
// field was absent; a present non-null value is rejected by the "isnull" tag.
type Null struct {
	present bool
	null    bool
	raw     string
}

// NullValue is a present null, used when encoding.
func NullValue() Null {
	return Null{present: true, null: true, raw: "null"}
}

func (n Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

func (n *Null) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*n = Null{present: true, raw: string(data), null: bytes.Equal(data, []byte("null"))}
	return nil
}

func (n Null) Present() bool { return n.present }

func (n Null) IsNull() bool { return n.null }

func (n Null) Raw() string { return n.raw }

func (Null) JSONSchema() (jsonschema.Schema, error) {
	s := jsonschema.Schema{}
	s.AddType(jsonschema.Null)
	return s, nil
}
