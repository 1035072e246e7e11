package attributes

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

var ErrInvalidValueJSON = errors.New("value json is not a number or a string")

// ValueKind discriminates the two value kinds an attribute schema allows.
type ValueKind int

const (
	KindInvalid ValueKind = iota
	KindNumber
	KindText
)

// String returns a human-readable name for the kind.
func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return "invalid"
	}
}

// Value is an immutable attribute value, either numeric or text.
//
// The zero Value has KindInvalid and is never a legal attribute value;
// values should only be constructed with the supplied factory methods:
//   - Number
//   - Text
type Value struct {
	kind ValueKind
	num  float64
	text string
}

// Number is a factory method for a numeric Value.
func Number(v float64) Value {
	return Value{kind: KindNumber, num: v}
}

// Text is a factory method for a text Value.
func Text(v string) Value {
	return Value{kind: KindText, text: v}
}

// Kind returns the kind of the value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Number returns the numeric content, or 0 if the value is not numeric.
func (v Value) Number() float64 {
	return v.num
}

// Text returns the text content, or "" if the value is not text.
func (v Value) Text() string {
	return v.text
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(other Value) bool {
	return v == other
}

// String renders the value content for logging and error messages.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.text
	default:
		return "<invalid>"
	}
}

// MarshalJSON renders numeric values as JSON numbers and text values as JSON strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.num)
	case KindText:
		return json.Marshal(v.text)
	default:
		return nil, ErrInvalidValueSupplied
	}
}

// UnmarshalJSON accepts a JSON number or a JSON string, anything else fails with ErrInvalidValueJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	// encoding/json silently skips null for scalar targets, so reject it up front.
	if string(bytes.TrimSpace(data)) == "null" {
		return ErrInvalidValueJSON
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*v = Number(num)
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*v = Text(text)
		return nil
	}

	return ErrInvalidValueJSON
}
