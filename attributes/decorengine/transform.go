package decorengine

import (
	"strings"

	"github.com/composekit/composable-attributes-go/attributes"
)

// Transform is a pure, fixed function over one attribute value, bound at the
// decorator's definition. A transform declares the value kind it operates on;
// BuildDecorator verifies the kind against the inner provider's schema, so a
// transform's apply function never sees a value of the wrong kind.
//
// Transforms should only be constructed with the supplied factory methods:
//   - AddNumber, MultiplyNumber
//   - AppendText, PrependText, ReplaceText
type Transform struct {
	kind  attributes.ValueKind
	apply func(attributes.Value) attributes.Value
}

// Kind returns the value kind this transform operates on.
func (t Transform) Kind() attributes.ValueKind {
	return t.kind
}

// Apply computes the transformed value. It must only be called with a value
// of the transform's kind.
func (t Transform) Apply(v attributes.Value) attributes.Value {
	return t.apply(v)
}

// AddNumber returns a numeric transform adding a fixed delta.
func AddNumber(delta float64) Transform {
	return Transform{
		kind: attributes.KindNumber,
		apply: func(v attributes.Value) attributes.Value {
			return attributes.Number(v.Number() + delta)
		},
	}
}

// MultiplyNumber returns a numeric transform scaling by a fixed factor.
func MultiplyNumber(factor float64) Transform {
	return Transform{
		kind: attributes.KindNumber,
		apply: func(v attributes.Value) attributes.Value {
			return attributes.Number(v.Number() * factor)
		},
	}
}

// AppendText returns a text transform concatenating a fixed suffix.
func AppendText(suffix string) Transform {
	return Transform{
		kind: attributes.KindText,
		apply: func(v attributes.Value) attributes.Value {
			return attributes.Text(v.Text() + suffix)
		},
	}
}

// PrependText returns a text transform concatenating a fixed prefix.
func PrependText(prefix string) Transform {
	return Transform{
		kind: attributes.KindText,
		apply: func(v attributes.Value) attributes.Value {
			return attributes.Text(prefix + v.Text())
		},
	}
}

// ReplaceText returns a text transform replacing all occurrences of old with new.
func ReplaceText(old, new string) Transform {
	return Transform{
		kind: attributes.KindText,
		apply: func(v attributes.Value) attributes.Value {
			return attributes.Text(strings.ReplaceAll(v.Text(), old, new))
		},
	}
}
