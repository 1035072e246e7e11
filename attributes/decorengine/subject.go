package decorengine

import (
	"slices"
	"sort"

	"github.com/composekit/composable-attributes-go/attributes"
)

// BaseSubject is the terminal node of every composition chain.
//
// It holds a complete, fixed set of attribute values supplied at creation
// time; values never change after construction. While it is a plain value
// type, it should only be constructed with BuildBaseSubject.
type BaseSubject struct {
	values attributes.AttributeSet
	names  []attributes.AttributeNameString
}

// BuildBaseSubject is a factory method for BaseSubject.
//
// It copies the given values, so the caller keeps no alias into the subject.
// Returns an error if the schema is empty, an attribute name is empty, or a
// value was not built with attributes.Number or attributes.Text.
func BuildBaseSubject(values attributes.AttributeSet) (BaseSubject, error) {
	if len(values) == 0 {
		return BaseSubject{}, attributes.ErrEmptySchemaSupplied
	}

	copied := make(attributes.AttributeSet, len(values))
	names := make([]attributes.AttributeNameString, 0, len(values))

	for name, value := range values {
		if name == "" {
			return BaseSubject{}, attributes.ErrEmptyAttributeNameSupplied
		}

		if value.Kind() == attributes.KindInvalid {
			return BaseSubject{}, attributes.ErrInvalidValueSupplied
		}

		copied[name] = value
		names = append(names, name)
	}

	sort.Strings(names)

	return BaseSubject{values: copied, names: names}, nil
}

// GetAttribute returns the stored value directly.
func (s BaseSubject) GetAttribute(name attributes.AttributeNameString) (attributes.Value, error) {
	value, ok := s.values[name]
	if !ok {
		return attributes.Value{}, attributes.UnknownAttribute(name)
	}

	return value, nil
}

// AttributeNames returns the fixed schema in sorted order.
func (s BaseSubject) AttributeNames() []attributes.AttributeNameString {
	return slices.Clone(s.names)
}

// Ensure BaseSubject implements attributes.Provider.
var _ attributes.Provider = BaseSubject{}
