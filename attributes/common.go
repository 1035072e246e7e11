package attributes

import (
	"errors"
	"fmt"
)

// AttributeNameString is a type alias for string, representing the name of an attribute in a subject's fixed schema.
type AttributeNameString = string

var ErrUnknownAttribute = errors.New("unknown attribute")
var ErrEmptySchemaSupplied = errors.New("empty attribute schema supplied")
var ErrEmptyAttributeNameSupplied = errors.New("empty attribute name supplied")
var ErrInvalidValueSupplied = errors.New("invalid attribute value supplied, values must be built with Number or Text")

// UnknownAttribute wraps ErrUnknownAttribute with the requested attribute name.
//
// Every Provider implementation must surface this exact error shape for a
// name outside its fixed schema, so that errors.Is(err, ErrUnknownAttribute)
// holds for callers at any nesting depth.
func UnknownAttribute(name AttributeNameString) error {
	return fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
}
