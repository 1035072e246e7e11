package decorengine

import (
	"fmt"

	"github.com/composekit/composable-attributes-go/attributes"
)

/***** Modification *****/

// Modification pairs an attribute name with the transform a decorator applies to it.
type Modification struct {
	name      attributes.AttributeNameString
	transform Transform
}

// M builds a Modification.
func M(name attributes.AttributeNameString, transform Transform) Modification {
	return Modification{name: name, transform: transform}
}

// Name returns the attribute name this modification targets.
func (m Modification) Name() attributes.AttributeNameString {
	return m.name
}

// Transform returns the transform this modification applies.
func (m Modification) Transform() Transform {
	return m.transform
}

/***** Decorator *****/

// Decorator wraps exactly one inner provider and applies pure transforms to a
// subset of its attributes, passing every other attribute through unchanged.
//
// The inner reference is unexported and never handed back out; the decorator
// exclusively owns it for its own lifetime. Decorators assume the inner
// provider is immutable, like every provider in a chain.
//
// Decorators should only be constructed with BuildDecorator.
type Decorator struct {
	inner attributes.Provider
	mods  map[attributes.AttributeNameString]Transform
}

// BuildDecorator is a factory method for Decorator, the only sanctioned construction path.
//
// It verifies every modification against the inner provider's schema:
// the modified attribute must exist (otherwise the inner provider's
// ErrUnknownAttribute surfaces) and the transform's kind must match the
// attribute's value kind. Duplicate modifications for the same attribute
// within one decorator are rejected.
func BuildDecorator(
	inner attributes.Provider,
	mod Modification,
	mods ...Modification,
) (Decorator, error) {

	if inner == nil {
		return Decorator{}, ErrNilInnerProvider
	}

	all := append([]Modification{mod}, mods...)
	transforms := make(map[attributes.AttributeNameString]Transform, len(all))

	for _, m := range all {
		if m.name == "" {
			return Decorator{}, attributes.ErrEmptyAttributeNameSupplied
		}

		if _, duplicate := transforms[m.name]; duplicate {
			return Decorator{}, fmt.Errorf("%w: %q", ErrDuplicateModification, m.name)
		}

		current, err := inner.GetAttribute(m.name)
		if err != nil {
			return Decorator{}, err
		}

		if current.Kind() != m.transform.kind {
			return Decorator{}, fmt.Errorf(
				"%w: attribute %q is %s, transform expects %s",
				ErrValueKindMismatch, m.name, current.Kind(), m.transform.kind)
		}

		transforms[m.name] = m.transform
	}

	return Decorator{inner: inner, mods: transforms}, nil
}

// GetAttribute applies the bound transform for a modified attribute and
// delegates every other name to the inner provider unchanged. An unknown
// name surfaces the innermost subject's error untouched; decorators never
// swallow or remap it.
func (d Decorator) GetAttribute(name attributes.AttributeNameString) (attributes.Value, error) {
	transform, modified := d.mods[name]
	if !modified {
		return passThrough(d.inner, name)
	}

	value, err := d.inner.GetAttribute(name)
	if err != nil {
		return attributes.Value{}, err
	}

	return transform.Apply(value), nil
}

// AttributeNames returns the inner provider's schema; decoration never adds
// or removes attributes.
func (d Decorator) AttributeNames() []attributes.AttributeNameString {
	return d.inner.AttributeNames()
}

// passThrough delegates an unmodified attribute to the inner provider.
// Every decorator variant shares this single delegation path.
func passThrough(inner attributes.Provider, name attributes.AttributeNameString) (attributes.Value, error) {
	return inner.GetAttribute(name)
}

// Ensure Decorator implements attributes.Provider.
var _ attributes.Provider = Decorator{}
