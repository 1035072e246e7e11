package decorengine

import (
	"github.com/composekit/composable-attributes-go/attributes"
)

// Layer wraps a provider in one more decoration layer.
type Layer func(attributes.Provider) (attributes.Provider, error)

// Decorate applies the given layers to the base subject in slice order, so
// the last layer ends up outermost, and returns the final provider. A chain
// is terminal once built; rebuilding means composing a new chain from the
// base subject.
func Decorate(base attributes.Provider, layers ...Layer) (attributes.Provider, error) {
	if base == nil {
		return nil, ErrNilInnerProvider
	}

	decorated := base
	for _, layer := range layers {
		var err error

		decorated, err = layer(decorated)
		if err != nil {
			return nil, err
		}
	}

	return decorated, nil
}

// WithModifications returns a Layer that wraps the provider in a Decorator
// applying the given modifications.
func WithModifications(mod Modification, mods ...Modification) Layer {
	return func(inner attributes.Provider) (attributes.Provider, error) {
		return BuildDecorator(inner, mod, mods...)
	}
}
