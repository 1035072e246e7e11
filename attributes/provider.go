package attributes

// Provider is the read-only contract every subject in a composition chain satisfies.
//
// Implementations hold a fixed schema: the set of attribute names is decided
// at construction time and never changes. GetAttribute fails with an error
// matching ErrUnknownAttribute for any name outside that schema. Providers
// perform no side effects when queried.
type Provider interface {
	// GetAttribute returns the value of the named attribute.
	GetAttribute(name AttributeNameString) (Value, error)

	// AttributeNames returns the fixed schema in stable sorted order.
	AttributeNames() []AttributeNameString
}

// AttributeSet is a point-in-time snapshot of a provider's complete schema.
//
// Since providers are immutable, a snapshot taken once is valid for the
// provider's whole lifetime.
type AttributeSet = map[AttributeNameString]Value

// Snapshot queries every attribute of the provider and returns the complete set.
func Snapshot(p Provider) (AttributeSet, error) {
	names := p.AttributeNames()
	set := make(AttributeSet, len(names))

	for _, name := range names {
		value, err := p.GetAttribute(name)
		if err != nil {
			return nil, err
		}

		set[name] = value
	}

	return set, nil
}
