// Package attributes provides core abstractions and types for composable
// attribute decoration.
//
// This package defines the fundamental interfaces and types used across
// the decoration engine, including the read-only Provider contract, the
// Value sum type, attribute snapshots, and common error definitions.
//
// A Provider exposes a fixed set of named attributes, each holding either
// a numeric or a text value. Providers are immutable after construction:
// querying the same provider twice always yields identical results, which
// also makes every provider safe for concurrent use without synchronization.
//
// Key types:
//   - Provider: read-only contract for querying named attribute values
//   - Value: immutable numeric-or-text attribute value
//   - AttributeSet: snapshot of a provider's complete schema
//
// Common usage pattern:
//
//	base, err := decorengine.BuildBaseSubject(map[attributes.AttributeNameString]attributes.Value{
//		"power": attributes.Number(110),
//		"bass":  attributes.Number(1),
//	})
//	if err != nil {
//		// handle error
//	}
//
//	chain, err := decorengine.Decorate(base,
//		decorengine.WithModifications(decorengine.M("bass", decorengine.AddNumber(5))),
//		decorengine.WithModifications(decorengine.M("power", decorengine.AddNumber(10))),
//	)
//	if err != nil {
//		// handle error
//	}
//
//	bass, err := chain.GetAttribute("bass") // Number(6)
package attributes
