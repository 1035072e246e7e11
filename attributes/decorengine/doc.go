// Package decorengine implements the value-decoration engine on top of the
// attributes.Provider contract.
//
// The engine composes any number of attribute-modifying decorators around a
// base subject with fixed starting values. A chain is just the runtime
// nesting of decorators, built once and never re-parented; callers only ever
// see the opaque attributes.Provider at the outside of the chain.
//
// Key types:
//   - BaseSubject: terminal provider holding fixed constructor-supplied values
//   - Decorator: wraps exactly one inner provider and transforms a subset of its attributes
//   - Layer / Decorate: fold-style chain construction
//   - ChainDefinition: declarative JSON form of a chain
//   - InstrumentedProvider: observability wrapper around any provider
//
// Decorators over disjoint attribute sets commute: wrapping in either order
// yields the same final attribute set, because each decorator passes every
// attribute it does not modify through unchanged. Decorators over the same
// attribute do NOT commute, their transforms apply innermost-first.
package decorengine
