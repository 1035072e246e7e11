// Package attrfixtures provides the canonical fixture subjects and decoration
// layers shared by tests and the demo: a speaker with power and bass ratings
// and a pizza with cost and description.
package attrfixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/composekit/composable-attributes-go/attributes"
	"github.com/composekit/composable-attributes-go/attributes/decorengine"
)

// Speaker attribute names.
const (
	SpeakerPower       = "power"
	SpeakerBass        = "bass"
	SpeakerDescription = "description"
)

// Pizza attribute names.
const (
	PizzaCost        = "cost"
	PizzaDescription = "description"
)

// GivenSpeakerBase builds the canonical speaker subject: power=110, bass=1.
func GivenSpeakerBase(t testing.TB) decorengine.BaseSubject {
	base, err := decorengine.BuildBaseSubject(attributes.AttributeSet{
		SpeakerPower:       attributes.Number(110),
		SpeakerBass:        attributes.Number(1),
		SpeakerDescription: attributes.Text("studio monitor"),
	})
	assert.NoError(t, err, "error in arranging test data")

	return base
}

// GivenPizzaBase builds the canonical pizza subject: cost=1.99, description "thin crust".
func GivenPizzaBase(t testing.TB) decorengine.BaseSubject {
	base, err := decorengine.BuildBaseSubject(attributes.AttributeSet{
		PizzaCost:        attributes.Number(1.99),
		PizzaDescription: attributes.Text("thin crust"),
	})
	assert.NoError(t, err, "error in arranging test data")

	return base
}

// BassBoost adds a fixed +5 bonus to the speaker's bass rating.
func BassBoost() decorengine.Layer {
	return decorengine.WithModifications(decorengine.M(SpeakerBass, decorengine.AddNumber(5)))
}

// PowerBoost adds a fixed +10 bonus to the speaker's power rating.
func PowerBoost() decorengine.Layer {
	return decorengine.WithModifications(decorengine.M(SpeakerPower, decorengine.AddNumber(10)))
}

// CheeseTopping raises the pizza's cost by 0.10 and appends " with cheese" to its description.
func CheeseTopping() decorengine.Layer {
	return decorengine.WithModifications(
		decorengine.M(PizzaCost, decorengine.AddNumber(0.10)),
		decorengine.M(PizzaDescription, decorengine.AppendText(" with cheese")),
	)
}

// GivenDecoratedChain composes layers around base, failing the test on any build error.
func GivenDecoratedChain(t testing.TB, base attributes.Provider, layers ...decorengine.Layer) attributes.Provider {
	chain, err := decorengine.Decorate(base, layers...)
	assert.NoError(t, err, "error in arranging test data")

	return chain
}
