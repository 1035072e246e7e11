package decorengine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/composekit/composable-attributes-go/attributes"
	"github.com/composekit/composable-attributes-go/attributes/decorengine"
	"github.com/composekit/composable-attributes-go/testutil/attrfixtures"
)

const speakerChainJSON = `{
	"name": "stage_speaker",
	"base": {"power": 110, "bass": 1, "description": "studio monitor"},
	"decorators": [
		{"attribute": "bass", "op": "add", "amount": 5},
		{"attribute": "power", "op": "add", "amount": 10}
	]
}`

func Test_ChainDefinitionFromJSON_ValidDefinition(t *testing.T) {
	def, err := decorengine.ChainDefinitionFromJSON([]byte(speakerChainJSON))
	require.NoError(t, err)

	assert.Equal(t, "stage_speaker", def.Name)
	assert.Len(t, def.Base, 3)
	assert.Len(t, def.Decorators, 2)
	assert.True(t, def.Base["power"].Equal(attributes.Number(110)))
	assert.True(t, def.Base["description"].Equal(attributes.Text("studio monitor")))
}

func Test_ChainDefinitionFromJSON_ErrorCases(t *testing.T) {
	tests := []struct {
		name        string
		json        string
		expectedErr error
	}{
		{
			name:        "malformed json",
			json:        `{"name": "x", "base": }`,
			expectedErr: decorengine.ErrInvalidChainDefinitionJSON,
		},
		{
			name:        "empty json",
			json:        ``,
			expectedErr: decorengine.ErrInvalidChainDefinitionJSON,
		},
		{
			name:        "missing name",
			json:        `{"base": {"power": 110}}`,
			expectedErr: decorengine.ErrEmptyChainDefinitionName,
		},
		{
			name:        "missing base",
			json:        `{"name": "x"}`,
			expectedErr: decorengine.ErrEmptyBaseValues,
		},
		{
			name:        "unknown op",
			json:        `{"name": "x", "base": {"power": 110}, "decorators": [{"attribute": "power", "op": "divide", "amount": 2}]}`,
			expectedErr: decorengine.ErrUnknownTransformOp,
		},
		{
			name:        "missing decorator attribute",
			json:        `{"name": "x", "base": {"power": 110}, "decorators": [{"op": "add", "amount": 2}]}`,
			expectedErr: attributes.ErrEmptyAttributeNameSupplied,
		},
		{
			name:        "base value is not number or text",
			json:        `{"name": "x", "base": {"power": true}}`,
			expectedErr: decorengine.ErrInvalidChainDefinitionJSON,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decorengine.ChainDefinitionFromJSON([]byte(tc.json))
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func Test_BuildChainFromDefinition_MatchesImperativeConstruction(t *testing.T) {
	def, err := decorengine.ChainDefinitionFromJSON([]byte(speakerChainJSON))
	require.NoError(t, err)

	declarative, err := decorengine.BuildChainFromDefinition(def)
	require.NoError(t, err)

	imperative := attrfixtures.GivenDecoratedChain(t, attrfixtures.GivenSpeakerBase(t),
		attrfixtures.BassBoost(), attrfixtures.PowerBoost())

	declarativeSet, err := attributes.Snapshot(declarative)
	require.NoError(t, err)
	imperativeSet, err := attributes.Snapshot(imperative)
	require.NoError(t, err)

	assert.Equal(t, imperativeSet, declarativeSet)
}

func Test_BuildChainFromDefinition_AllOps(t *testing.T) {
	def := decorengine.ChainDefinition{
		Name: "pizza_special",
		Base: attributes.AttributeSet{
			"cost":        attributes.Number(1.99),
			"description": attributes.Text("thin crust"),
		},
		Decorators: []decorengine.DecoratorDefinition{
			{Attribute: "cost", Op: decorengine.OpAdd, Amount: 0.10},
			{Attribute: "cost", Op: decorengine.OpMultiply, Amount: 2},
			{Attribute: "description", Op: decorengine.OpAppend, Text: " with cheese"},
			{Attribute: "description", Op: decorengine.OpPrepend, Text: "large "},
			{Attribute: "description", Op: decorengine.OpReplace, Old: "thin", New: "thick"},
		},
	}

	chain, err := decorengine.BuildChainFromDefinition(def)
	require.NoError(t, err)

	cost, err := chain.GetAttribute("cost")
	require.NoError(t, err)
	assert.InDelta(t, 4.18, cost.Number(), 0.0001)

	description, err := chain.GetAttribute("description")
	require.NoError(t, err)
	assert.Equal(t, "large thick crust with cheese", description.Text())
}

func Test_BuildChainFromDefinition_KindMismatchFails(t *testing.T) {
	def := decorengine.ChainDefinition{
		Name: "broken",
		Base: attributes.AttributeSet{"description": attributes.Text("thin crust")},
		Decorators: []decorengine.DecoratorDefinition{
			{Attribute: "description", Op: decorengine.OpAdd, Amount: 1},
		},
	}

	_, err := decorengine.BuildChainFromDefinition(def)
	assert.ErrorIs(t, err, decorengine.ErrValueKindMismatch)
}
