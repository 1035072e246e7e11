package attributes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/composekit/composable-attributes-go/attributes"
)

// stubProvider is a minimal Provider used to test the contract helpers
// independently of the decoration engine.
type stubProvider struct {
	values attributes.AttributeSet
	names  []attributes.AttributeNameString
}

func (s stubProvider) GetAttribute(name attributes.AttributeNameString) (attributes.Value, error) {
	value, ok := s.values[name]
	if !ok {
		return attributes.Value{}, attributes.UnknownAttribute(name)
	}

	return value, nil
}

func (s stubProvider) AttributeNames() []attributes.AttributeNameString {
	return s.names
}

func Test_Snapshot_CollectsCompleteSchema(t *testing.T) {
	provider := stubProvider{
		values: attributes.AttributeSet{
			"power": attributes.Number(110),
			"bass":  attributes.Number(1),
		},
		names: []attributes.AttributeNameString{"bass", "power"},
	}

	set, err := attributes.Snapshot(provider)
	require.NoError(t, err)

	assert.Len(t, set, 2)
	assert.True(t, set["power"].Equal(attributes.Number(110)))
	assert.True(t, set["bass"].Equal(attributes.Number(1)))
}

func Test_Snapshot_PropagatesUnknownAttribute(t *testing.T) {
	// A provider whose name list disagrees with its values is broken;
	// Snapshot must surface the lookup error instead of hiding it.
	provider := stubProvider{
		values: attributes.AttributeSet{"power": attributes.Number(110)},
		names:  []attributes.AttributeNameString{"power", "phantom"},
	}

	_, err := attributes.Snapshot(provider)
	assert.ErrorIs(t, err, attributes.ErrUnknownAttribute)
}

func Test_UnknownAttribute_ErrorShape(t *testing.T) {
	err := attributes.UnknownAttribute("bass")

	assert.ErrorIs(t, err, attributes.ErrUnknownAttribute)
	assert.Contains(t, err.Error(), `"bass"`)
}
