package decorengine

import (
	"encoding/json"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/composekit/composable-attributes-go/attributes"
)

var (
	// ErrInvalidChainDefinitionJSON is returned when chain definition JSON is malformed or invalid.
	ErrInvalidChainDefinitionJSON = errors.New("chain definition json is not valid")

	// ErrEmptyChainDefinitionName is returned when a definition carries no name.
	ErrEmptyChainDefinitionName = errors.New("chain definition name must not be empty")

	// ErrEmptyBaseValues is returned when a definition carries no base attribute values.
	ErrEmptyBaseValues = errors.New("chain definition base values must not be empty")

	// ErrUnknownTransformOp is returned when a decorator definition names an unsupported op.
	ErrUnknownTransformOp = errors.New("unknown transform op")
)

// Transform ops accepted in decorator definitions.
const (
	OpAdd      = "add"
	OpMultiply = "multiply"
	OpAppend   = "append"
	OpPrepend  = "prepend"
	OpReplace  = "replace"
)

// ChainDefinition is the declarative JSON form of a composition chain: base
// attribute values plus an ordered list of decorator definitions, applied
// first-to-last (so the last entry ends up outermost).
//
// While its properties are exported for marshaling, it should only be
// constructed from JSON with ChainDefinitionFromJSON.
type ChainDefinition struct {
	Name       string                  `json:"name"`
	Base       attributes.AttributeSet `json:"base"`
	Decorators []DecoratorDefinition   `json:"decorators,omitempty"`
}

// DecoratorDefinition describes one decoration layer as data. Which extra
// fields are meaningful depends on the op: add and multiply read Amount,
// append and prepend read Text, replace reads Old and New.
type DecoratorDefinition struct {
	Attribute string  `json:"attribute"`
	Op        string  `json:"op"`
	Amount    float64 `json:"amount,omitempty"`
	Text      string  `json:"text,omitempty"`
	Old       string  `json:"old,omitempty"`
	New       string  `json:"new,omitempty"`
}

// ChainDefinitionFromJSON parses and validates a chain definition.
//
// Returns an error if the JSON is malformed, the name or base is empty, or a
// decorator definition names an unsupported op.
func ChainDefinitionFromJSON(data []byte) (ChainDefinition, error) {
	if !jsoniter.ConfigFastest.Valid(data) {
		return ChainDefinition{}, ErrInvalidChainDefinitionJSON
	}

	var def ChainDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return ChainDefinition{}, errors.Join(ErrInvalidChainDefinitionJSON, err)
	}

	if err := def.Validate(); err != nil {
		return ChainDefinition{}, err
	}

	return def, nil
}

// Validate ensures the definition can be built into a chain.
func (d ChainDefinition) Validate() error {
	if d.Name == "" {
		return ErrEmptyChainDefinitionName
	}

	if len(d.Base) == 0 {
		return ErrEmptyBaseValues
	}

	for _, dd := range d.Decorators {
		if dd.Attribute == "" {
			return attributes.ErrEmptyAttributeNameSupplied
		}

		if _, err := dd.transform(); err != nil {
			return err
		}
	}

	return nil
}

// BuildChainFromDefinition constructs the base subject and applies the
// decorator definitions in order, returning the final provider.
func BuildChainFromDefinition(def ChainDefinition) (attributes.Provider, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	base, err := BuildBaseSubject(def.Base)
	if err != nil {
		return nil, err
	}

	layers := make([]Layer, 0, len(def.Decorators))
	for _, dd := range def.Decorators {
		transform, trErr := dd.transform()
		if trErr != nil {
			return nil, trErr
		}

		layers = append(layers, WithModifications(M(dd.Attribute, transform)))
	}

	return Decorate(base, layers...)
}

// transform maps the definition's op to a bound Transform.
func (dd DecoratorDefinition) transform() (Transform, error) {
	switch dd.Op {
	case OpAdd:
		return AddNumber(dd.Amount), nil
	case OpMultiply:
		return MultiplyNumber(dd.Amount), nil
	case OpAppend:
		return AppendText(dd.Text), nil
	case OpPrepend:
		return PrependText(dd.Text), nil
	case OpReplace:
		return ReplaceText(dd.Old, dd.New), nil
	default:
		return Transform{}, fmt.Errorf("%w: %q", ErrUnknownTransformOp, dd.Op)
	}
}
