// Demo wiring the decoration engine together: it composes the canonical
// speaker and pizza chains, shows that disjoint-attribute decorators commute,
// builds one chain from a declarative JSON definition, and queries everything
// through an instrumented provider logging via slog.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/composekit/composable-attributes-go/attributes"
	"github.com/composekit/composable-attributes-go/attributes/decorengine"
)

// Config is parsed from the environment.
type Config struct {
	LogLevel            string `env:"DEMO_LOG_LEVEL" envDefault:"debug"`
	ChainDefinitionPath string `env:"DEMO_CHAIN_DEFINITION"`
}

const defaultChainDefinitionJSON = `{
	"name": "pizza_special",
	"base": {"cost": 1.99, "description": "thin crust"},
	"decorators": [
		{"attribute": "cost", "op": "add", "amount": 0.10},
		{"attribute": "description", "op": "append", "text": " with cheese"}
	]
}`

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "demo failed:", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	logger := newLogger(cfg.LogLevel)

	if err := speakerShowcase(logger); err != nil {
		return err
	}

	return definitionShowcase(logger, cfg)
}

// speakerShowcase builds the speaker chain in both wrap orders and shows that
// the final attribute sets are identical, since bass boost and power boost
// modify disjoint attributes.
func speakerShowcase(logger *slog.Logger) error {
	base, err := decorengine.BuildBaseSubject(attributes.AttributeSet{
		"power": attributes.Number(110),
		"bass":  attributes.Number(1),
	})
	if err != nil {
		return err
	}

	bassBoost := decorengine.WithModifications(decorengine.M("bass", decorengine.AddNumber(5)))
	powerBoost := decorengine.WithModifications(decorengine.M("power", decorengine.AddNumber(10)))

	bassFirst, err := decorengine.Decorate(base, bassBoost, powerBoost)
	if err != nil {
		return err
	}

	powerFirst, err := decorengine.Decorate(base, powerBoost, bassBoost)
	if err != nil {
		return err
	}

	instrumented, err := decorengine.NewInstrumentedProvider(bassFirst,
		decorengine.WithChainName("stage_speaker"),
		decorengine.WithLogger(logger))
	if err != nil {
		return err
	}

	first, err := attributes.Snapshot(instrumented)
	if err != nil {
		return err
	}

	second, err := attributes.Snapshot(powerFirst)
	if err != nil {
		return err
	}

	if err := printSnapshot("speaker (bass boost, then power boost)", first); err != nil {
		return err
	}
	if err := printSnapshot("speaker (power boost, then bass boost)", second); err != nil {
		return err
	}

	fmt.Println("wrap orders agree:", equalSets(first, second))

	return nil
}

// definitionShowcase builds a chain from a JSON definition, either the
// configured file or the built-in pizza example.
func definitionShowcase(logger *slog.Logger, cfg Config) error {
	data := []byte(defaultChainDefinitionJSON)

	if cfg.ChainDefinitionPath != "" {
		fileData, err := os.ReadFile(cfg.ChainDefinitionPath)
		if err != nil {
			return fmt.Errorf("read chain definition: %w", err)
		}

		data = fileData
	}

	def, err := decorengine.ChainDefinitionFromJSON(data)
	if err != nil {
		return err
	}

	chain, err := decorengine.BuildChainFromDefinition(def)
	if err != nil {
		return err
	}

	instrumented, err := decorengine.NewInstrumentedProvider(chain,
		decorengine.WithChainName(def.Name),
		decorengine.WithLogger(logger))
	if err != nil {
		return err
	}

	set, err := attributes.Snapshot(instrumented)
	if err != nil {
		return err
	}

	return printSnapshot(def.Name, set)
}

func newLogger(level string) *slog.Logger {
	var slogLevel slog.Level
	if err := slogLevel.UnmarshalText([]byte(level)); err != nil {
		slogLevel = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel}))
}

func printSnapshot(title string, set attributes.AttributeSet) error {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return err
	}

	fmt.Printf("%s:\n%s\n", title, data)

	return nil
}

func equalSets(a, b attributes.AttributeSet) bool {
	if len(a) != len(b) {
		return false
	}

	for name, value := range a {
		if !b[name].Equal(value) {
			return false
		}
	}

	return true
}
