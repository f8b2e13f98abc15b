/*
Package scenario runs named sequences of insertions into an AVL tree and
prints a trace of every rebalancing step.

Scenarios are either the built-in demonstration sets (Defaults) or loaded
from YAML:

	scenarios:
	  - name: Set 1
	    keys: [1, 2, 3, 4, 5]
	  - name: zig-zag
	    keys: [12, 3, 9, 4, 6, 2]

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'avl'
func tracer() tracing.Trace {
	return tracing.Select("avl")
}

// ErrInvalidScenario is flagged for scenario files which cannot be used.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

// Scenario is a named sequence of keys to insert into an empty tree.
type Scenario struct {
	Name string `yaml:"name"`
	Keys []int  `yaml:"keys"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Defaults returns the demonstration sets, exercising all four imbalance cases
// between them.
func Defaults() []Scenario {
	return []Scenario{
		{Name: "Set 1", Keys: []int{1, 2, 3, 4, 5}},
		{Name: "Set 2", Keys: []int{5, 10, 3, 12, 15, 14}},
		{Name: "Set 3", Keys: []int{12, 3, 9, 4, 6, 2}},
		{Name: "Set 4", Keys: []int{5, 3, 10, 12, 8, 7}},
	}
}

// Load reads scenarios in YAML format. Unnamed scenarios are named by their
// position ("Set 1", "Set 2", …).
func Load(r io.Reader) ([]Scenario, error) {
	var f scenarioFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: no scenarios", ErrInvalidScenario)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("%w: no scenarios", ErrInvalidScenario)
	}
	for i := range f.Scenarios {
		if f.Scenarios[i].Name == "" {
			f.Scenarios[i].Name = fmt.Sprintf("Set %d", i+1)
		}
		if len(f.Scenarios[i].Keys) == 0 {
			return nil, fmt.Errorf("%w: scenario %q has no keys", ErrInvalidScenario, f.Scenarios[i].Name)
		}
	}
	tracer().Debugf("loaded %d scenarios", len(f.Scenarios))
	return f.Scenarios, nil
}

// LoadFile reads scenarios from a YAML file.
func LoadFile(name string) ([]Scenario, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Load(file)
}
