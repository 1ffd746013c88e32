package system

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/milk9111/lavarun/levels"
	"github.com/milk9111/lavarun/obj"
	"github.com/milk9111/lavarun/prefabs"
)

// NewParser builds a plan parser from the symbols spec. A zero seed leaves
// coin phases random.
func NewParser(seed uint64) (*obj.Parser, error) {
	symbols, err := prefabs.LoadSymbolsSpec()
	if err != nil {
		return nil, err
	}
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewPCG(seed, seed))
	}
	dict, err := prefabs.BuildDictionary(symbols, rng)
	if err != nil {
		return nil, err
	}
	return obj.NewParser(dict), nil
}

func ConfigFromSpec(spec *prefabs.GameSpec) Config {
	if spec == nil {
		return DefaultConfig()
	}
	return Config{
		MaxStep:     spec.MaxStep,
		FinishDelay: spec.FinishDelay,
		PlayerSpeed: spec.PlayerSpeed,
		MaxFrame:    spec.MaxFrame,
	}
}

// ApplyChange reloads whatever a watcher change touched and restarts the
// current level. When the game spec was reloaded it is returned so the
// driver can pick up its presentation settings; otherwise the returned spec
// is nil.
func (w *World) ApplyChange(change prefabs.Change, pack string, seed uint64) (*prefabs.GameSpec, error) {
	log.Printf("reloading after %s change: %s", change.Kind, change.Path)

	switch change.Kind {
	case prefabs.ChangeLevel:
		p, err := levels.Load(pack)
		if err != nil {
			return nil, err
		}
		return nil, w.Reload(p)
	case prefabs.ChangeSpec:
		spec, err := prefabs.LoadGameSpec()
		if err != nil {
			return nil, err
		}
		parser, err := NewParser(seed)
		if err != nil {
			return nil, err
		}
		w.SetConfig(ConfigFromSpec(spec))
		w.SetParser(parser)
		return spec, w.Restart()
	}
	return nil, fmt.Errorf("system: apply change: unknown kind %d", change.Kind)
}
