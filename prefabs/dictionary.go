package prefabs

import (
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/lavarun/obj"
)

// BuildDictionary turns a symbols spec into the parser's constructor table.
func BuildDictionary(spec *SymbolsSpec, rng *rand.Rand) (obj.Dictionary, error) {
	if spec == nil {
		return obj.StandardDictionary(rng), nil
	}
	names, err := spec.Runes()
	if err != nil {
		return nil, err
	}
	kinds := make(map[rune]obj.Kind, len(names))
	for sym, name := range names {
		kind, err := obj.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("prefabs: symbol %q: %w", sym, err)
		}
		kinds[sym] = kind
	}
	return obj.DictionaryFromKinds(kinds, rng)
}
