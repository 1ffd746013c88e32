package obj

import (
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/lavarun/common"
)

// Constructor builds an actor spawned at pos. It may return nil to skip the cell.
type Constructor func(pos common.Vector) *Actor

// Dictionary maps plan symbols to actor constructors.
type Dictionary map[rune]Constructor

// StandardDictionary is the symbol set used by the bundled level packs.
func StandardDictionary(rng *rand.Rand) Dictionary {
	return Dictionary{
		'@': NewPlayer,
		'o': func(pos common.Vector) *Actor { return NewCoin(pos, rng) },
		'=': NewHorizontalFireball,
		'|': NewVerticalFireball,
		'v': NewFireRain,
	}
}

// DictionaryFromKinds builds a dictionary from configured symbol kinds.
// Only kinds that can be spawned from a single position are accepted.
func DictionaryFromKinds(symbols map[rune]Kind, rng *rand.Rand) (Dictionary, error) {
	dict := make(Dictionary, len(symbols))
	for sym, kind := range symbols {
		switch kind {
		case KindPlayer:
			dict[sym] = NewPlayer
		case KindCoin:
			dict[sym] = func(pos common.Vector) *Actor { return NewCoin(pos, rng) }
		case KindHorizontalFireball:
			dict[sym] = NewHorizontalFireball
		case KindVerticalFireball:
			dict[sym] = NewVerticalFireball
		case KindFireRain:
			dict[sym] = NewFireRain
		default:
			return nil, fmt.Errorf("obj: symbol %q: kind %s cannot be spawned: %w", sym, kind, ErrInvalidArgument)
		}
	}
	return dict, nil
}

// Parser turns text plans into levels.
type Parser struct {
	dict Dictionary
}

func NewParser(dict Dictionary) *Parser {
	return &Parser{dict: dict}
}

// ActorFromSymbol returns the constructor for sym, or nil.
func (p *Parser) ActorFromSymbol(sym rune) Constructor {
	if p.dict == nil {
		return nil
	}
	return p.dict[sym]
}

func ObstacleFromSymbol(sym rune) Obstacle {
	switch sym {
	case 'x':
		return ObstacleWall
	case '!':
		return ObstacleLava
	default:
		return ObstacleNone
	}
}

// CreateGrid maps every plan character to its obstacle.
func (p *Parser) CreateGrid(plan []string) [][]Obstacle {
	grid := make([][]Obstacle, 0, len(plan))
	for _, line := range plan {
		row := make([]Obstacle, 0, len(line))
		for _, sym := range line {
			row = append(row, ObstacleFromSymbol(sym))
		}
		grid = append(grid, row)
	}
	return grid
}

// CreateActors spawns an actor for every plan character with a constructor.
// Columns count characters, not bytes.
func (p *Parser) CreateActors(plan []string) []*Actor {
	var actors []*Actor
	for y, line := range plan {
		for x, sym := range []rune(line) {
			ctor := p.ActorFromSymbol(sym)
			if ctor == nil {
				continue
			}
			if a := ctor(common.Vec(float64(x), float64(y))); a != nil {
				actors = append(actors, a)
			}
		}
	}
	return actors
}

func (p *Parser) Parse(plan []string) *Level {
	return NewLevel(p.CreateGrid(plan), p.CreateActors(plan))
}
