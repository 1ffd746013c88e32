package obj

import (
	"math"
	"math/rand/v2"

	"github.com/milk9111/lavarun/common"
)

const (
	coinSpringSpeed = 8.0
	coinSpringDist  = 0.07
)

var (
	coinOffset = common.Vec(0.2, 0.1)
	coinSize   = common.Vec(0.6, 0.6)
)

// NewCoin creates a collectible bobbing around pos. rng seeds the bob phase;
// a nil rng uses the process-wide source.
func NewCoin(pos common.Vector, rng *rand.Rand) *Actor {
	start := pos.Plus(coinOffset)
	a := newActor(KindCoin, start, coinSize, common.Vector{})
	a.anchor = start
	if rng != nil {
		a.phase = rng.Float64() * 2 * math.Pi
	} else {
		a.phase = rand.Float64() * 2 * math.Pi
	}
	return a
}

func (a *Actor) actCoin(dt float64) {
	a.phase += coinSpringSpeed * dt
	a.Pos = a.anchor.Plus(common.Vec(0, math.Sin(a.phase)*coinSpringDist))
}
