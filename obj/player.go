package obj

import "github.com/milk9111/lavarun/common"

var (
	playerOffset = common.Vec(0, -0.5)
	playerSize   = common.Vec(0.8, 1.5)
)

// NewPlayer creates the player standing on the tile at pos. The player has
// no motion of its own; drivers move it.
func NewPlayer(pos common.Vector) *Actor {
	return newActor(KindPlayer, pos.Plus(playerOffset), playerSize, common.Vector{})
}
