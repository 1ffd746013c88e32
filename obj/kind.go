package obj

import "fmt"

// Kind identifies the behaviour of an actor. The set is closed.
type Kind uint8

const (
	KindActor Kind = iota
	KindPlayer
	KindCoin
	KindFireball
	KindHorizontalFireball
	KindVerticalFireball
	KindFireRain
)

var kindNames = [...]string{
	KindActor:              "actor",
	KindPlayer:             "player",
	KindCoin:               "coin",
	KindFireball:           "fireball",
	KindHorizontalFireball: "horizontal-fireball",
	KindVerticalFireball:   "vertical-fireball",
	KindFireRain:           "fire-rain",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind maps a kind name back to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return KindActor, fmt.Errorf("obj: parse kind %q: %w", name, ErrInvalidArgument)
}

// IsProjectile reports whether k moves with constant velocity and reacts to obstacles.
func (k Kind) IsProjectile() bool {
	switch k {
	case KindFireball, KindHorizontalFireball, KindVerticalFireball, KindFireRain:
		return true
	}
	return false
}

// Touch returns what the player is considered to have touched when it
// overlaps an actor of this kind. All projectiles burn like a fireball.
func (k Kind) Touch() Touch {
	switch k {
	case KindPlayer:
		return TouchPlayer
	case KindCoin:
		return TouchCoin
	case KindFireball, KindHorizontalFireball, KindVerticalFireball, KindFireRain:
		return TouchFireball
	default:
		return TouchActor
	}
}

// Touch names the thing the player ran into: an obstacle or an actor type.
type Touch string

const (
	TouchWall     Touch = "wall"
	TouchLava     Touch = "lava"
	TouchActor    Touch = "actor"
	TouchPlayer   Touch = "player"
	TouchCoin     Touch = "coin"
	TouchFireball Touch = "fireball"
)
