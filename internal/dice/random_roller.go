package dice

import (
	"errors"
	"math/rand"
)

// randomRoller implements Roller over an injected random source.
// Callers that need reproducible sequences seed the source themselves;
// the roller never touches the package-global generator.
type randomRoller struct {
	rng *rand.Rand
}

// NewRoller creates a dice roller drawing from rng
func NewRoller(rng *rand.Rand) Roller {
	return &randomRoller{rng: rng}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}

	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	total := 0
	rolls := make([]int, count)
	for i := 0; i < count; i++ {
		roll := r.rng.Intn(sides) + 1
		rolls[i] = roll
		total += roll
	}

	return &RollResult{
		Total:    total + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: total,
	}, nil
}
