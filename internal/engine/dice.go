package engine

import (
	"math/rand"
	"sync"
	"time"
)

// Roller is the only source of randomness the engine uses.
type Roller interface {
	// D6 returns a face in [1,6].
	D6() int
	// Intn returns a value in [0,n) for uniform picks such as card draws.
	Intn(n int) int
}

type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller returns a seeded PRNG roller. A zero seed uses the clock.
func NewRandomRoller(seed int64) Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randomRoller{rng: rand.New(rand.NewSource(seed))}
}

func (r *randomRoller) D6() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(6) + 1
}

func (r *randomRoller) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// ScriptedRoller replays fixed sequences. Dice feeds D6 and Picks feeds
// Intn; an exhausted queue yields 1 for dice and 0 for picks.
type ScriptedRoller struct {
	Dice  []int
	Picks []int
}

func (s *ScriptedRoller) D6() int {
	if len(s.Dice) == 0 {
		return 1
	}
	v := s.Dice[0]
	s.Dice = s.Dice[1:]
	return v
}

func (s *ScriptedRoller) Intn(n int) int {
	if n <= 0 || len(s.Picks) == 0 {
		return 0
	}
	v := s.Picks[0]
	s.Picks = s.Picks[1:]
	return ((v % n) + n) % n
}

// fixedRoller always rolls the same face. Dry runs use it so enumerating
// legal actions never consumes the engine's real dice.
type fixedRoller struct{ face int }

func (f fixedRoller) D6() int { return f.face }

func (f fixedRoller) Intn(n int) int { return 0 }
