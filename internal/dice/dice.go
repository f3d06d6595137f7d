package dice

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/rewardsbot/internal/dice Roller

// Roller picks random reward amounts
type Roller interface {
	// Between returns a uniformly random integer in [min, max]
	Between(min, max int) int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

type roller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Between generates a roll in the inclusive range. Swapped bounds are tolerated.
func (r *roller) Between(min, max int) int {
	if max < min {
		min, max = max, min
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return min + r.random.Intn(max-min+1)
}
