package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBetweenStaysInRange(t *testing.T) {
	r := New(&Config{Seed: 42})
	for i := 0; i < 1000; i++ {
		v := r.Between(10, 50)
		assert.GreaterOrEqual(t, v, 10)
		assert.LessOrEqual(t, v, 50)
	}
}

func TestBetweenSingleValue(t *testing.T) {
	r := New(nil)
	assert.Equal(t, 7, r.Between(7, 7))
}

func TestBetweenSwappedBounds(t *testing.T) {
	r := New(&Config{Seed: 1})
	v := r.Between(5, 1)
	assert.GreaterOrEqual(t, v, 1)
	assert.LessOrEqual(t, v, 5)
}

func TestSeedIsDeterministic(t *testing.T) {
	a := New(&Config{Seed: 99})
	b := New(&Config{Seed: 99})
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Between(0, 100), b.Between(0, 100))
	}
}
