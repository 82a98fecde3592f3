package card

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoeCapacityAndComposition(t *testing.T) {
	t.Parallel()

	shoe := NewShoe(6)
	require.Equal(t, 312, shoe.Capacity())
	require.Equal(t, 312, shoe.Remaining())
	assert.InDelta(t, 1.0, shoe.Penetration(), 1e-9)

	// Every suit+rank pair must appear exactly once per deck.
	counts := make(map[Card]int)
	for range shoe.Capacity() {
		counts[shoe.Deal()]++
	}
	assert.Len(t, counts, 52)
	for c, n := range counts {
		assert.Equal(t, 6, n, "card %s", c)
	}
}

func TestShoeDealNeverObservesLowPenetration(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11))
	shoe := NewShoeWith(6, DefaultReshuffleThreshold, rng)

	// Draw far more cards than one shoe holds; the reshuffle check runs
	// before every deal, so penetration at deal time never drops below
	// the threshold.
	for i := range 1000 {
		assert.GreaterOrEqual(t, shoe.Penetration(), DefaultReshuffleThreshold, "deal %d", i)
		shoe.Deal()
		p := shoe.Penetration()
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

func TestShoeReshuffleRefillsToCapacity(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	shoe := NewShoeWith(1, 0.20, rng)

	// 52 * 0.20 = 10.4, so the 43rd deal sees 10 cards left and reshuffles.
	for range 42 {
		shoe.Deal()
	}
	require.Equal(t, 10, shoe.Remaining())

	shoe.Deal()
	assert.Equal(t, 51, shoe.Remaining())
}

func TestShoeSeededShuffleIsDeterministic(t *testing.T) {
	t.Parallel()

	a := NewShoeWith(2, 0.20, rand.New(rand.NewPCG(42, 42)))
	b := NewShoeWith(2, 0.20, rand.New(rand.NewPCG(42, 42)))

	for range 20 {
		assert.Equal(t, a.Deal(), b.Deal())
	}
}
