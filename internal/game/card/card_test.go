package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankBaseValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rank     Rank
		expected int
	}{
		{name: "Two", rank: Rank2, expected: 2},
		{name: "Nine", rank: Rank9, expected: 9},
		{name: "Ten", rank: Rank10, expected: 10},
		{name: "Jack", rank: RankJ, expected: 10},
		{name: "Queen", rank: RankQ, expected: 10},
		{name: "King", rank: RankK, expected: 10},
		{name: "Ace counts as one", rank: RankA, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.rank.BaseValue())
		})
	}
}

func TestCardString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "♠A", Card{Suit: Spade, Rank: RankA}.String())
	assert.Equal(t, "♥10", Card{Suit: Heart, Rank: Rank10}.String())
	assert.Equal(t, "♦K", Card{Suit: Diamond, Rank: RankK}.String())
}

func TestCardIsAce(t *testing.T) {
	t.Parallel()

	assert.True(t, Card{Suit: Club, Rank: RankA}.IsAce())
	assert.False(t, Card{Suit: Club, Rank: RankK}.IsAce())
}
