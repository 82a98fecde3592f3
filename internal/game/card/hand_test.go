package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cardsOf(ranks ...Rank) []Card {
	cards := make([]Card, 0, len(ranks))
	suits := []Suit{Spade, Heart, Club, Diamond}
	for i, r := range ranks {
		cards = append(cards, Card{Suit: suits[i%len(suits)], Rank: r})
	}
	return cards
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ranks    []Rank
		expected HandValue
	}{
		{
			name:  "Empty hand",
			ranks: nil,
			expected: HandValue{
				HardValue: 0, BestValue: 0, AceCount: 0, IsSoft: false, IsBust: false,
			},
		},
		{
			name:  "Single ace",
			ranks: []Rank{RankA},
			expected: HandValue{
				HardValue: 1, BestValue: 11, AceCount: 1, IsSoft: true, IsBust: false,
			},
		},
		{
			name:  "Soft 19",
			ranks: []Rank{RankA, Rank8},
			expected: HandValue{
				HardValue: 9, BestValue: 19, AceCount: 1, IsSoft: true, IsBust: false,
			},
		},
		{
			name:  "Two aces only one upgrades",
			ranks: []Rank{RankA, RankA, Rank9},
			expected: HandValue{
				HardValue: 11, BestValue: 21, AceCount: 2, IsSoft: true, IsBust: false,
			},
		},
		{
			name:  "Ace stays hard when upgrade would bust",
			ranks: []Rank{RankA, Rank10, Rank9},
			expected: HandValue{
				HardValue: 20, BestValue: 20, AceCount: 1, IsSoft: false, IsBust: false,
			},
		},
		{
			name:  "Bust",
			ranks: []Rank{Rank10, Rank5, Rank7},
			expected: HandValue{
				HardValue: 22, BestValue: 22, AceCount: 0, IsSoft: false, IsBust: true,
			},
		},
		{
			name:  "Natural 21 by value",
			ranks: []Rank{RankK, RankA},
			expected: HandValue{
				HardValue: 11, BestValue: 21, AceCount: 1, IsSoft: true, IsBust: false,
			},
		},
		{
			name:  "Multi-card 21 is not special-cased",
			ranks: []Rank{Rank7, Rank7, Rank7},
			expected: HandValue{
				HardValue: 21, BestValue: 21, AceCount: 0, IsSoft: false, IsBust: false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Evaluate(cardsOf(tt.ranks...)))
		})
	}
}

func TestEvaluateIsPure(t *testing.T) {
	t.Parallel()

	cards := cardsOf(RankA, Rank10, Rank9)
	first := Evaluate(cards)
	second := Evaluate(cards)

	assert.Equal(t, first, second)
	assert.Equal(t, cardsOf(RankA, Rank10, Rank9), cards)
}

func TestHandValueString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ranks    []Rank
		expected string
	}{
		{name: "Plain", ranks: []Rank{Rank10, Rank9}, expected: "19"},
		{name: "Soft", ranks: []Rank{RankA, Rank8}, expected: "Soft 19"},
		{name: "Bust", ranks: []Rank{Rank10, Rank9, Rank5}, expected: "Bust (24)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Evaluate(cardsOf(tt.ranks...)).String())
		})
	}
}
