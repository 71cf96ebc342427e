package game_test

import (
	"testing"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
	"github.com/stretchr/testify/require"
)

func TestRules(t *testing.T) {
	scenarios := []struct {
		description   string
		candidateCard card.Card
		topDiscard    card.Card
		currentSuit   suit.Suit
		expected      bool
	}{
		{
			description:   "wild_card_is_always_playable",
			candidateCard: card.New(card.Eight, suit.Hearts, 0),
			topDiscard:    card.New(card.Seven, suit.Spades, 0),
			currentSuit:   suit.Spades,
			expected:      true,
		},
		{
			description:   "same_suit",
			candidateCard: card.New(card.Two, suit.Spades, 0),
			topDiscard:    card.New(card.Seven, suit.Spades, 0),
			currentSuit:   suit.Spades,
			expected:      true,
		},
		{
			description:   "same_rank",
			candidateCard: card.New(card.Seven, suit.Hearts, 0),
			topDiscard:    card.New(card.Seven, suit.Spades, 0),
			currentSuit:   suit.Spades,
			expected:      true,
		},
		{
			description:   "different_suit_and_rank",
			candidateCard: card.New(card.Two, suit.Hearts, 0),
			topDiscard:    card.New(card.Seven, suit.Spades, 0),
			currentSuit:   suit.Spades,
			expected:      false,
		},
		{
			description:   "suit_named_by_wild_card",
			candidateCard: card.New(card.Two, suit.Diamonds, 0),
			topDiscard:    card.New(card.Eight, suit.Spades, 0),
			currentSuit:   suit.Diamonds,
			expected:      true,
		},
		{
			description:   "printed_suit_of_wild_card_no_longer_counts",
			candidateCard: card.New(card.Two, suit.Spades, 0),
			topDiscard:    card.New(card.Eight, suit.Spades, 0),
			currentSuit:   suit.Diamonds,
			expected:      false,
		},
		{
			description:   "wild_card_on_wild_card",
			candidateCard: card.New(card.Eight, suit.Clubs, 1),
			topDiscard:    card.New(card.Eight, suit.Spades, 0),
			currentSuit:   suit.Diamonds,
			expected:      true,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			result := game.Playable(scenario.candidateCard, scenario.topDiscard, scenario.currentSuit)
			require.Equal(t, scenario.expected, result)
		})
	}
}
