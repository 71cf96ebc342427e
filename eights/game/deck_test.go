package game_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
	"github.com/stretchr/testify/require"
)

func TestBuildPool(t *testing.T) {
	t.Run("keeps_pool_size_cards_with_unique_ids", func(t *testing.T) {
		pool, err := game.BuildPool(rand.New(rand.NewSource(1)), 2, 100)
		require.NoError(t, err)
		require.Len(t, pool, 100)

		ids := make(map[string]bool)
		for _, c := range pool {
			ids[c.ID] = true
		}
		require.Len(t, ids, 100)
	})

	t.Run("returns_every_card_when_nothing_is_truncated", func(t *testing.T) {
		pool, err := game.BuildPool(rand.New(rand.NewSource(1)), 1, 52)
		require.NoError(t, err)

		var expected []card.Card
		for _, s := range suit.All {
			for _, rank := range card.Ranks {
				expected = append(expected, card.New(rank, s, 0))
			}
		}
		require.ElementsMatch(t, expected, pool.Cards())
	})

	t.Run("same_seed_same_order", func(t *testing.T) {
		first, err := game.BuildPool(rand.New(rand.NewSource(7)), 2, 100)
		require.NoError(t, err)
		second, err := game.BuildPool(rand.New(rand.NewSource(7)), 2, 100)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("truncates_after_shuffling", func(t *testing.T) {
		pool, err := game.BuildPool(rand.New(rand.NewSource(3)), 2, 52)
		require.NoError(t, err)
		fromSecondDeck := 0
		for _, c := range pool {
			if c.ID == card.New(c.Rank, c.Suit, 1).ID {
				fromSecondDeck++
			}
		}
		require.NotZero(t, fromSecondDeck)
	})

	t.Run("rejects_pool_larger_than_decks", func(t *testing.T) {
		_, err := game.BuildPool(rand.New(rand.NewSource(1)), 1, 53)
		require.True(t, errors.Is(err, game.ErrPoolTooLarge))
		require.True(t, errors.Is(err, game.ErrConfiguration))
	})

	t.Run("rejects_zero_decks", func(t *testing.T) {
		_, err := game.BuildPool(rand.New(rand.NewSource(1)), 0, 10)
		require.True(t, errors.Is(err, game.ErrInvalidRules))
	})
}

func TestDeal(t *testing.T) {
	pool := game.NewPile(
		card.New(card.Ace, suit.Hearts, 0),
		card.New(card.Two, suit.Hearts, 0),
		card.New(card.Three, suit.Hearts, 0),
		card.New(card.Four, suit.Hearts, 0),
		card.New(card.Five, suit.Hearts, 0),
	)

	playerHand, aiHand, rest, err := game.Deal(pool, 2)
	require.NoError(t, err)
	require.Equal(t, game.NewHand(pool[0], pool[1]), playerHand)
	require.Equal(t, game.NewHand(pool[2], pool[3]), aiHand)
	require.Equal(t, game.NewPile(pool[4]), rest)

	_, _, _, err = game.Deal(pool, 3)
	require.True(t, errors.Is(err, game.ErrInvalidRules))
}

func TestChooseInitialDiscard(t *testing.T) {
	t.Run("skips_wild_cards_from_the_front", func(t *testing.T) {
		pool := game.NewPile(
			card.New(card.Eight, suit.Hearts, 0),
			card.New(card.Eight, suit.Clubs, 0),
			card.New(card.Jack, suit.Spades, 0),
			card.New(card.Two, suit.Diamonds, 0),
		)
		first, rest, err := game.ChooseInitialDiscard(pool)
		require.NoError(t, err)
		require.Equal(t, card.New(card.Jack, suit.Spades, 0), first)
		require.Equal(t, game.NewPile(pool[0], pool[1], pool[3]), rest)
	})

	t.Run("fails_when_only_wild_cards_remain", func(t *testing.T) {
		pool := game.NewPile(
			card.New(card.Eight, suit.Hearts, 0),
			card.New(card.Eight, suit.Clubs, 1),
		)
		_, rest, err := game.ChooseInitialDiscard(pool)
		require.True(t, errors.Is(err, game.ErrNoInitialDiscard))
		require.True(t, errors.Is(err, game.ErrConfiguration))
		require.Equal(t, pool, rest)
	})
}

func TestRulesValidate(t *testing.T) {
	scenarios := []struct {
		description string
		rules       game.Rules
		expected    error
	}{
		{description: "default_rules", rules: game.DefaultRules()},
		{description: "single_full_deck", rules: game.Rules{NumDecks: 1, PoolSize: 52, HandSize: 7}},
		{description: "pool_too_large", rules: game.Rules{NumDecks: 1, PoolSize: 60, HandSize: 7}, expected: game.ErrPoolTooLarge},
		{description: "hands_do_not_fit", rules: game.Rules{NumDecks: 1, PoolSize: 10, HandSize: 5}, expected: game.ErrInvalidRules},
		{description: "zero_hand_size", rules: game.Rules{NumDecks: 2, PoolSize: 100}, expected: game.ErrInvalidRules},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			err := scenario.rules.Validate()
			if scenario.expected == nil {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, scenario.expected))
		})
	}
}
