package game_test

import (
	"testing"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
	"github.com/stretchr/testify/require"
)

func TestCards(t *testing.T) {
	pile := game.NewPile().
		Add(card.New(card.Five, suit.Spades, 0)).
		Add(card.New(card.Five, suit.Clubs, 0)).
		Add(card.New(card.Seven, suit.Clubs, 0))
	require.Equal(t, []card.Card{
		card.New(card.Five, suit.Spades, 0),
		card.New(card.Five, suit.Clubs, 0),
		card.New(card.Seven, suit.Clubs, 0),
	}, pile.Cards())
}

func TestPop(t *testing.T) {
	pile := game.NewPile(card.New(card.Five, suit.Spades, 0), card.New(card.Nine, suit.Hearts, 0))

	top, rest, ok := pile.Pop()
	require.True(t, ok)
	require.Equal(t, card.New(card.Nine, suit.Hearts, 0), top)
	require.Equal(t, 1, rest.Size())
	require.Equal(t, 2, pile.Size())

	_, rest, ok = game.NewPile().Pop()
	require.False(t, ok)
	require.Zero(t, rest.Size())
}

func TestTop(t *testing.T) {
	pile := game.NewPile()
	_, ok := pile.Top()
	require.False(t, ok)

	pile = pile.Add(card.New(card.Five, suit.Spades, 0)).Add(card.New(card.Seven, suit.Clubs, 0))
	top, ok := pile.Top()
	require.True(t, ok)
	require.Equal(t, card.New(card.Seven, suit.Clubs, 0), top)
}
