package msg_test

import (
	"testing"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/msg"
	"github.com/stretchr/testify/require"
)

func TestMessageWriter(t *testing.T) {
	eight := card.New(card.Eight, suit.Spades, 0)
	five := card.New(card.Five, suit.Hearts, 1)

	require.Equal(t, "Game started! First card is 5♥. Your turn.", msg.Message.GameStarted(five))
	require.Equal(t, "AI drew a card!", msg.Message.PlayerDrewCard("AI"))
	require.Equal(t, "Draw pile is empty, You passed!", msg.Message.PlayerPassedOnEmptyDeck("You"))
	require.Equal(t, "You played 5♥!", msg.Message.PlayerPlayedCard("You", five))
	require.Equal(t, "You played 8♠, pick a suit!", msg.Message.PlayerPickingSuit("You", eight))
	require.Equal(t, "AI played 8♠ and picked suit ♦!", msg.Message.PlayerPlayedWild("AI", eight, suit.Diamonds))
	require.Equal(t, "AI played the last card and wins!", msg.Message.WinnerFound("AI"))
}
