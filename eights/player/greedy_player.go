package player

import (
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
)

type greedyPlayer struct {
	basicPlayer
}

func NewGreedyPlayer(name string) Player {
	return greedyPlayer{basicPlayer: basicPlayer{name: name}}
}

// Decide keeps wild cards for last: the first playable ordinary card in
// hand order goes before any eight.
func (p greedyPlayer) Decide(state game.State) game.Intent {
	return playOrDraw(state, func(playableCards []card.Card) card.Card {
		for _, playableCard := range playableCards {
			if !playableCard.IsWild() {
				return playableCard
			}
		}
		return playableCards[0]
	})
}

// PickSuit names the suit held most among the cards that stay in hand.
// Ties go to the earlier suit in suit.All; an empty hand gets the fallback.
func (p greedyPlayer) PickSuit(hand game.Hand, played card.Card) suit.Suit {
	counts := suitCounts(hand, played)

	mostFrequentSuit := game.FallbackSuit
	mostFrequentSuitAmount := 0
	for _, availableSuit := range suit.All {
		if amount := counts[availableSuit.Index()]; amount > mostFrequentSuitAmount {
			mostFrequentSuitAmount = amount
			mostFrequentSuit = availableSuit
		}
	}

	return mostFrequentSuit
}
