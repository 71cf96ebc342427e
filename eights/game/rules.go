package game

import (
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
)

// Playable is the only legality check: a wild card always goes, any other
// card must follow the current suit or the rank on top of the discard pile.
func Playable(candidateCard card.Card, topDiscard card.Card, currentSuit suit.Suit) bool {
	if candidateCard.IsWild() {
		return true
	}
	if currentSuit.Valid() && candidateCard.Suit == currentSuit {
		return true
	}
	return topDiscard.Rank.Valid() && candidateCard.Rank == topDiscard.Rank
}
