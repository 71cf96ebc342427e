package player

import (
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
)

// Player decides the opponent's move for one turn. It also names the suit
// when the engine plays one of its wild cards.
type Player interface {
	game.SuitPicker
	Name() string
	Decide(state game.State) game.Intent
}

type basicPlayer struct {
	name string
}

func (p basicPlayer) Name() string {
	return p.name
}

// playOrDraw draws when nothing in the opponent's hand is playable and
// otherwise plays the card chosen by choose.
func playOrDraw(state game.State, choose func(playableCards []card.Card) card.Card) game.Intent {
	playableCards := state.PlayableCards(game.SideAI)
	if len(playableCards) == 0 {
		return game.NewDrawIntent(game.SideAI)
	}
	return game.NewPlayIntent(game.SideAI, choose(playableCards).ID)
}

// suitCounts tallies the suits in hand, leaving out the card being played.
func suitCounts(hand game.Hand, played card.Card) [suit.Count]int {
	var counts [suit.Count]int
	for _, c := range hand {
		if c.ID == played.ID || !c.Suit.Valid() {
			continue
		}
		counts[c.Suit.Index()]++
	}
	return counts
}
