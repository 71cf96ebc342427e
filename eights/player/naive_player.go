package player

import (
	"math/rand"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
)

type naivePlayer struct {
	basicPlayer
	rng *rand.Rand
}

func NewNaivePlayer(name string, rng *rand.Rand) Player {
	return naivePlayer{basicPlayer: basicPlayer{name: name}, rng: rng}
}

func (p naivePlayer) Decide(state game.State) game.Intent {
	return playOrDraw(state, func(playableCards []card.Card) card.Card {
		return playableCards[0]
	})
}

func (p naivePlayer) PickSuit(hand game.Hand, played card.Card) suit.Suit {
	return suit.All[p.rng.Intn(suit.Count)]
}
