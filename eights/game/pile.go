package game

import (
	"github.com/ratel-online/eights/eights/card"
)

// Pile is an ordered stack of cards; the top is the last element. Methods
// never modify the receiver.
type Pile []card.Card

func NewPile(cards ...card.Card) Pile {
	pile := make(Pile, len(cards))
	copy(pile, cards)
	return pile
}

func (p Pile) Add(c card.Card) Pile {
	pile := make(Pile, len(p), len(p)+1)
	copy(pile, p)
	return append(pile, c)
}

func (p Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p))
	copy(cards, p)
	return cards
}

// Pop returns the top card and the pile without it.
func (p Pile) Pop() (card.Card, Pile, bool) {
	if len(p) == 0 {
		return card.Card{}, p, false
	}
	return p[len(p)-1], NewPile(p[:len(p)-1]...), true
}

func (p Pile) Top() (card.Card, bool) {
	if len(p) == 0 {
		return card.Card{}, false
	}
	return p[len(p)-1], true
}

func (p Pile) Size() int {
	return len(p)
}
