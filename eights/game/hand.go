package game

import (
	"sort"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
)

// Hand is the set of cards owned by one side. Storage order is the order
// cards were received; draws append to the end.
type Hand []card.Card

func NewHand(cards ...card.Card) Hand {
	hand := make(Hand, len(cards))
	copy(hand, cards)
	return hand
}

func (h Hand) AddCards(cards ...card.Card) Hand {
	hand := make(Hand, len(h), len(h)+len(cards))
	copy(hand, h)
	return append(hand, cards...)
}

func (h Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h))
	copy(cards, h)
	return cards
}

func (h Hand) Empty() bool {
	return len(h) == 0
}

// FindFace returns the first card in hand with the same rank and suit as
// face, whichever deck it came from.
func (h Hand) FindFace(face card.Card) (card.Card, bool) {
	for _, c := range h {
		if c.Equal(face) {
			return c, true
		}
	}
	return card.Card{}, false
}

func (h Hand) PlayableCards(topDiscard card.Card, currentSuit suit.Suit) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h {
		if Playable(candidateCard, topDiscard, currentSuit) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// RemoveCard removes the card with the given id, keeping the order of the
// remaining cards.
func (h Hand) RemoveCard(id string) (card.Card, Hand, bool) {
	for index, cardInHand := range h {
		if cardInHand.ID == id {
			hand := make(Hand, 0, len(h)-1)
			hand = append(hand, h[:index]...)
			hand = append(hand, h[index+1:]...)
			return cardInHand, hand, true
		}
	}
	return card.Card{}, h, false
}

func (h Hand) Size() int {
	return len(h)
}

// Sorted returns the canonical display order.
func (h Hand) Sorted() Hand {
	hand := NewHand(h...)
	sort.SliceStable(hand, func(i, j int) bool { return hand[i].Less(hand[j]) })
	return hand
}
