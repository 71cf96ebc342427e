package card

import (
	"fmt"

	"github.com/ratel-online/eights/eights/card/suit"
)

// Card is an immutable playing card. ID is unique within one pool, so two
// copies of the same face from different decks remain distinguishable.
type Card struct {
	ID   string
	Suit suit.Suit
	Rank Rank
}

func New(rank Rank, s suit.Suit, deck int) Card {
	return Card{
		ID:   fmt.Sprintf("%s-%s-%d", rank, s.Name(), deck),
		Suit: s,
		Rank: rank,
	}
}

func (c Card) IsWild() bool {
	return c.Rank.IsWild()
}

// Equal compares faces, ignoring the deck the card came from.
func (c Card) Equal(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

// Less orders cards for display: rank ordinal first, then suit precedence.
func (c Card) Less(other Card) bool {
	if c.Rank.Ordinal() != other.Rank.Ordinal() {
		return c.Rank.Ordinal() < other.Rank.Ordinal()
	}
	if c.Suit != other.Suit {
		return c.Suit < other.Suit
	}
	return c.ID < other.ID
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

func (c Card) Paint() string {
	return c.Suit.Paint(c.String())
}
