package card

import (
	"fmt"
	"strings"
)

type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Wild is the rank that may be played on anything and names a new suit.
const Wild = Eight

// Ranks lists every rank once, in deck-building order.
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var rankNames = map[Rank]string{
	Ace:   "A",
	Two:   "2",
	Three: "3",
	Four:  "4",
	Five:  "5",
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "10",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
}

// rankOrdinals is the hand display order. Kept separate from the constant
// values so reordering the declaration never reorders a hand.
var rankOrdinals = map[Rank]int{
	Two:   0,
	Three: 1,
	Four:  2,
	Five:  3,
	Six:   4,
	Seven: 5,
	Nine:  6,
	Ten:   7,
	Jack:  8,
	Queen: 9,
	King:  10,
	Ace:   11,
	Eight: 12,
}

func (r Rank) Valid() bool {
	_, ok := rankNames[r]
	return ok
}

func (r Rank) IsWild() bool {
	return r == Wild
}

func (r Rank) Ordinal() int {
	if o, ok := rankOrdinals[r]; ok {
		return o
	}
	return len(rankOrdinals)
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "?"
}

func RankByName(name string) (Rank, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for rank, rankName := range rankNames {
		if rankName == name {
			return rank, nil
		}
	}
	return 0, fmt.Errorf("invalid rank '%s'", name)
}
