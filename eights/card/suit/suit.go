package suit

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type Suit int

const (
	None Suit = iota
	Hearts
	Diamonds
	Clubs
	Spades
)

// Count is the size of the closed enumeration, excluding None.
const Count = 4

// All lists the suits in tie-break precedence order.
var All = [Count]Suit{Hearts, Diamonds, Clubs, Spades}

type suitStruct struct {
	name          string
	symbol        string
	colorFunction func(string, ...interface{}) string
}

var suits = map[Suit]*suitStruct{
	Hearts: {
		name:          "hearts",
		symbol:        "♥",
		colorFunction: color.New(color.FgHiRed).SprintfFunc(),
	},
	Diamonds: {
		name:          "diamonds",
		symbol:        "♦",
		colorFunction: color.New(color.FgHiRed).SprintfFunc(),
	},
	Clubs: {
		name:          "clubs",
		symbol:        "♣",
		colorFunction: color.New(color.FgHiWhite).SprintfFunc(),
	},
	Spades: {
		name:          "spades",
		symbol:        "♠",
		colorFunction: color.New(color.FgHiWhite).SprintfFunc(),
	},
}

func (s Suit) Valid() bool {
	_, ok := suits[s]
	return ok
}

// Index maps a valid suit onto [0, Count) for fixed-size tallies.
func (s Suit) Index() int {
	return int(s) - 1
}

func (s Suit) Name() string {
	if v, ok := suits[s]; ok {
		return v.name
	}
	return "none"
}

func (s Suit) Symbol() string {
	if v, ok := suits[s]; ok {
		return v.symbol
	}
	return "?"
}

func (s Suit) String() string {
	return s.Symbol()
}

func (s Suit) Paint(text string) string {
	if v, ok := suits[s]; ok {
		return v.colorFunction(text)
	}
	return text
}

func (s Suit) Paintf(text string, args ...interface{}) string {
	if v, ok := suits[s]; ok {
		return v.colorFunction(text, args...)
	}
	return fmt.Sprintf(text, args...)
}

// ByName accepts a full suit name, its first letter or its symbol.
func ByName(name string) (Suit, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return None, fmt.Errorf("invalid suit '%s'", name)
	}
	for _, s := range All {
		v := suits[s]
		if name == v.name || name == v.symbol || name == v.name[:1] {
			return s, nil
		}
	}
	return None, fmt.Errorf("invalid suit '%s'", name)
}
