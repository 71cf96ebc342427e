package game

import "github.com/ratel-online/eights/eights/card/suit"

// Intent is anything a side asks the engine to do.
type Intent interface{}

type DrawIntent struct {
	Side Side
}

func NewDrawIntent(side Side) Intent {
	return DrawIntent{Side: side}
}

type PlayIntent struct {
	Side   Side
	CardID string
}

func NewPlayIntent(side Side, cardID string) Intent {
	return PlayIntent{Side: side, CardID: cardID}
}

type ChooseSuitIntent struct {
	Suit suit.Suit
}

func NewChooseSuitIntent(s suit.Suit) Intent {
	return ChooseSuitIntent{Suit: s}
}

type RestartIntent struct{}

func NewRestartIntent() Intent {
	return RestartIntent{}
}
