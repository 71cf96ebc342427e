package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
)

// State is the whole game. Every accepted transition returns a new State;
// none of them modifies the one it was given.
type State struct {
	Deck        Pile
	DiscardPile Pile
	PlayerHand  Hand
	AIHand      Hand
	CurrentTurn Side
	Status      Status
	CurrentSuit suit.Suit
	Winner      Side
	// Pending holds the player's wild card between Play and ChooseSuit.
	Pending    *card.Card
	LastAction string
}

func (s State) Hand(side Side) Hand {
	switch side {
	case SidePlayer:
		return s.PlayerHand
	case SideAI:
		return s.AIHand
	}
	return nil
}

func (s State) withHand(side Side, hand Hand) State {
	switch side {
	case SidePlayer:
		s.PlayerHand = hand
	case SideAI:
		s.AIHand = hand
	}
	return s
}

func (s State) TopDiscard() (card.Card, bool) {
	return s.DiscardPile.Top()
}

// Playable reports whether c could be played right now, ignoring whose turn
// it is.
func (s State) Playable(c card.Card) bool {
	topDiscard, _ := s.TopDiscard()
	return Playable(c, topDiscard, s.CurrentSuit)
}

func (s State) PlayableCards(side Side) []card.Card {
	topDiscard, _ := s.TopDiscard()
	return s.Hand(side).PlayableCards(topDiscard, s.CurrentSuit)
}

func (s State) DeckCount() int {
	return s.Deck.Size()
}

func (s State) HandCount(side Side) int {
	return s.Hand(side).Size()
}

func (s State) IsOver() bool {
	return s.Status == StatusGameOver
}

// Cards lists every card the game owns, wherever it currently is.
func (s State) Cards() []card.Card {
	cards := make([]card.Card, 0, len(s.Deck)+len(s.DiscardPile)+len(s.PlayerHand)+len(s.AIHand)+1)
	cards = append(cards, s.Deck...)
	cards = append(cards, s.DiscardPile...)
	cards = append(cards, s.PlayerHand...)
	cards = append(cards, s.AIHand...)
	if s.Pending != nil {
		cards = append(cards, *s.Pending)
	}
	return cards
}

func (s State) String() string {
	var lines []string
	if topDiscard, ok := s.TopDiscard(); ok {
		lines = append(lines, fmt.Sprintf("Top card: %s, current suit: %s", topDiscard, s.CurrentSuit.Name()))
	}
	lines = append(lines, fmt.Sprintf("Draw pile: %d card(s)", s.DeckCount()))
	lines = append(lines, fmt.Sprintf("AI hand: %d card(s)", s.HandCount(SideAI)))
	lines = append(lines, fmt.Sprintf("Your hand: %s", []card.Card(s.PlayerHand.Sorted())))
	lines = append(lines, fmt.Sprintf("Status: %s, turn: %s", s.Status, s.CurrentTurn))
	return strings.Join(lines, "\n")
}
