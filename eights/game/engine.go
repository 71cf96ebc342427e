package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/msg"
)

// FallbackSuit is named when a wild card is chosen for a side with no
// usable suit preference.
const FallbackSuit = suit.Hearts

// SuitPicker chooses the suit named by the opponent's wild card. hand is
// the opponent's hand before played leaves it.
type SuitPicker interface {
	PickSuit(hand Hand, played card.Card) suit.Suit
}

// Engine applies intents to states. It keeps no game state of its own; the
// random source is only used to shuffle on Init and Restart.
type Engine struct {
	rules  Rules
	rng    *rand.Rand
	picker SuitPicker
}

func NewEngine(rules Rules, rng *rand.Rand, picker SuitPicker) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		rules:  rules,
		rng:    rng,
		picker: picker,
	}, nil
}

func (e *Engine) Rules() Rules {
	return e.rules
}

func (e *Engine) Init() (State, error) {
	return e.Restart()
}

// Restart throws away whatever game was running and deals a new one.
func (e *Engine) Restart() (State, error) {
	pool, err := BuildPool(e.rng, e.rules.NumDecks, e.rules.PoolSize)
	if err != nil {
		return State{}, err
	}
	return e.Setup(pool)
}

// Setup deals a game from an already shuffled pool.
func (e *Engine) Setup(pool Pile) (State, error) {
	playerHand, aiHand, rest, err := Deal(pool, e.rules.HandSize)
	if err != nil {
		return State{}, err
	}
	firstCard, deck, err := ChooseInitialDiscard(rest)
	if err != nil {
		return State{}, err
	}
	return State{
		Deck:        deck,
		DiscardPile: NewPile(firstCard),
		PlayerHand:  playerHand,
		AIHand:      aiHand,
		CurrentTurn: SidePlayer,
		Status:      StatusPlaying,
		CurrentSuit: firstCard.Suit,
		Winner:      SideNone,
		LastAction:  msg.Message.GameStarted(firstCard),
	}, nil
}

func (e *Engine) Apply(s State, intent Intent) (State, error) {
	switch intent := intent.(type) {
	case DrawIntent:
		return e.Draw(s, intent.Side)
	case PlayIntent:
		return e.Play(s, intent.Side, intent.CardID)
	case ChooseSuitIntent:
		return e.ChooseSuit(s, intent.Suit)
	case RestartIntent:
		next, err := e.Restart()
		if err != nil {
			return s, err
		}
		return next, nil
	default:
		return s, fmt.Errorf("%w: %T", ErrUnknownIntent, intent)
	}
}

// Draw moves the top of the draw pile into side's hand and passes the turn.
// With an empty draw pile the turn passes and nothing else changes.
func (e *Engine) Draw(s State, side Side) (State, error) {
	if err := checkTurn(s, side); err != nil {
		return s, err
	}
	next := s
	next.CurrentTurn = side.Other()

	drawnCard, deck, ok := s.Deck.Pop()
	if !ok {
		next.LastAction = msg.Message.PlayerPassedOnEmptyDeck(side.Name())
		return next, nil
	}
	next.Deck = deck
	next = next.withHand(side, s.Hand(side).AddCards(drawnCard))
	next.LastAction = msg.Message.PlayerDrewCard(side.Name())
	return next, nil
}

// Play puts the card with cardID from side's hand on the discard pile. A
// wild card from the player waits in Pending until ChooseSuit; a wild card
// from the opponent names its suit right away through the SuitPicker.
func (e *Engine) Play(s State, side Side, cardID string) (State, error) {
	if err := checkTurn(s, side); err != nil {
		return s, err
	}
	hand := s.Hand(side)
	playedCard, rest, ok := hand.RemoveCard(cardID)
	if !ok {
		return s, fmt.Errorf("%w: %s", ErrCardNotInHand, cardID)
	}
	if !s.Playable(playedCard) {
		return s, fmt.Errorf("%w: %s", ErrCardNotPlayable, playedCard)
	}

	next := s.withHand(side, rest)
	if !playedCard.IsWild() {
		return e.complete(next, side, playedCard, playedCard.Suit), nil
	}
	if side == SidePlayer {
		next.Pending = &playedCard
		next.Status = StatusSuitSelection
		next.LastAction = msg.Message.PlayerPickingSuit(side.Name(), playedCard)
		return next, nil
	}
	return e.complete(next, side, playedCard, e.pickSuit(hand, playedCard)), nil
}

// ChooseSuit finishes the player's pending wild card and hands the turn to
// the opponent.
func (e *Engine) ChooseSuit(s State, chosen suit.Suit) (State, error) {
	if s.Status == StatusGameOver {
		return s, ErrGameOver
	}
	if s.Status != StatusSuitSelection || s.Pending == nil {
		return s, fmt.Errorf("%w: %s", ErrWrongStatus, s.Status)
	}
	if !chosen.Valid() {
		return s, fmt.Errorf("%w: %d", ErrInvalidSuit, chosen)
	}
	return e.complete(s, SidePlayer, *s.Pending, chosen), nil
}

func (e *Engine) pickSuit(hand Hand, playedCard card.Card) suit.Suit {
	if e.picker == nil {
		return FallbackSuit
	}
	chosen := e.picker.PickSuit(hand, playedCard)
	if !chosen.Valid() {
		return FallbackSuit
	}
	return chosen
}

// complete discards playedCard for side, whose hand no longer holds it, and
// either ends the game or passes the turn.
func (e *Engine) complete(s State, side Side, playedCard card.Card, newSuit suit.Suit) State {
	s.DiscardPile = s.DiscardPile.Add(playedCard)
	s.CurrentSuit = newSuit
	s.Pending = nil

	if s.Hand(side).Empty() {
		s.Status = StatusGameOver
		s.Winner = side
		s.LastAction = msg.Message.WinnerFound(side.Name())
		return s
	}

	s.Status = StatusPlaying
	s.CurrentTurn = side.Other()
	if playedCard.IsWild() {
		s.LastAction = msg.Message.PlayerPlayedWild(side.Name(), playedCard, newSuit)
	} else {
		s.LastAction = msg.Message.PlayerPlayedCard(side.Name(), playedCard)
	}
	return s
}

func checkTurn(s State, side Side) error {
	switch s.Status {
	case StatusGameOver:
		return ErrGameOver
	case StatusPlaying:
	default:
		return fmt.Errorf("%w: %s", ErrWrongStatus, s.Status)
	}
	if !side.Valid() || side != s.CurrentTurn {
		return fmt.Errorf("%w: %s", ErrNotYourTurn, side)
	}
	return nil
}
