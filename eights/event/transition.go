package event

import "github.com/ratel-online/eights/eights/game"

// PublishStart announces a freshly dealt game.
func (b *Bus) PublishStart(s game.State) {
	if firstCard, ok := s.TopDiscard(); ok {
		b.FirstCardPlayed.Emit(FirstCardPlayedPayload{Card: firstCard})
	}
}

// PublishTransition compares two consecutive states of one game and emits
// what happened between them. name turns a side into the name listeners
// see.
func (b *Bus) PublishTransition(prev game.State, next game.State, name func(game.Side) string) {
	actor := prev.CurrentTurn

	switch {
	case next.Pending != nil && prev.Pending == nil:
		b.CardPlayed.Emit(CardPlayedPayload{PlayerName: name(actor), Card: *next.Pending})

	case next.DiscardPile.Size() > prev.DiscardPile.Size():
		playedCard, _ := next.TopDiscard()
		if prev.Pending == nil {
			b.CardPlayed.Emit(CardPlayedPayload{PlayerName: name(actor), Card: playedCard})
		}
		if playedCard.IsWild() {
			b.SuitPicked.Emit(SuitPickedPayload{PlayerName: name(actor), Suit: next.CurrentSuit})
		}

	case next.HandCount(actor) > prev.HandCount(actor):
		b.CardDrawn.Emit(CardDrawnPayload{PlayerName: name(actor), HandSize: next.HandCount(actor)})

	case next.CurrentTurn != prev.CurrentTurn:
		b.PlayerPassed.Emit(PlayerPassedPayload{PlayerName: name(actor)})
	}

	if next.Winner != game.SideNone && prev.Winner == game.SideNone {
		b.WinnerFound.Emit(WinnerFoundPayload{PlayerName: name(next.Winner)})
	}
}
