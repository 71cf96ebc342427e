package event

import "github.com/ratel-online/eights/eights/card/suit"

type SuitPickedPayload struct {
	PlayerName string
	Suit       suit.Suit
}

type SuitPickedListener interface {
	OnSuitPicked(SuitPickedPayload)
}

type SuitPickedEmitter struct {
	listeners []SuitPickedListener
}

func (e *SuitPickedEmitter) AddListener(listener SuitPickedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *SuitPickedEmitter) Emit(payload SuitPickedPayload) {
	for _, listener := range e.listeners {
		listener.OnSuitPicked(payload)
	}
}
