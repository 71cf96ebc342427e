package event

// CardDrawnPayload leaves out the card itself; the opponent's draws are
// hidden from the human.
type CardDrawnPayload struct {
	PlayerName string
	HandSize   int
}

type CardDrawnListener interface {
	OnCardDrawn(CardDrawnPayload)
}

type CardDrawnEmitter struct {
	listeners []CardDrawnListener
}

func (e *CardDrawnEmitter) AddListener(listener CardDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *CardDrawnEmitter) Emit(payload CardDrawnPayload) {
	for _, listener := range e.listeners {
		listener.OnCardDrawn(payload)
	}
}
