package event

// DummyListener records every payload it hears, in order.
type DummyListener struct {
	receivedPayloads []interface{}
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]interface{}, 0)}
}

func (l *DummyListener) ReceivedPayloads() []interface{} {
	return l.receivedPayloads
}

func (l *DummyListener) OnFirstCardPlayed(payload FirstCardPlayedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnCardPlayed(payload CardPlayedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnSuitPicked(payload SuitPickedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnCardDrawn(payload CardDrawnPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnPlayerPassed(payload PlayerPassedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnWinnerFound(payload WinnerFoundPayload) {
	l.receive(payload)
}

func (l *DummyListener) receive(payload interface{}) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}
