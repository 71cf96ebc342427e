package event

type PlayerPassedPayload struct {
	PlayerName string
}

type PlayerPassedListener interface {
	OnPlayerPassed(PlayerPassedPayload)
}

type PlayerPassedEmitter struct {
	listeners []PlayerPassedListener
}

func (e *PlayerPassedEmitter) AddListener(listener PlayerPassedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *PlayerPassedEmitter) Emit(payload PlayerPassedPayload) {
	for _, listener := range e.listeners {
		listener.OnPlayerPassed(payload)
	}
}
