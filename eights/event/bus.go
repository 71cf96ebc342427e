package event

// Bus groups the emitters of one table. Every session owns its own Bus, so
// listeners only hear about their own game.
type Bus struct {
	FirstCardPlayed *FirstCardPlayedEmitter
	CardPlayed      *CardPlayedEmitter
	SuitPicked      *SuitPickedEmitter
	CardDrawn       *CardDrawnEmitter
	PlayerPassed    *PlayerPassedEmitter
	WinnerFound     *WinnerFoundEmitter
}

func NewBus() *Bus {
	return &Bus{
		FirstCardPlayed: &FirstCardPlayedEmitter{},
		CardPlayed:      &CardPlayedEmitter{},
		SuitPicked:      &SuitPickedEmitter{},
		CardDrawn:       &CardDrawnEmitter{},
		PlayerPassed:    &PlayerPassedEmitter{},
		WinnerFound:     &WinnerFoundEmitter{},
	}
}

// Listener hears every event a Bus emits.
type Listener interface {
	FirstCardPlayedListener
	CardPlayedListener
	SuitPickedListener
	CardDrawnListener
	PlayerPassedListener
	WinnerFoundListener
}

func (b *Bus) AddListener(listener Listener) {
	b.FirstCardPlayed.AddListener(listener)
	b.CardPlayed.AddListener(listener)
	b.SuitPicked.AddListener(listener)
	b.CardDrawn.AddListener(listener)
	b.PlayerPassed.AddListener(listener)
	b.WinnerFound.AddListener(listener)
}
