package session

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/eights/eights/event"
)

type logListener struct {
	session string
}

func (l logListener) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	log.Infof("session %s: new game, first card %s\n", l.session, payload.Card)
}

func (l logListener) OnCardPlayed(payload event.CardPlayedPayload) {
	log.Infof("session %s: %s played %s\n", l.session, payload.PlayerName, payload.Card)
}

func (l logListener) OnSuitPicked(payload event.SuitPickedPayload) {
	log.Infof("session %s: %s picked %s\n", l.session, payload.PlayerName, payload.Suit.Name())
}

func (l logListener) OnCardDrawn(payload event.CardDrawnPayload) {
	log.Infof("session %s: %s drew, %d in hand\n", l.session, payload.PlayerName, payload.HandSize)
}

func (l logListener) OnPlayerPassed(payload event.PlayerPassedPayload) {
	log.Infof("session %s: %s passed on an empty draw pile\n", l.session, payload.PlayerName)
}

func (l logListener) OnWinnerFound(payload event.WinnerFoundPayload) {
	log.Infof("session %s: %s won\n", l.session, payload.PlayerName)
}
