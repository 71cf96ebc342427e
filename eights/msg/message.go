package msg

import (
	"fmt"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
)

var Message = MessageWriter{}

// MessageWriter builds the one-line transcript stored as a state's last
// action. Lines carry no trailing newline and no terminal colors.
type MessageWriter struct{}

func (m MessageWriter) Welcome() string {
	return "Welcome to Crazy Eights!"
}

func (m MessageWriter) GameStarted(firstCard card.Card) string {
	return fmt.Sprintf("Game started! First card is %s. Your turn.", firstCard)
}

func (m MessageWriter) PlayerDrewCard(playerName string) string {
	return fmt.Sprintf("%s drew a card!", playerName)
}

func (m MessageWriter) PlayerPassedOnEmptyDeck(playerName string) string {
	return fmt.Sprintf("Draw pile is empty, %s passed!", playerName)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, played card.Card) string {
	return fmt.Sprintf("%s played %s!", playerName, played)
}

func (m MessageWriter) PlayerPickingSuit(playerName string, played card.Card) string {
	return fmt.Sprintf("%s played %s, pick a suit!", playerName, played)
}

func (m MessageWriter) PlayerPlayedWild(playerName string, played card.Card, picked suit.Suit) string {
	return fmt.Sprintf("%s played %s and picked suit %s!", playerName, played, picked)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return fmt.Sprintf("%s played the last card and wins!", playerName)
}
