package session

import (
	"strconv"
	"strings"

	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
)

// ParseCommand turns one line from the human into an intent against s.
// Numbers pick a card by its 1-based position in the sorted hand; a face
// like "8h" picks that card. While a suit is being picked, "d" names
// diamonds instead of drawing.
func ParseCommand(line string, s game.State) (game.Intent, error) {
	command := strings.ToLower(strings.TrimSpace(line))
	switch command {
	case "":
		return nil, consts.ErrorsInputInvalid
	case "r", "restart":
		return game.NewRestartIntent(), nil
	}

	if s.Status == game.StatusSuitSelection {
		chosen, err := suit.ByName(command)
		if err != nil {
			return nil, consts.ErrorsPickSuit
		}
		return game.NewChooseSuitIntent(chosen), nil
	}
	if s.Status == game.StatusGameOver {
		return nil, consts.ErrorsGameOver
	}

	if command == "d" || command == "draw" {
		return game.NewDrawIntent(game.SidePlayer), nil
	}

	hand := s.PlayerHand.Sorted()
	position, err := strconv.Atoi(command)
	if err != nil {
		return parseFace(command, hand)
	}
	if position < 1 || position > len(hand) {
		return nil, consts.ErrorsCardIndex
	}
	return game.NewPlayIntent(game.SidePlayer, hand[position-1].ID), nil
}

// parseFace reads a card written as rank then suit, like "8h", "10♠" or
// "qd", and picks the first matching card in display order.
func parseFace(command string, hand game.Hand) (game.Intent, error) {
	runes := []rune(command)
	if len(runes) < 2 {
		return nil, consts.ErrorsInputInvalid
	}
	rank, err := card.RankByName(string(runes[:len(runes)-1]))
	if err != nil {
		return nil, consts.ErrorsInputInvalid
	}
	s, err := suit.ByName(string(runes[len(runes)-1:]))
	if err != nil {
		return nil, consts.ErrorsInputInvalid
	}
	held, ok := hand.FindFace(card.New(rank, s, 0))
	if !ok {
		return nil, consts.ErrorsCardNotHeld
	}
	return game.NewPlayIntent(game.SidePlayer, held.ID), nil
}
