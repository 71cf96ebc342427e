package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
	"github.com/ratel-online/eights/eights/msg"
)

var (
	highlight = color.New(color.Bold).SprintFunc()
	dim       = color.New(color.Faint).SprintFunc()
)

// PlayableMark follows every card of the human's hand that can be played
// right now.
const PlayableMark = "*"

func Welcome(playerName string) string {
	return panel(fmt.Sprintf("Hi %s! %s", playerName, msg.Message.Welcome()))
}

// State draws s from the human's seat. Hand positions are 1-based over the
// sorted hand, the same positions the play command takes.
func State(s game.State, opponentName string) string {
	var lines []string
	if s.LastAction != "" {
		lines = append(lines, highlight(s.LastAction))
	}
	if topDiscard, ok := s.TopDiscard(); ok {
		lines = append(lines, fmt.Sprintf("Top card: %s   Suit: %s", topDiscard.Paint(), s.CurrentSuit.Paintf("%s %s", s.CurrentSuit.Symbol(), s.CurrentSuit.Name())))
	}
	lines = append(lines, fmt.Sprintf("Draw pile: %d   %s: %d card(s)", s.DeckCount(), opponentName, s.HandCount(game.SideAI)))
	lines = append(lines, "Your hand: "+Hand(s))
	lines = append(lines, prompt(s, opponentName))
	return panel(lines...)
}

// Hand lists the human's cards in display order, marking the playable ones
// when it is their move.
func Hand(s game.State) string {
	markPlayable := s.Status == game.StatusPlaying && s.CurrentTurn == game.SidePlayer
	hand := s.PlayerHand.Sorted()
	items := make([]string, 0, len(hand))
	for i, c := range hand {
		item := fmt.Sprintf("%d.%s", i+1, c.Paint())
		if markPlayable && s.Playable(c) {
			item += PlayableMark
		}
		items = append(items, item)
	}
	return strings.Join(items, " ")
}

func prompt(s game.State, opponentName string) string {
	switch s.Status {
	case game.StatusSuitSelection:
		options := make([]string, 0, suit.Count)
		for _, option := range suit.All {
			options = append(options, option.Paintf("%s(%s)", option.Name()[:1], option.Symbol()))
		}
		return "Pick a suit: " + strings.Join(options, " ")
	case game.StatusGameOver:
		winner := "You win!"
		if s.Winner == game.SideAI {
			winner = opponentName + " wins!"
		}
		return highlight(winner) + " Type r to play again."
	case game.StatusPlaying:
		if s.CurrentTurn == game.SideAI {
			return dim(opponentName + " is thinking...")
		}
		return "Your turn: card number to play, d to draw, r to restart."
	}
	return dim("Waiting for the deal...")
}

func Error(err error) string {
	return panel(strings.TrimSpace(err.Error()))
}

// panel joins lines into one packet body ending in a newline.
func panel(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
