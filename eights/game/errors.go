package game

import (
	"errors"
	"fmt"
)

// ErrConfiguration marks a deck setup that can never produce a game.
var ErrConfiguration = errors.New("configuration error")

var (
	ErrInvalidRules     = fmt.Errorf("%w: invalid house rules", ErrConfiguration)
	ErrPoolTooLarge     = fmt.Errorf("%w: pool size exceeds available cards", ErrConfiguration)
	ErrNoInitialDiscard = fmt.Errorf("%w: no non-wild card left to start the discard pile", ErrConfiguration)
)

// ErrIllegalIntent marks a caller contract violation. The state passed in
// is returned untouched alongside any error wrapping it.
var ErrIllegalIntent = errors.New("illegal intent")

var (
	ErrGameOver        = fmt.Errorf("%w: game is over", ErrIllegalIntent)
	ErrWrongStatus     = fmt.Errorf("%w: not allowed in current status", ErrIllegalIntent)
	ErrNotYourTurn     = fmt.Errorf("%w: not your turn", ErrIllegalIntent)
	ErrCardNotInHand   = fmt.Errorf("%w: card is not in hand", ErrIllegalIntent)
	ErrCardNotPlayable = fmt.Errorf("%w: card is not playable", ErrIllegalIntent)
	ErrInvalidSuit     = fmt.Errorf("%w: invalid suit", ErrIllegalIntent)
	ErrUnknownIntent   = fmt.Errorf("%w: unknown intent", ErrIllegalIntent)
)
