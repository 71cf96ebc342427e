package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	AuthTimeout = 3 * time.Second
	// IdleTimeout closes sessions whose human has not sent anything for a
	// while.
	IdleTimeout = 30 * time.Minute
	// RegistrySweepInterval is how often abandoned sessions are looked for.
	RegistrySweepInterval = 1 * time.Minute

	WebsocketPath = "/ws"
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist         = NewErr(1, true, "Exist. ")
	ErrorsChanClosed    = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout       = NewErr(1, true, "Timeout. ")
	ErrorsInputInvalid  = NewErr(1, false, "Input invalid. ")
	ErrorsAuthFail      = NewErr(1, true, "Auth fail. ")
	ErrorsSessionClosed = NewErr(1, true, "Session closed. ")
	ErrorsCardIndex     = NewErr(1, false, "No card at that position. ")
	ErrorsCardNotHeld   = NewErr(1, false, "You do not hold that card. ")
	ErrorsPickSuit      = NewErr(1, false, "Pick a suit first: h, d, c or s. ")
	ErrorsGameOver      = NewErr(1, false, "Game over, type r to play again. ")
)
