package game

type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideAI
)

func (s Side) Valid() bool {
	return s == SidePlayer || s == SideAI
}

func (s Side) Other() Side {
	switch s {
	case SidePlayer:
		return SideAI
	case SideAI:
		return SidePlayer
	}
	return SideNone
}

// Name is how the transcript refers to the side.
func (s Side) Name() string {
	switch s {
	case SidePlayer:
		return "You"
	case SideAI:
		return "AI"
	}
	return "Nobody"
}

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAI:
		return "ai"
	}
	return "none"
}

type Status int

const (
	StatusWaiting Status = iota
	StatusPlaying
	StatusSuitSelection
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusPlaying:
		return "playing"
	case StatusSuitSelection:
		return "suit_selection"
	case StatusGameOver:
		return "game_over"
	}
	return "unknown"
}
