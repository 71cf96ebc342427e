package session

import (
	"time"

	"github.com/ratel-online/eights/eights/game"
)

// Inject replaces the table with a hand-built position.
func (s *Session) Inject(state game.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.schedule()
}

func (s *Session) SetLastSeen(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = at
}
