package session

import (
	"context"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
)

var sessions = hashmap.New()

func Register(s *Session) {
	sessions.Set(s.ID, s)
}

func Unregister(s *Session) {
	sessions.Del(s.ID)
}

func Get(id string) (*Session, bool) {
	if v, ok := sessions.Get(id); ok {
		return v.(*Session), true
	}
	return nil, false
}

func Count() int {
	count := 0
	sessions.Foreach(func(e *hashmap.Entry) {
		count++
	})
	return count
}

// Sweep closes and forgets sessions whose human has been quiet for longer
// than maxIdle, and sessions that were already closed.
func Sweep(now time.Time, maxIdle time.Duration) int {
	var stale []*Session
	sessions.Foreach(func(e *hashmap.Entry) {
		s := e.Value().(*Session)
		if s.ctx.Err() != nil || now.Sub(s.LastSeen()) > maxIdle {
			stale = append(stale, s)
		}
	})
	for _, s := range stale {
		s.Close()
		Unregister(s)
	}
	return len(stale)
}

// StartSweeper runs Sweep every interval until ctx is done.
func StartSweeper(ctx context.Context, interval time.Duration, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := Sweep(now, maxIdle); n > 0 {
				log.Infof("swept %d idle session(s), %d left\n", n, Count())
			}
		}
	}
}
