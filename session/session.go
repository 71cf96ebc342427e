package session

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/eights/config"
	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/eights/event"
	"github.com/ratel-online/eights/eights/game"
	"github.com/ratel-online/eights/eights/player"
	"github.com/ratel-online/eights/render"
)

// Output receives everything the session shows the human.
type Output interface {
	WriteString(data string) error
}

// Input hands the session one command line at a time.
type Input interface {
	AskForString(timeout time.Duration) (string, error)
}

// Session is one human-vs-AI table. It owns the current State and swaps it
// for the engine's result on every accepted intent. All transitions, human
// or opponent, happen under mu.
type Session struct {
	ID string

	name   string
	out    Output
	engine *game.Engine
	bot    player.Player
	bus    *event.Bus
	delay  time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	state    game.State
	timer    *time.Timer
	turn     uint64
	lastSeen time.Time
}

func New(ctx context.Context, cfg config.Config, name string, out Output) (*Session, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	bot := player.CreateBot(cfg.Bot, rng)
	engine, err := game.NewEngine(cfg.Rules, rng, bot)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &Session{
		ID:       uuid.NewString(),
		name:     name,
		out:      out,
		engine:   engine,
		bot:      bot,
		bus:      event.NewBus(),
		delay:    cfg.AIDelay,
		ctx:      ctx,
		cancel:   cancel,
		lastSeen: time.Now(),
	}
	s.bus.AddListener(logListener{session: s.ID})
	return s, nil
}

// Events lets callers listen to this table only.
func (s *Session) Events() *event.Bus {
	return s.bus
}

func (s *Session) BotName() string {
	return s.bot.Name()
}

func (s *Session) State() game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Done() <-chan struct{} {
	return s.ctx.Done()
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Start deals the first game.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.out.WriteString(render.Welcome(s.name)); err != nil {
		return err
	}
	return s.apply(game.NewRestartIntent())
}

// Run starts the game and feeds it commands until in fails or the session
// is closed.
func (s *Session) Run(in Input) error {
	defer s.Close()
	if err := s.Start(); err != nil {
		return err
	}
	for {
		line, err := in.AskForString(consts.IdleTimeout)
		if err != nil {
			return err
		}
		if err := s.Handle(line); err != nil {
			return err
		}
	}
}

// Handle applies one command line from the human. Bad input and illegal
// moves are reported to the human and do not end the session.
func (s *Session) Handle(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil {
		return consts.ErrorsSessionClosed
	}
	s.lastSeen = time.Now()

	intent, err := ParseCommand(line, s.state)
	if err != nil {
		return s.out.WriteString(render.Error(err))
	}
	return s.apply(intent)
}

func (s *Session) Close() {
	s.cancel()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimer()
}

// apply runs intent through the engine. Rejected intents leave the state
// alone; configuration errors are returned.
func (s *Session) apply(intent game.Intent) error {
	next, err := s.engine.Apply(s.state, intent)
	if err != nil {
		if errors.Is(err, game.ErrIllegalIntent) {
			log.Infof("session %s: rejected %T: %v\n", s.ID, intent, err)
			return s.out.WriteString(render.Error(err))
		}
		log.Errorf("session %s: %v\n", s.ID, err)
		return err
	}

	prev := s.state
	s.state = next
	if _, restarted := intent.(game.RestartIntent); restarted {
		s.bus.PublishStart(next)
	} else {
		s.bus.PublishTransition(prev, next, s.sideName)
	}
	s.schedule()
	return s.out.WriteString(render.State(next, s.bot.Name()))
}

// schedule arms the opponent's move when the new state is waiting on it.
// Any timer from an earlier state is dropped first, so a restart cancels a
// pending opponent move.
func (s *Session) schedule() {
	s.stopTimer()
	if s.state.Status != game.StatusPlaying || s.state.CurrentTurn != game.SideAI {
		return
	}
	turn := s.turn
	s.timer = time.AfterFunc(s.delay, func() {
		defer func() {
			if err := recover(); err != nil {
				async.PrintStackTrace(err)
			}
		}()
		s.opponentMove(turn)
	})
}

func (s *Session) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.turn++
}

func (s *Session) opponentMove(turn uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil || turn != s.turn {
		return
	}
	if err := s.apply(s.bot.Decide(s.state)); err != nil {
		log.Error(err)
	}
}

func (s *Session) sideName(side game.Side) string {
	switch side {
	case game.SidePlayer:
		return s.name
	case game.SideAI:
		return s.bot.Name()
	}
	return side.Name()
}
