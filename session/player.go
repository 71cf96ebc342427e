package session

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/eights/consts"
)

// Conn is the framed connection a human plays through.
type Conn interface {
	Read() (*protocol.Packet, error)
	Write(packet protocol.Packet) error
	Close() error
}

// Player is the human side of a session.
type Player struct {
	ID   int64
	Name string

	conn   Conn
	data   chan *protocol.Packet
	done   chan struct{}
	online int32

	// writeMu serialises writes; the opponent timer and the input loop
	// both write to conn.
	writeMu sync.Mutex
}

func NewPlayer(conn Conn, info *model.AuthInfo) *Player {
	return &Player{
		ID:     info.ID,
		Name:   info.Name,
		conn:   conn,
		data:   make(chan *protocol.Packet, 8),
		done:   make(chan struct{}),
		online: 1,
	}
}

func (p *Player) Online() bool {
	return atomic.LoadInt32(&p.online) == 1
}

// Listening pumps packets from the connection until it fails or the player
// goes offline. It is the only writer of the data channel and closes it on
// the way out.
func (p *Player) Listening() error {
	defer close(p.data)
	for {
		packet, err := p.conn.Read()
		if err != nil {
			return err
		}
		select {
		case p.data <- packet:
		case <-p.done:
			return consts.ErrorsChanClosed
		}
	}
}

func (p *Player) Offline() {
	if !atomic.CompareAndSwapInt32(&p.online, 1, 0) {
		return
	}
	close(p.done)
	if err := p.conn.Close(); err != nil {
		log.Error(err)
	}
}

func (p *Player) WriteString(data string) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()
	return p.conn.Write(protocol.Packet{
		Body: []byte(data),
	})
}

func (p *Player) WriteError(err error) error {
	if err == consts.ErrorsExist {
		return err
	}
	return p.WriteString(err.Error() + "\n")
}

// AskForString waits for the next command. "exit" and a closed connection
// come back as errors whose Exit flag is set.
func (p *Player) AskForString(timeout time.Duration) (string, error) {
	_ = p.WriteString(consts.IsStart)
	defer func() {
		_ = p.WriteString(consts.IsStop)
	}()

	var packet *protocol.Packet
	select {
	case packet = <-p.data:
	case <-time.After(timeout):
		return "", consts.ErrorsTimeout
	}
	if packet == nil {
		return "", consts.ErrorsChanClosed
	}
	line := strings.TrimSpace(packet.String())
	if strings.ToLower(line) == "exit" {
		return "", consts.ErrorsExist
	}
	return line, nil
}

func (p *Player) String() string {
	return fmt.Sprintf("%s[%d]", p.Name, p.ID)
}
