package session_test

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/session"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	incoming chan string

	mu      sync.Mutex
	written []string
	closed  bool
}

func newFakeConn() *fakeConn {
	return &fakeConn{incoming: make(chan string, 32)}
}

func (c *fakeConn) Read() (*protocol.Packet, error) {
	line, ok := <-c.incoming
	if !ok {
		return nil, io.EOF
	}
	return &protocol.Packet{Body: []byte(line)}, nil
}

func (c *fakeConn) Write(packet protocol.Packet) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.written = append(c.written, string(packet.Body))
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) Written() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.written...)
}

// checkedConn counts writes that start while another one is still running.
type checkedConn struct {
	incoming chan string

	active   int32
	writes   int32
	overlaps int32
}

func newCheckedConn() *checkedConn {
	return &checkedConn{incoming: make(chan string, 64)}
}

func (c *checkedConn) Read() (*protocol.Packet, error) {
	line, ok := <-c.incoming
	if !ok {
		return nil, io.EOF
	}
	return &protocol.Packet{Body: []byte(line)}, nil
}

func (c *checkedConn) Write(packet protocol.Packet) error {
	if atomic.AddInt32(&c.active, 1) > 1 {
		atomic.AddInt32(&c.overlaps, 1)
	}
	atomic.AddInt32(&c.writes, 1)
	time.Sleep(200 * time.Microsecond)
	atomic.AddInt32(&c.active, -1)
	return nil
}

func (c *checkedConn) Close() error {
	return nil
}

func (c *checkedConn) Writes() int32 {
	return atomic.LoadInt32(&c.writes)
}

func (c *checkedConn) Overlaps() int32 {
	return atomic.LoadInt32(&c.overlaps)
}

func TestPlayerWritesOneAtATime(t *testing.T) {
	conn := newCheckedConn()
	p := session.NewPlayer(conn, &model.AuthInfo{ID: 2, Name: "Ann"})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_ = p.WriteString("x")
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int32(80), conn.Writes())
	require.Zero(t, conn.Overlaps())
}

func TestPlayerOfflineStopsBlockedListener(t *testing.T) {
	conn := newFakeConn()
	p := session.NewPlayer(conn, &model.AuthInfo{ID: 4, Name: "Ann"})
	for i := 0; i < 12; i++ {
		conn.incoming <- "d"
	}

	done := make(chan error, 1)
	go func() {
		done <- p.Listening()
	}()
	time.Sleep(20 * time.Millisecond)
	p.Offline()

	select {
	case err := <-done:
		require.Equal(t, consts.ErrorsChanClosed, err)
	case <-time.After(time.Second):
		t.Fatal("listener still blocked after going offline")
	}
}

func TestPlayerAskForString(t *testing.T) {
	conn := newFakeConn()
	p := session.NewPlayer(conn, &model.AuthInfo{ID: 7, Name: "Ann"})
	require.Equal(t, "Ann[7]", p.String())
	require.True(t, p.Online())

	done := make(chan error, 1)
	go func() {
		done <- p.Listening()
	}()

	conn.incoming <- " 3 "
	line, err := p.AskForString(time.Second)
	require.NoError(t, err)
	require.Equal(t, "3", line)
	require.Equal(t, []string{consts.IsStart, consts.IsStop}, conn.Written())

	conn.incoming <- "EXIT"
	_, err = p.AskForString(time.Second)
	require.Equal(t, consts.ErrorsExist, err)

	_, err = p.AskForString(10 * time.Millisecond)
	require.Equal(t, consts.ErrorsTimeout, err)

	close(conn.incoming)
	require.True(t, errors.Is(<-done, io.EOF))
	_, err = p.AskForString(time.Second)
	require.Equal(t, consts.ErrorsChanClosed, err)

	p.Offline()
	p.Offline()
	require.False(t, p.Online())
	require.True(t, conn.closed)
}

func TestPlayerWriteError(t *testing.T) {
	conn := newFakeConn()
	p := session.NewPlayer(conn, &model.AuthInfo{ID: 1, Name: "Ann"})

	require.Equal(t, consts.ErrorsExist, p.WriteError(consts.ErrorsExist))
	require.NoError(t, p.WriteError(consts.ErrorsInputInvalid))
	require.Equal(t, []string{"Input invalid. \n"}, conn.Written())
}
