package network

import (
	"context"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/eights/config"
	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/session"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

// handle runs one connection from auth to disconnect. Every connection gets
// its own table.
func handle(ctx context.Context, cfg config.Config, rwc protocol.ReadWriteCloser) error {
	c := network.Wrapper(rwc)
	defer func() {
		err := c.Close()
		if err != nil {
			log.Error(err)
		}
	}()
	log.Info("new player connected! ")
	authInfo, err := loginAuth(c, consts.AuthTimeout)
	if err != nil || authInfo.ID == 0 {
		if err == nil {
			err = consts.ErrorsAuthFail
		}
		_ = c.Write(protocol.ErrorPacket(err))
		return err
	}

	player := session.NewPlayer(c, authInfo)
	s, err := session.New(ctx, cfg, player.Name, player)
	if err != nil {
		_ = player.WriteError(err)
		return err
	}
	session.Register(s)
	log.Infof("player %s auth accessed, session %s against %s\n", player, s.ID, s.BotName())

	async.Async(func() {
		err := s.Run(player)
		if err != nil && err != consts.ErrorsExist {
			log.Infof("session %s ended: %v\n", s.ID, err)
		}
		session.Unregister(s)
		player.Offline()
	})
	defer player.Offline()
	defer s.Close()
	return player.Listening()
}

func loginAuth(c *network.Conn, timeout time.Duration) (*model.AuthInfo, error) {
	authChan := make(chan *model.AuthInfo, 1)
	async.Async(func() {
		packet, err := c.Read()
		if err != nil {
			log.Error(err)
			return
		}
		authInfo := &model.AuthInfo{}
		err = packet.Unmarshal(authInfo)
		if err != nil {
			log.Error(err)
			return
		}
		authChan <- authInfo
	})
	select {
	case authInfo := <-authChan:
		return authInfo, nil
	case <-time.After(timeout):
		return nil, consts.ErrorsAuthFail
	}
}
