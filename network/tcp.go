package network

import (
	"context"
	"net"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/eights/config"
)

type Tcp struct {
	ctx context.Context
	cfg config.Config
}

func NewTcpServer(ctx context.Context, cfg config.Config) Tcp {
	return Tcp{ctx: ctx, cfg: cfg}
}

func (t Tcp) Serve() error {
	listener, err := net.Listen("tcp", t.cfg.TcpAddr)
	if err != nil {
		log.Error(err)
		return err
	}
	async.Async(func() {
		<-t.ctx.Done()
		_ = listener.Close()
	})
	log.Infof("Tcp server listening on %s\n", t.cfg.TcpAddr)
	for {
		conn, err := listener.Accept()
		if err != nil {
			if t.ctx.Err() != nil {
				return nil
			}
			log.Infof("listener.Accept err %v\n", err)
			continue
		}
		async.Async(func() {
			err := handle(t.ctx, t.cfg, protocol.NewTcpReadWriteCloser(conn))
			if err != nil {
				log.Error(err)
			}
		})
	}
}
