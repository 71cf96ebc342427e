package network

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/eights/config"
	"github.com/ratel-online/eights/consts"
)

type Websocket struct {
	ctx context.Context
	cfg config.Config
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebsocketServer(ctx context.Context, cfg config.Config) Websocket {
	return Websocket{ctx: ctx, cfg: cfg}
}

func (w Websocket) Serve() error {
	mux := http.NewServeMux()
	mux.HandleFunc(consts.WebsocketPath, w.serveWs)
	server := &http.Server{Addr: w.cfg.WsAddr, Handler: mux}
	go func() {
		<-w.ctx.Done()
		_ = server.Close()
	}()
	log.Infof("Websocket server listening on %s%s\n", w.cfg.WsAddr, consts.WebsocketPath)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (w Websocket) serveWs(rw http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		log.Error(err)
		return
	}
	if err := handle(w.ctx, w.cfg, protocol.NewWebsocketReadWriteCloser(conn)); err != nil {
		log.Error(err)
	}
}
