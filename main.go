package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/eights/config"
	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/network"
	"github.com/ratel-online/eights/session"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	log.Infof("rules: %d deck(s), pool %d, hand %d, bot %s, delay %s\n",
		cfg.Rules.NumDecks, cfg.Rules.PoolSize, cfg.Rules.HandSize, cfg.Bot, cfg.AIDelay)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	async.Async(func() {
		session.StartSweeper(ctx, consts.RegistrySweepInterval, consts.IdleTimeout)
	})
	async.Async(func() {
		if err := network.NewWebsocketServer(ctx, cfg).Serve(); err != nil {
			log.Error(err)
		}
	})
	if err := network.NewTcpServer(ctx, cfg).Serve(); err != nil {
		log.Error(err)
	}
}
