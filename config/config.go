package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/eights/eights/game"
	"github.com/ratel-online/eights/eights/player"
)

const (
	EnvDecks    = "EIGHTS_DECKS"
	EnvPoolSize = "EIGHTS_POOL_SIZE"
	EnvHandSize = "EIGHTS_HAND_SIZE"
	EnvAIDelay  = "EIGHTS_AI_DELAY"
	EnvSeed     = "EIGHTS_SEED"
	EnvBot      = "EIGHTS_BOT"
	EnvTcpAddr  = "EIGHTS_TCP_ADDR"
	EnvWsAddr   = "EIGHTS_WS_ADDR"

	DefaultAIDelay = 1500 * time.Millisecond
	DefaultTcpAddr = ":9999"
	DefaultWsAddr  = ":9998"
)

type Config struct {
	Rules   game.Rules
	AIDelay time.Duration
	// Seed 0 seeds every session from the clock.
	Seed    int64
	Bot     string
	TcpAddr string
	WsAddr  string
}

func Default() Config {
	return Config{
		Rules:   game.DefaultRules(),
		AIDelay: DefaultAIDelay,
		Bot:     player.KindGreedy,
		TcpAddr: DefaultTcpAddr,
		WsAddr:  DefaultWsAddr,
	}
}

// Load reads the optional env files, then the process environment. Values
// that do not parse keep their default. The returned error comes from
// Rules.Validate and wraps game.ErrConfiguration.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		log.Errorf("config: load env file: %v\n", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from lookup, one key at a time.
func FromEnv(lookup func(string) string) (Config, error) {
	c := Default()
	c.Rules.NumDecks = intValue(lookup, EnvDecks, c.Rules.NumDecks)
	c.Rules.PoolSize = intValue(lookup, EnvPoolSize, c.Rules.PoolSize)
	c.Rules.HandSize = intValue(lookup, EnvHandSize, c.Rules.HandSize)
	c.AIDelay = durationValue(lookup, EnvAIDelay, c.AIDelay)
	c.Seed = int64Value(lookup, EnvSeed, c.Seed)
	c.TcpAddr = stringValue(lookup, EnvTcpAddr, c.TcpAddr)
	c.WsAddr = stringValue(lookup, EnvWsAddr, c.WsAddr)

	switch bot := strings.ToLower(stringValue(lookup, EnvBot, c.Bot)); bot {
	case player.KindGreedy, player.KindNaive:
		c.Bot = bot
	default:
		log.Errorf("config: unknown %s %q, using %s\n", EnvBot, bot, c.Bot)
	}

	return c, c.Rules.Validate()
}

func stringValue(lookup func(string) string, key string, fallback string) string {
	if v := strings.TrimSpace(lookup(key)); v != "" {
		return v
	}
	return fallback
}

func intValue(lookup func(string) string, key string, fallback int) int {
	v := strings.TrimSpace(lookup(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		log.Errorf("config: invalid %s %q, using %d\n", key, v, fallback)
		return fallback
	}
	return n
}

func int64Value(lookup func(string) string, key string, fallback int64) int64 {
	v := strings.TrimSpace(lookup(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Errorf("config: invalid %s %q, using %d\n", key, v, fallback)
		return fallback
	}
	return n
}

func durationValue(lookup func(string) string, key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(lookup(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		log.Errorf("config: invalid %s %q, using %s\n", key, v, fallback)
		return fallback
	}
	return d
}
