package player

import (
	"math/rand"
	"strings"
)

const (
	KindGreedy = "greedy"
	KindNaive  = "naive"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
}

// CreateBot builds the opponent of the given kind. Unknown kinds get the
// greedy player.
func CreateBot(kind string, rng *rand.Rand) Player {
	name := botNames[rng.Intn(len(botNames))]
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindNaive:
		return NewNaivePlayer(name, rng)
	default:
		return NewGreedyPlayer(name)
	}
}
