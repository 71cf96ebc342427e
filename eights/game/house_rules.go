package game

import "fmt"

const DeckSize = 52

// Rules holds the deck setup of a game.
type Rules struct {
	NumDecks int
	PoolSize int
	HandSize int
}

func DefaultRules() Rules {
	return Rules{
		NumDecks: 2,
		PoolSize: 100,
		HandSize: 8,
	}
}

// Validate checks that a pool can be built, both hands dealt and one card
// left for the discard pile.
func (r Rules) Validate() error {
	if r.NumDecks < 1 || r.PoolSize < 1 || r.HandSize < 1 {
		return fmt.Errorf("%w: decks %d, pool %d, hand %d", ErrInvalidRules, r.NumDecks, r.PoolSize, r.HandSize)
	}
	if r.PoolSize > r.NumDecks*DeckSize {
		return fmt.Errorf("%w: %d > %d", ErrPoolTooLarge, r.PoolSize, r.NumDecks*DeckSize)
	}
	if 2*r.HandSize+1 > r.PoolSize {
		return fmt.Errorf("%w: pool %d too small for two hands of %d", ErrInvalidRules, r.PoolSize, r.HandSize)
	}
	return nil
}
