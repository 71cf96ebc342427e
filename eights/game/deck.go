package game

import (
	"fmt"
	"math/rand"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
)

// BuildPool shuffles numDecks full decks together and keeps the first
// poolSize cards, so the cards left out are random.
func BuildPool(rng *rand.Rand, numDecks int, poolSize int) (Pile, error) {
	if numDecks < 1 || poolSize < 1 {
		return nil, fmt.Errorf("%w: decks %d, pool %d", ErrInvalidRules, numDecks, poolSize)
	}
	if poolSize > numDecks*DeckSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrPoolTooLarge, poolSize, numDecks*DeckSize)
	}

	cards := make([]card.Card, 0, numDecks*DeckSize)
	for deck := 0; deck < numDecks; deck++ {
		cards = append(cards, createDeckCards(deck)...)
	}

	shuffleCards(rng, cards)

	return NewPile(cards[:poolSize]...), nil
}

// Deal takes handSize cards from the front of the pool for the player, then
// handSize for the opponent.
func Deal(pool Pile, handSize int) (Hand, Hand, Pile, error) {
	if handSize < 1 || 2*handSize > len(pool) {
		return nil, nil, pool, fmt.Errorf("%w: cannot deal two hands of %d from %d cards", ErrInvalidRules, handSize, len(pool))
	}
	playerHand := NewHand(pool[:handSize]...)
	aiHand := NewHand(pool[handSize : 2*handSize]...)
	return playerHand, aiHand, NewPile(pool[2*handSize:]...), nil
}

// ChooseInitialDiscard removes the first non-wild card from the front of
// the pool.
func ChooseInitialDiscard(pool Pile) (card.Card, Pile, error) {
	for index, candidate := range pool {
		if candidate.IsWild() {
			continue
		}
		rest := make(Pile, 0, len(pool)-1)
		rest = append(rest, pool[:index]...)
		rest = append(rest, pool[index+1:]...)
		return candidate, rest, nil
	}
	return card.Card{}, pool, ErrNoInitialDiscard
}

func createDeckCards(deck int) []card.Card {
	cards := make([]card.Card, 0, DeckSize)
	for _, s := range suit.All {
		for _, rank := range card.Ranks {
			cards = append(cards, card.New(rank, s, deck))
		}
	}
	return cards
}

func shuffleCards(rng *rand.Rand, cards []card.Card) {
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
