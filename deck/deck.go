// Package deck implements a generic deck of cards backed by a
// double-ended queue.
//
// A Deck owns exactly one deque and exposes the access pattern card games
// need: draw from either end, add to either end, shuffle, count. The card
// type carries no constraints; game semantics stay with the caller.
package deck

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/louisbranch/boardkit/deque"
	"github.com/louisbranch/boardkit/random"
)

// ErrExhausted indicates a draw from a deck with no cards left.
var ErrExhausted = errors.New("deck is exhausted")

// Deck is an ordered pile of cards. The front is the top of the pile.
type Deck[C any] struct {
	cards *deque.Deque[C]
}

// New returns an empty deck.
func New[C any]() *Deck[C] {
	return &Deck[C]{cards: deque.New[C]()}
}

// Of builds a deck from cards in order: cards[0] is the front (top) of
// the deck.
func Of[C any](cards []C) *Deck[C] {
	return &Deck[C]{cards: deque.From(cards)}
}

// DrawFront removes and returns the top card. It returns ErrExhausted
// when no cards are left.
func (d *Deck[C]) DrawFront() (C, error) {
	card, err := d.cards.PopFront()
	if err != nil {
		var zero C
		return zero, ErrExhausted
	}
	return card, nil
}

// DrawBack removes and returns the bottom card. It returns ErrExhausted
// when no cards are left.
func (d *Deck[C]) DrawBack() (C, error) {
	card, err := d.cards.PopBack()
	if err != nil {
		var zero C
		return zero, ErrExhausted
	}
	return card, nil
}

// AddFront places card on top of the deck.
func (d *Deck[C]) AddFront(card C) {
	d.cards.PushFront(card)
}

// AddBack places card under the deck.
func (d *Deck[C]) AddBack(card C) {
	d.cards.PushBack(card)
}

// Shuffle rearranges the deck into a uniformly random order derived from
// seed.
//
// # Determinism
//
// Shuffle is deterministic with respect to seed: the same seed applied to
// the same deck contents always produces the same order. The shuffle
// permutes the current contents; no card is added or dropped.
func (d *Deck[C]) Shuffle(seed int64) {
	d.ShuffleRng(rand.New(rand.NewSource(seed)))
}

// ShuffleRng shuffles using a provided random source. This is useful when
// one source drives several decks.
func (d *Deck[C]) ShuffleRng(rng *rand.Rand) {
	cards := d.cards.Items()
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	d.cards = deque.From(cards)
}

// ShuffleRandom shuffles with a source seeded from crypto/rand. The error
// reports a failed entropy read; the deck is unchanged on error.
func (d *Deck[C]) ShuffleRandom() error {
	rng, err := random.NewRand()
	if err != nil {
		return fmt.Errorf("shuffle deck: %w", err)
	}

	d.ShuffleRng(rng)
	return nil
}

// Len returns the number of cards left.
func (d *Deck[C]) Len() int {
	return d.cards.Len()
}
