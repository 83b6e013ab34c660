package cards

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Deck is an ordered sequence of cards loaded once at start-up. Draw
// removes cards from it, so each game draws from its own copy made via
// Clone.
type Deck struct {
	cards []Card
}

// Len reports how many cards remain in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Top returns the next card to reveal and whether the deck was non-empty.
func (d *Deck) Top() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[0], true
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, bool) {
	c, ok := d.Top()
	if !ok {
		return Card{}, false
	}
	d.cards = d.cards[1:]
	return c, true
}

// Clone returns an independent copy of the cards still in the deck, in
// the same order, for a fresh game. Cards already drawn are not restored.
func (d *Deck) Clone() *Deck {
	cp := make([]Card, len(d.cards))
	copy(cp, d.cards)
	return &Deck{cards: cp}
}

// ParseDeck parses a deckfile: one card per line "D:V:P,B,Y,R", no blank
// lines, no trailing whitespace, the file must end in a newline, and at
// least one card must be present.
func ParseDeck(r io.Reader) (*Deck, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cards: reading deckfile: %w", err)
	}
	if len(raw) == 0 || raw[len(raw)-1] != '\n' {
		return nil, fmt.Errorf("%w: deckfile must end in a newline", ErrBadDeck)
	}
	text := string(raw[:len(raw)-1])
	lines := strings.Split(text, "\n")

	cards := make([]Card, 0, len(lines))
	for i, line := range lines {
		if line == "" {
			return nil, fmt.Errorf("%w: blank line %d", ErrBadDeck, i+1)
		}
		if strings.TrimRight(line, " \t") != line {
			return nil, fmt.Errorf("%w: trailing whitespace on line %d", ErrBadDeck, i+1)
		}
		card, err := parseCardLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrBadDeck, i+1, err)
		}
		cards = append(cards, card)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: deck has zero cards", ErrBadDeck)
	}
	return &Deck{cards: cards}, nil
}

// parseCardLine parses a single "D:V:P,B,Y,R" line.
func parseCardLine(line string) (Card, error) {
	parts := strings.Split(line, ":")
	if len(parts) != 3 {
		return Card{}, fmt.Errorf("expected 3 colon-separated fields, got %d", len(parts))
	}
	discount, err := ParseRealColour(parts[0])
	if err != nil {
		return Card{}, err
	}
	value, err := parseNonNegative(parts[1])
	if err != nil {
		return Card{}, fmt.Errorf("bad value: %w", err)
	}
	priceFields := strings.Split(parts[2], ",")
	if len(priceFields) != 4 {
		return Card{}, fmt.Errorf("expected 4 comma-separated prices, got %d", len(priceFields))
	}
	var price Vector
	for i, f := range priceFields {
		n, err := parseNonNegative(f)
		if err != nil {
			return Card{}, fmt.Errorf("bad price field %d: %w", i, err)
		}
		price[i] = n
	}
	return Card{Discount: discount, Value: value, Price: price}, nil
}

func parseNonNegative(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}
	return n, nil
}
