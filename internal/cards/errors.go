package cards

import "errors"

// ErrBadColour is returned when a colour letter is not one of P, B, Y, R.
var ErrBadColour = errors.New("cards: invalid colour letter")

// ErrBadDeck is returned when a deckfile line or the deckfile as a whole
// does not match the required format.
var ErrBadDeck = errors.New("cards: invalid deck")
