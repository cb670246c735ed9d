// internal/session/tiles.go
//
// Per-tile feedback and the row-reveal policy.
//
// TileStatus is deliberately count-blind: each letter is judged on its own
// against the whole secret, so a duplicated guess letter can report yellow
// even when all copies in the secret are already matched. The service-side
// words.Score implements the duplicate-aware two-pass variant; the board
// keeps the per-letter behavior.
package session

import "strings"

// Status is the color of a single tile.
type Status int

const (
	StatusWhite  Status = iota // no letter, or not yet revealed
	StatusGrey                 // letter absent from the secret
	StatusYellow               // letter present elsewhere in the secret
	StatusGreen                // letter and position match
)

func (st Status) String() string {
	switch st {
	case StatusGreen:
		return "green"
	case StatusYellow:
		return "yellow"
	case StatusGrey:
		return "grey"
	default:
		return "white"
	}
}

// Tile is one cell of the board. Letter is 0 for an empty cell.
type Tile struct {
	Letter rune
	Status Status
}

// TileStatus judges one letter at one position against the secret.
// A zero letter is always white. Case-insensitive on both sides.
func TileStatus(letter rune, pos int, secret string) Status {
	if letter == 0 {
		return StatusWhite
	}
	up := strings.ToUpper(string(letter))
	sec := strings.ToUpper(secret)
	if pos >= 0 && pos < len(sec) && sec[pos:pos+1] == up {
		return StatusGreen
	}
	if strings.Contains(sec, up) {
		return StatusYellow
	}
	return StatusGrey
}

// Row renders row i under the reveal policy:
//   - rows below the attempt cursor are frozen and always scored;
//   - the active row is scored only once the game is over (the winning or
//     losing guess is revealed), otherwise its typed letters stay white;
//   - rows after the active one are empty white tiles.
func (s *Session) Row(i int) []Tile {
	tiles := make([]Tile, s.cfg.WordLength)
	if i < 0 || i >= s.cfg.MaxTries {
		return tiles
	}

	var word string
	var scored bool
	switch {
	case i < s.attempt:
		word, scored = s.guesses[i], true
	case i == s.attempt:
		if s.over {
			word, scored = s.guesses[i], true
		} else {
			word = s.input
		}
	}

	for p := range tiles {
		if p < len(word) {
			tiles[p].Letter = rune(word[p])
		}
		if scored {
			tiles[p].Status = TileStatus(tiles[p].Letter, p, s.secret)
		}
	}
	return tiles
}
