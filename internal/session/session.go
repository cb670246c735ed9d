// internal/session/session.go
//
// Game-state object for a single daily-word session.
// Responsibilities:
//   - Own the secret word, guess list, attempt cursor, and in-progress input.
//   - Validate and apply submissions (length gate, win, final-attempt loss).
//   - Track state transitions: playing → won/lost, and reset back to playing.
//
// Notes:
//   - Dimensions come from an injected Config, not package constants.
//   - All stored words are uppercase; input is uppercased on entry.
//   - The secret never changes across Reset; only a new session gets a new word.
package session

import (
	"errors"
	"strings"
	"unicode"
)

// Config fixes the board dimensions for one session.
type Config struct {
	WordLength int // letters per word
	MaxTries   int // rows on the board
}

// DefaultConfig returns the classic 6x5 board.
func DefaultConfig() Config {
	return Config{WordLength: 5, MaxTries: 6}
}

// State is the coarse lifecycle of a session.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "playing"
	}
}

// Outcome reports what a successful Submit did.
type Outcome int

const (
	OutcomeContinue Outcome = iota // guess recorded, attempts remain
	OutcomeWin                     // guess matched the secret
	OutcomeLoss                    // final attempt spent without a match
)

var (
	// ErrIncompleteGuess is returned by Submit when the in-progress guess is
	// not exactly WordLength letters. No state is mutated.
	ErrIncompleteGuess = errors.New("guess is not the required length")

	// ErrFinished is returned by Submit once the session is won or lost.
	ErrFinished = errors.New("session finished")
)

// Session holds the mutable state of one game. Not safe for concurrent use;
// the UI event loop is the only caller.
type Session struct {
	cfg     Config
	secret  string
	guesses []string
	attempt int
	input   string
	over    bool
	won     bool
}

// New constructs a session around an already-fetched secret word.
// The secret is uppercased; zero or negative Config fields fall back to the
// classic dimensions.
func New(cfg Config, secret string) *Session {
	if cfg.WordLength <= 0 {
		cfg.WordLength = DefaultConfig().WordLength
	}
	if cfg.MaxTries <= 0 {
		cfg.MaxTries = DefaultConfig().MaxTries
	}
	return &Session{
		cfg:     cfg,
		secret:  strings.ToUpper(strings.TrimSpace(secret)),
		guesses: make([]string, cfg.MaxTries),
	}
}

// Config returns the session's dimensions.
func (s *Session) Config() Config { return s.cfg }

// State reports playing/won/lost.
func (s *Session) State() State {
	if s.over {
		if s.won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Attempt is the index of the active row, in [0, MaxTries).
func (s *Session) Attempt() int { return s.attempt }

// Input returns the in-progress guess for the active row.
func (s *Session) Input() string { return s.input }

// Guesses returns a copy of the guess list. Unplayed rows are empty strings.
func (s *Session) Guesses() []string {
	out := make([]string, len(s.guesses))
	copy(out, s.guesses)
	return out
}

// Reveal returns the secret word verbatim. The UI disables this control once
// the session is over; that is its only guard.
func (s *Session) Reveal() string { return s.secret }

// AppendLetter adds one letter to the in-progress guess. Only A–Z (either
// case) is accepted, only while playing, and only while the guess is short of
// WordLength. Everything else is ignored.
func (s *Session) AppendLetter(r rune) {
	if s.over || len(s.input) >= s.cfg.WordLength {
		return
	}
	u := unicode.ToUpper(r)
	if u < 'A' || u > 'Z' {
		return
	}
	s.input += string(u)
}

// Backspace removes the last letter of the in-progress guess, if any.
func (s *Session) Backspace() {
	if s.over || s.input == "" {
		return
	}
	s.input = s.input[:len(s.input)-1]
}

// Submit applies the in-progress guess to the active row.
//
// Rules:
//   - A guess shorter or longer than WordLength fails with ErrIncompleteGuess
//     and mutates nothing.
//   - A match freezes the board: the attempt index does not advance and the
//     input is kept, so the active row is the winning row.
//   - A miss on the final row loses the game without advancing further.
//   - Otherwise the input is cleared and the cursor moves down one row.
func (s *Session) Submit() (Outcome, error) {
	if s.over {
		return OutcomeContinue, ErrFinished
	}
	if len(s.input) != s.cfg.WordLength {
		return OutcomeContinue, ErrIncompleteGuess
	}

	guess := strings.ToUpper(s.input)
	s.guesses[s.attempt] = guess

	switch {
	case guess == s.secret:
		s.over, s.won = true, true
		return OutcomeWin, nil
	case s.attempt == s.cfg.MaxTries-1:
		s.over = true
		return OutcomeLoss, nil
	default:
		s.input = ""
		s.attempt++
		return OutcomeContinue, nil
	}
}

// Reset returns the session to its initial playing state. The secret word is
// kept; a manual reset replays the same word.
func (s *Session) Reset() {
	s.guesses = make([]string, s.cfg.MaxTries)
	s.attempt = 0
	s.input = ""
	s.over = false
	s.won = false
}
