// internal/tui/model.go
//
// Bubble Tea model for the daily word game.
// Lifecycle: loading (spinner, fetch in flight) → playing → won/lost.
// Keyboard input reaches the session only while playing; the reset and quit
// controls work in any finished state, reveal only before the game ends.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-tui/internal/session"
	"github.com/robalobadob/wordle-tui/internal/wordsvc"
)

// wordMsg delivers the fetched (or fallback) secret word to the model.
type wordMsg struct {
	word string
	warn string // non-empty when the fallback was substituted
}

// Model owns the session plus everything around it: the fetch, the spinner,
// and the status line that stands in for the browser's alerts.
type Model struct {
	cfg  session.Config
	svc  *wordsvc.Client
	sess *session.Session
	spin spinner.Model

	loading bool
	status  string
	warn    bool // render status in the warning style
}

// NewModel builds the initial loading-state model.
func NewModel(cfg session.Config, svc *wordsvc.Client) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{cfg: cfg, svc: svc, spin: sp, loading: true}
}

// Init kicks off the spinner and the one startup fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, fetchWord(m.svc))
}

// fetchWord resolves the word of the day. Every failure mode degrades to the
// fixed fallback word with a user-visible warning; the game always starts.
func fetchWord(svc *wordsvc.Client) tea.Cmd {
	return func() tea.Msg {
		word, err := svc.Today(context.Background())
		if err != nil {
			log.Warn().Err(err).Msg("word fetch failed, using fallback")
			return wordMsg{
				word: wordsvc.FallbackWord,
				warn: "Couldn't fetch today's word — playing a fallback word.",
			}
		}
		return wordMsg{word: word}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case wordMsg:
		m.sess = session.New(m.cfg, msg.word)
		m.loading = false
		m.status, m.warn = msg.warn, msg.warn != ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Controls that work regardless of game state.
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "ctrl+r":
		if m.sess != nil {
			m.sess.Reset()
			m.status, m.warn = "", false
		}
		return m, nil
	case "ctrl+w":
		// Reveal: disabled once the game is over, its only guard.
		if m.sess != nil && m.sess.State() == session.StatePlaying {
			m.status, m.warn = fmt.Sprintf("The word is %s.", m.sess.Reveal()), false
		}
		return m, nil
	}

	// Letter entry and submission only while a game is being played.
	if m.loading || m.sess.State() != session.StatePlaying {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyBackspace, tea.KeyDelete:
		m.sess.Backspace()
		return m, nil
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			m.sess.AppendLetter(msg.Runes[0])
		}
		return m, nil
	}
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	out, err := m.sess.Submit()
	if err != nil {
		m.status, m.warn = fmt.Sprintf("Guess must be %d letters.", m.cfg.WordLength), true
		return m, nil
	}
	switch out {
	case session.OutcomeWin:
		m.status, m.warn = "You got it!", false
	case session.OutcomeLoss:
		m.status, m.warn = fmt.Sprintf("Out of tries — the word was %s.", m.sess.Reveal()), true
	default:
		m.status, m.warn = "", false
	}
	return m, nil
}
