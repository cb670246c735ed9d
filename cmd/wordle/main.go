// cmd/wordle/main.go
//
// Interactive daily word game. Fetches the word of the day once at startup
// (falling back to a fixed word if the service is unreachable), then hands
// the terminal to the Bubble Tea UI.
//
// Environment:
//   WORDLE_BASE_URL     word service base URL (default: the public host)
//   WORDLE_WORD_LENGTH  letters per word (default 5)
//   WORDLE_MAX_TRIES    rows on the board (default 6)
//   WORDLE_LOG          log file path; logs are discarded when unset
//   LOG_LEVEL           zerolog level (default info)
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-tui/internal/session"
	"github.com/robalobadob/wordle-tui/internal/tui"
	"github.com/robalobadob/wordle-tui/internal/wordsvc"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	// Stdout belongs to the TUI; logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if path := os.Getenv("WORDLE_LOG"); path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			defer f.Close()
			logOut = f
		}
	}
	log.Logger = zerolog.New(logOut).With().Timestamp().Logger()

	cfg := session.Config{
		WordLength: envInt("WORDLE_WORD_LENGTH", 5),
		MaxTries:   envInt("WORDLE_MAX_TRIES", 6),
	}
	svc := wordsvc.New(getEnv("WORDLE_BASE_URL", wordsvc.DefaultBaseURL), cfg.WordLength, nil)

	p := tea.NewProgram(tui.NewModel(cfg, svc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "wordle:", err)
		os.Exit(1)
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
