// internal/wordsvc/client.go
//
// HTTP client for the word-of-the-day endpoint:
//
//	GET {base}/svc/wordle/v2/{YYYY-MM-DD}.json → {"solution": "crane", ...}
//
// The client returns an error for any failure mode (network, non-2xx,
// malformed JSON, bad solution field); the caller decides how to degrade.
// FallbackWord is the deterministic substitute the game uses so a fetch
// failure never blocks play.
package wordsvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-tui/internal/daily"
)

// DefaultBaseURL is the public word-of-the-day host.
const DefaultBaseURL = "https://www.nytimes.com"

// FallbackWord is served locally whenever the fetch fails.
const FallbackWord = "HELLO"

// ErrBadSolution means the document parsed but the solution field is not a
// word of the expected length.
var ErrBadSolution = errors.New("wordsvc: malformed solution")

// Client fetches daily solutions. Zero-value fields fall back to defaults.
type Client struct {
	base    string
	wordLen int
	hc      *http.Client
}

// New builds a client. base defaults to DefaultBaseURL, wordLen to 5, and a
// nil http.Client falls back to http.DefaultClient (no timeout, matching the
// original fetch behavior).
func New(base string, wordLen int, hc *http.Client) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	if wordLen <= 0 {
		wordLen = 5
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{base: strings.TrimRight(base, "/"), wordLen: wordLen, hc: hc}
}

type solutionDoc struct {
	Solution string `json:"solution"`
}

// Today fetches the solution for the client's local current date.
func (c *Client) Today(ctx context.Context) (string, error) {
	return c.SolutionForDate(ctx, daily.DateKey(time.Now()))
}

// SolutionForDate fetches and validates the solution for a date key,
// returned uppercased.
func (c *Client) SolutionForDate(ctx context.Context, dateKey string) (string, error) {
	url := fmt.Sprintf("%s/svc/wordle/v2/%s.json", c.base, dateKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("wordsvc: build request: %w", err)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("wordsvc: fetch %s: %w", dateKey, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("wordsvc: fetch %s: status %d", dateKey, res.StatusCode)
	}

	var doc solutionDoc
	if err := json.NewDecoder(res.Body).Decode(&doc); err != nil {
		return "", fmt.Errorf("wordsvc: decode %s: %w", dateKey, err)
	}

	word := strings.ToUpper(strings.TrimSpace(doc.Solution))
	if len(word) != c.wordLen || !isUpperAlpha(word) {
		return "", fmt.Errorf("%w: %q", ErrBadSolution, doc.Solution)
	}

	log.Debug().Str("date", dateKey).Msg("fetched word of the day")
	return word, nil
}

func isUpperAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
