// internal/words/words.go
//
// Answer-list management for the word-of-the-day service.
//
// The canonical list ships embedded so the service runs with zero external
// files; WORDS_ANSWERS_FILE overrides it with one word per line. Words are
// normalized to lowercase and must be exactly five ASCII letters — anything
// else on a line is skipped.
package words

import (
	"bufio"
	_ "embed"
	"errors"
	"os"
	"strings"
	"sync"
)

//go:embed answers.txt
var embeddedAnswers string

// WordLength is the only word size the v2 endpoint serves.
const WordLength = 5

var (
	loadOnce sync.Once
	answers  []string
	lookup   map[string]struct{}
	loadErr  error
)

// Load reads the answer list exactly once. Safe to call repeatedly; every
// accessor below calls it. Returns an error if the list ends up empty.
func Load() error {
	loadOnce.Do(func() {
		if path := os.Getenv("WORDS_ANSWERS_FILE"); path != "" {
			answers, loadErr = readWordFile(path)
		} else {
			answers = normalizeLines(embeddedAnswers)
		}
		if loadErr != nil {
			return
		}
		if len(answers) == 0 {
			loadErr = errors.New("words: answer list is empty")
			return
		}
		lookup = make(map[string]struct{}, len(answers))
		for _, w := range answers {
			lookup[w] = struct{}{}
		}
	})
	return loadErr
}

// Answers returns the canonical answer list (lowercase). Empty if Load failed.
func Answers() []string {
	_ = Load()
	return answers
}

// Contains reports whether w is one of the answers.
func Contains(w string) bool {
	_ = Load()
	_, ok := lookup[strings.ToLower(w)]
	return ok
}

// Count returns how many answers are loaded.
func Count() int {
	_ = Load()
	return len(answers)
}

func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w, ok := normalizeWord(sc.Text()); ok {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if w, ok := normalizeWord(line); ok {
			out = append(out, w)
		}
	}
	return out
}

func normalizeWord(line string) (string, bool) {
	w := strings.TrimSpace(strings.ToLower(line))
	if w == "" || strings.HasPrefix(w, "#") {
		return "", false
	}
	if len(w) != WordLength || !isAlpha(w) {
		return "", false
	}
	return w, true
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
