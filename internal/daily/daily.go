// internal/daily/daily.go
//
// Deterministic day → word selection. The index for a date is
// HMAC-SHA256(salt, dateKey) mod the answer count, so every instance with
// the same salt and list agrees on the day's word without coordination.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateLayout is the ISO date key format used in URLs and storage.
const DateLayout = "2006-01-02"

// DateKey formats t as YYYY-MM-DD in t's own location. The service keys by
// UTC; the client keys by its local day.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidDateKey reports whether s is a well-formed YYYY-MM-DD date.
func ValidDateKey(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil && len(s) == len(DateLayout)
}

// WordIndex maps a date key to a stable index in [0, answersLen).
func WordIndex(dateKey, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dateKey))
	sum := h.Sum(nil)
	// First 8 bytes give a uniform uint64 for the modulus.
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}
