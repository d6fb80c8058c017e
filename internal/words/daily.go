package words

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// dayKey names the UTC calendar day of t, e.g. "2026-10-19".
func dayKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// DailyRoot returns the root for the day of t; the same for every caller
// sharing salt. If the list is empty, falls back to FallbackRoot.
//
// The pick is HMAC-SHA256(salt, day) reduced modulo the list length, so the
// day's root cannot be guessed without the salt.
func (l *List) DailyRoot(t time.Time, salt string) string {
	if l == nil || len(l.words) == 0 {
		return FallbackRoot
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(dayKey(t)))
	sum := mac.Sum(nil)
	return l.words[binary.BigEndian.Uint64(sum[:8])%uint64(len(l.words))]
}
