package store

import (
	"encoding/hex"
	"slices"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint identifies a word list independent of its order: the blake2b-256
// digest of the sorted, newline-joined words, truncated to 16 hex characters.
func Fingerprint(list []string) string {
	sorted := slices.Clone(list)
	slices.Sort(sorted)
	sum := blake2b.Sum256([]byte(strings.Join(sorted, "\n")))
	return hex.EncodeToString(sum[:8])
}
