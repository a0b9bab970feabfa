// internal/words/words.go
//
// Word list management for the hinter.
//
// Responsibilities:
//   - Load solution and guess lists from files or fall back to the bundled list.
//   - Normalize entries (trim, lowercase) and keep only 5-letter a–z words.
//   - Drop duplicates and "#" comment lines.
//
// Lists are loaded once per run and never grow afterwards; callers only narrow
// them with the filter package.

package words

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/hinter/assets"
)

// Len is the word length every list is filtered to.
const Len = 5

// FileError reports a word-list file that is missing or unreadable.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("words: cannot read word list %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// Load reads a word list from path, or the bundled list when path is empty.
func Load(path string) ([]string, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	defer f.Close()

	list, err := Read(f)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	log.Debug().Str("path", path).Int("words", len(list)).Msg("loaded word list")
	return list, nil
}

// Default returns the bundled solution list.
func Default() ([]string, error) {
	f, err := assets.Answers()
	if err != nil {
		return nil, &FileError{Path: "embedded:" + assets.AnswersName, Err: err}
	}
	defer f.Close()
	list, err := Read(f)
	if err != nil {
		return nil, &FileError{Path: "embedded:" + assets.AnswersName, Err: err}
	}
	return list, nil
}

// Read loads one word per line from r, lowercases and trims each line,
// and keeps only valid, first-seen 5-letter alphabetic words.
func Read(r io.Reader) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	skipped := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w := strings.ToLower(line)
		if !Valid(w) {
			skipped++
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if skipped > 0 {
		log.Debug().Int("skipped", skipped).Msg("ignored entries that are not 5-letter words")
	}
	return out, sc.Err()
}

// Normalize lowercases and trims w.
func Normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// Valid reports whether w is exactly 5 lowercase ASCII letters.
func Valid(w string) bool {
	if len(w) != Len {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// Set converts a list into a lookup set.
func Set(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// Union returns a followed by the words of b not already in a.
func Union(a, b []string) []string {
	out := append([]string(nil), a...)
	have := Set(a)
	for _, w := range b {
		if _, ok := have[w]; !ok {
			have[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}

// Random returns a cryptographically random word from list, or "" if empty.
func Random(list []string) string {
	if len(list) == 0 {
		return ""
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	if err != nil {
		return list[0]
	}
	return list[n.Int64()]
}
