// Package assets bundles the default word list.
package assets

import (
	"embed"
	"io"
)

//go:embed answers.txt
var FS embed.FS

// AnswersName is the bundled solution list inside FS.
const AnswersName = "answers.txt"

// Answers opens the bundled solution list.
func Answers() (io.ReadCloser, error) {
	return FS.Open(AnswersName)
}
