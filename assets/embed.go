// assets/embed.go
//
// Default word lists embedded in the binary, plus the line parser used for
// word list files.

package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

// ReadLines returns the trimmed, lowercased lines of r, skipping blanks and
// "#" comments.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

func readEmbedded(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// AnswersList returns the embedded candidate target words.
func AnswersList() ([]string, error) {
	return readEmbedded("answers.txt")
}

// AllowedList returns the embedded extra guesses.
func AllowedList() ([]string, error) {
	return readEmbedded("allowed.txt")
}
