// Package wordlist parses word lists and keeps a circular cursor over them.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmpty is returned when a list has no words.
var ErrEmpty = errors.New("word list is empty")

// List is a non-empty sequence of words with a wrapping cursor.
type List struct {
	words  []string
	cursor int
}

// Parse splits text into trimmed, non-blank lines.
func Parse(text string) []string {
	words, _ := readWords(strings.NewReader(text))
	return words
}

// New returns a list positioned at its first word.
func New(words []string) (*List, error) {
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return &List{words: append([]string(nil), words...)}, nil
}

// Current returns the word under the cursor.
func (l *List) Current() string {
	return l.words[l.cursor]
}

// Index returns the cursor position.
func (l *List) Index() int {
	return l.cursor
}

// Len returns the number of words.
func (l *List) Len() int {
	return len(l.words)
}

// Advance moves the cursor one word forward, wrapping at the end, and returns
// the new current word.
func (l *List) Advance() string {
	l.cursor = (l.cursor + 1) % len(l.words)
	return l.words[l.cursor]
}

// Rewind moves the cursor back to the first word.
func (l *List) Rewind() {
	l.cursor = 0
}

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	words, err := readWords(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
