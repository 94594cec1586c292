// dictionary.go
//
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the word dictionary and its derived
// prefix set, plus the word list loader.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package wordbites

import (
	"bufio"
	"embed"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Point to the fallback word list in the dicts directory
//
//go:embed dicts/sample.txt
var dictFS embed.FS

// MinWordLength is the default minimum length of words
// included in a dictionary
const MinWordLength = 3

// Dictionary is an immutable set of valid uppercase words.
// It is loaded once, typically at process startup, and is then
// safe to share by reference between any number of concurrent
// Solve() calls.
type Dictionary struct {
	words     map[string]struct{}
	minLength int
}

// PrefixSet contains every non-empty prefix of every word in a
// dictionary. It is used as a fast-reject oracle during the word
// search: a partial word that is not in the set cannot be extended
// into a dictionary word, so that branch of the search is abandoned
// immediately. This bounds the search by the structure of the
// dictionary instead of by the factorial number of tile orderings.
type PrefixSet map[string]struct{}

// Contains reports whether s is a prefix of some dictionary word
func (ps PrefixSet) Contains(s string) bool {
	_, ok := ps[s]
	return ok
}

// NewDictionary creates a Dictionary from a list of words,
// uppercasing them and dropping those shorter than minLength.
// If minLength is not positive, MinWordLength is used.
func NewDictionary(words []string, minLength int) *Dictionary {
	if minLength < 1 {
		minLength = MinWordLength
	}
	d := &Dictionary{
		words:     make(map[string]struct{}, len(words)),
		minLength: minLength,
	}
	for _, word := range words {
		word = strings.ToUpper(strings.TrimSpace(word))
		if len(word) >= minLength {
			d.words[word] = struct{}{}
		}
	}
	return d
}

// Contains reports whether the given word is in the dictionary.
// The lookup is case sensitive; dictionaries hold uppercase
// words only.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[word]
	return ok
}

// Length returns the number of words in the dictionary
func (d *Dictionary) Length() int {
	return len(d.words)
}

// MinLength returns the minimum word length that the
// dictionary was filtered by
func (d *Dictionary) MinLength() int {
	return d.minLength
}

// Prefixes builds the set of all non-empty prefixes of every
// word in the dictionary. The set is built fresh on each call
// and is read-only thereafter.
func (d *Dictionary) Prefixes() PrefixSet {
	ps := make(PrefixSet)
	for word := range d.words {
		for i := 1; i <= len(word); i++ {
			ps[word[:i]] = struct{}{}
		}
	}
	return ps
}

// readWords reads a newline-delimited word list from r
func readWords(r io.Reader, minLength int) (*Dictionary, error) {
	d := &Dictionary{
		words:     make(map[string]struct{}),
		minLength: minLength,
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if len(word) >= minLength {
			d.words[word] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadDictionary reads a newline-delimited word list from the given
// file, uppercasing each word and filtering by minLength (or
// MinWordLength if minLength is not positive). If the file does not
// exist, a small embedded sample word list is used instead, so a
// missing dictionary never prevents startup.
func LoadDictionary(path string, minLength int) (*Dictionary, error) {
	if minLength < 1 {
		minLength = MinWordLength
	}
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		log.Warn().
			Str("path", path).
			Msg("Dictionary file not found; using embedded sample word list")
		return loadSampleDictionary(minLength)
	}
	defer f.Close()
	d, err := readWords(f, minLength)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("path", path).
		Int("words", d.Length()).
		Msg("Dictionary loaded")
	return d, nil
}

// loadSampleDictionary loads the embedded fallback word list
func loadSampleDictionary(minLength int) (*Dictionary, error) {
	data, err := dictFS.ReadFile("dicts/sample.txt")
	if err != nil {
		return nil, err
	}
	return readWords(strings.NewReader(string(data)), minLength)
}
