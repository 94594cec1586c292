// finder.go
//
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the constrained word search: a depth-first
// backtracking enumeration of tile orderings, pruned by the
// dictionary prefix set and constrained by tile group exclusion.

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
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidArgument is wrapped by the errors that FindWords
// returns when its preconditions are violated
var ErrInvalidArgument = errors.New("invalid argument")

// finder holds the state of one word search. The used slices and
// map are mutated on entry to and exit from each recursion level,
// so no per-level copies are made.
type finder struct {
	tiles     []string
	groups    []int
	dict      *Dictionary
	prefixes  PrefixSet
	minLength int
	maxLength int
	usedTile  []bool
	usedGroup map[int]bool
	found     map[string]struct{}
}

// descend extends the word being built with every usable tile in
// turn, recursing until the prefix set or the maximum length cuts
// the branch off. Each tile index is used at most once along a
// path, and at most one tile per group.
func (f *finder) descend(word string) {
	if len(word) > f.maxLength {
		// No further extension can shrink the word
		return
	}
	if word != "" && !f.prefixes.Contains(word) {
		// No dictionary word starts this way
		return
	}
	if len(word) >= f.minLength && f.dict.Contains(word) {
		// The found set deduplicates words that are reachable
		// via more than one tile ordering
		f.found[word] = struct{}{}
	}
	for i, fragment := range f.tiles {
		group := f.groups[i]
		if f.usedTile[i] || f.usedGroup[group] {
			continue
		}
		f.usedTile[i] = true
		f.usedGroup[group] = true
		f.descend(word + fragment)
		f.usedTile[i] = false
		f.usedGroup[group] = false
	}
}

// sortedWords converts a found-word set into a slice sorted by
// descending length, with ties broken in ascending lexicographic
// order
func sortedWords(found map[string]struct{}) []string {
	words := make([]string, 0, len(found))
	for word := range found {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	return words
}

// FindWords enumerates every dictionary word of length minLength to
// maxLength that can be assembled by concatenating fragments from
// the tiles slice, using each tile index at most once and at most
// one tile from each group. The groups slice runs parallel to
// tiles; fragments sharing a group id originate from the same
// physical tile (see BuildViews) and never appear together in one
// word. The result is sorted by descending length, then
// alphabetically. An error wrapping ErrInvalidArgument is returned
// if tiles and groups differ in length, if minLength is not
// positive, or if maxLength is below minLength.
func FindWords(tiles []string, groups []int, dict *Dictionary,
	prefixes PrefixSet, minLength, maxLength int) ([]string, error) {

	if len(tiles) != len(groups) {
		return nil, fmt.Errorf(
			"%w: tiles and groups must have the same length (%v != %v)",
			ErrInvalidArgument, len(tiles), len(groups),
		)
	}
	if minLength < 1 {
		return nil, fmt.Errorf(
			"%w: minLength must be at least 1, got %v",
			ErrInvalidArgument, minLength,
		)
	}
	if maxLength < minLength {
		return nil, fmt.Errorf(
			"%w: maxLength (%v) must not be less than minLength (%v)",
			ErrInvalidArgument, maxLength, minLength,
		)
	}
	// Uppercase the tiles once before searching; the dictionary
	// contains uppercase words only
	upper := make([]string, len(tiles))
	for i, tile := range tiles {
		upper[i] = strings.ToUpper(tile)
	}
	f := &finder{
		tiles:     upper,
		groups:    groups,
		dict:      dict,
		prefixes:  prefixes,
		minLength: minLength,
		maxLength: maxLength,
		usedTile:  make([]bool, len(tiles)),
		usedGroup: make(map[int]bool),
		found:     make(map[string]struct{}),
	}
	f.descend("")
	return sortedWords(f.found), nil
}
