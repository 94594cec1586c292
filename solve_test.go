// solve_test.go
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.
// This file contains tests for the top-level solver

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
	"testing"

	"github.com/matryer/is"
)

func contains(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}

func TestSolveEndToEnd(t *testing.T) {
	is := is.New(t)
	dict := NewDictionary([]string{"CAT", "CATS", "SAT"}, 3)
	result, err := Solve(
		[]string{"C", "A", "T", "S"}, nil, nil, dict, 3, 8, 9,
	)
	is.NoErr(err)
	// Single tiles work identically in both orientations
	is.Equal(result.Horizontal, []string{"CATS", "CAT", "SAT"})
	is.Equal(result.Vertical, []string{"CATS", "CAT", "SAT"})
}

func TestSolveGroupExclusion(t *testing.T) {
	is := is.New(t)
	dict := NewDictionary(
		[]string{"BAT", "TAB", "BAD", "ABE", "BET", "ATE", "TED", "BED"}, 3,
	)
	result, err := Solve(
		[]string{"T", "E", "D"}, []string{"AB"}, nil, dict, 3, 8, 9,
	)
	is.NoErr(err)
	// In the vertical view the AB tile is split into A and B, which
	// are mutually exclusive: words needing both must not appear
	negativeCases := []string{"BAT", "TAB", "BAD", "ABE"}
	positiveCases := []string{"BET", "ATE", "TED", "BED"}
	for _, word := range negativeCases {
		if contains(result.Vertical, word) {
			t.Errorf("Found word '%v' that needs two letters from the same tile", word)
		}
	}
	for _, word := range positiveCases {
		if !contains(result.Vertical, word) {
			t.Errorf("Did not find word '%v' that should be playable vertically", word)
		}
	}
	// In the horizontal view the AB tile is atomic: TAB is T
	// followed by the whole AB fragment, and ABE starts with it
	is.Equal(result.Horizontal, []string{"ABE", "TAB", "TED"})
}

func TestSolveVerticalTileExclusion(t *testing.T) {
	is := is.New(t)
	dict := NewDictionary(
		[]string{"XYZ", "YAX", "WAX", "YAW", "WAY", "ZAX"}, 3,
	)
	result, err := Solve(
		[]string{"A", "W", "Z"}, nil, []string{"XY"}, dict, 3, 8, 9,
	)
	is.NoErr(err)
	// The XY tile is split into X and Y for horizontal words
	for _, word := range []string{"XYZ", "YAX"} {
		if contains(result.Horizontal, word) {
			t.Errorf("Found word '%v' that needs two letters from the same tile", word)
		}
	}
	for _, word := range []string{"WAX", "YAW", "WAY", "ZAX"} {
		if !contains(result.Horizontal, word) {
			t.Errorf("Did not find word '%v' that should be playable horizontally", word)
		}
	}
}

func TestSolveMaxLengthsPerOrientation(t *testing.T) {
	is := is.New(t)
	dict := NewDictionary([]string{"CAT", "CATS"}, 3)
	// Each orientation applies its own maximum length
	result, err := Solve(
		[]string{"C", "A", "T", "S"}, nil, nil, dict, 3, 3, 9,
	)
	is.NoErr(err)
	is.Equal(result.Horizontal, []string{"CAT"})
	is.Equal(result.Vertical, []string{"CATS", "CAT"})
}

func TestSolveEmptyBag(t *testing.T) {
	is := is.New(t)
	dict := NewDictionary([]string{"CAT"}, 3)
	// An empty tile bag is not an error
	result, err := Solve(nil, nil, nil, dict, 3, 8, 9)
	is.NoErr(err)
	is.Equal(len(result.Horizontal), 0)
	is.Equal(len(result.Vertical), 0)
}

func TestSolveIdempotent(t *testing.T) {
	is := is.New(t)
	dict := NewDictionary(
		[]string{"BAT", "TAB", "BAD", "ABE", "BET", "ATE", "TED", "BED"}, 3,
	)
	first, err := Solve(
		[]string{"T", "E", "D"}, []string{"AB"}, []string{"XY"}, dict, 3, 8, 9,
	)
	is.NoErr(err)
	second, err := Solve(
		[]string{"T", "E", "D"}, []string{"AB"}, []string{"XY"}, dict, 3, 8, 9,
	)
	is.NoErr(err)
	is.Equal(first, second)
}

func TestSolveOrderingLaw(t *testing.T) {
	dict := NewDictionary([]string{
		"CAT", "CATS", "SAT", "HAT", "HATS", "THAT", "ATE", "EAT",
		"TEA", "SET", "THE",
	}, 3)
	result, err := Solve(
		[]string{"C", "A", "T", "S", "H", "E"}, nil, nil, dict, 3, 8, 9,
	)
	if err != nil {
		t.Fatal(err)
	}
	for _, words := range [][]string{result.Horizontal, result.Vertical} {
		for i := 1; i < len(words); i++ {
			prev, cur := words[i-1], words[i]
			if len(prev) < len(cur) {
				t.Errorf("Word '%v' is longer than preceding word '%v'", cur, prev)
			}
			if len(prev) == len(cur) && prev > cur {
				t.Errorf("Word '%v' sorts before preceding word '%v'", cur, prev)
			}
		}
	}
}

func TestSolveNoSpuriousWords(t *testing.T) {
	dict := NewDictionary([]string{
		"BAT", "TAB", "BET", "ATE", "TED", "BED", "ABET", "BATED",
	}, 3)
	result, err := Solve(
		[]string{"T", "E", "D"}, []string{"AB"}, nil, dict, 3, 4, 5,
	)
	if err != nil {
		t.Fatal(err)
	}
	check := func(words []string, maxLength int) {
		for _, word := range words {
			if !dict.Contains(word) {
				t.Errorf("Found word '%v' that is not in the dictionary", word)
			}
			if len(word) < 3 || len(word) > maxLength {
				t.Errorf("Found word '%v' outside the length bounds", word)
			}
		}
	}
	check(result.Horizontal, 4)
	check(result.Vertical, 5)
}
