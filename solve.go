// solve.go
//
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the top-level solver, composing the view
// projection and the word search for both orientations.

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
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// WordLists holds the solver result: the playable words for each
// orientation, each list sorted by descending length and then
// alphabetically
type WordLists struct {
	Horizontal []string `json:"horizontal"`
	Vertical   []string `json:"vertical"`
}

// Solve finds every dictionary word that can be assembled from the
// given tile bag, in each of the two orientations. The prefix set
// is built once and shared between the orientations, since the
// dictionary does not change between them. The two searches have no
// data dependency on each other and are run in parallel; either
// order yields identical results. An empty tile bag is not an
// error and yields two empty lists.
func Solve(single, horizontal, vertical []string, dict *Dictionary,
	minLength, maxHorizontalLength, maxVerticalLength int) (WordLists, error) {

	start := time.Now()
	prefixes := dict.Prefixes()
	views := BuildViews(single, horizontal, vertical)

	var result WordLists
	var g errgroup.Group
	g.Go(func() error {
		words, err := FindWords(
			views.Horizontal.Tiles, views.Horizontal.Groups,
			dict, prefixes, minLength, maxHorizontalLength,
		)
		result.Horizontal = words
		return err
	})
	g.Go(func() error {
		words, err := FindWords(
			views.Vertical.Tiles, views.Vertical.Groups,
			dict, prefixes, minLength, maxVerticalLength,
		)
		result.Vertical = words
		return err
	})
	if err := g.Wait(); err != nil {
		return WordLists{}, err
	}
	log.Debug().
		Int("horizontal", len(result.Horizontal)).
		Int("vertical", len(result.Vertical)).
		Dur("elapsed", time.Since(start)).
		Msg("Solve complete")
	return result, nil
}
