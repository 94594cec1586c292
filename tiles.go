// tiles.go
//
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the projection of a Word Bites tile bag
// into its two orientation views.

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

/*

In Word Bites, a tile holds one or more letters and sits on the board
either horizontally or vertically. A single-letter tile can be played
in either orientation. A multi-letter tile can be played whole in its
own orientation, or contribute any ONE of its letters to a word in
the other orientation - but never two, since it is physically a
single piece.

This file projects a raw tile bag (three categories: single,
horizontal multi-letter, vertical multi-letter) into two independent
views, one per orientation. Each view is a flat list of playable
string fragments plus a parallel list of group ids. All fragments
that originate from the same physical tile carry the same group id,
and the word finder never uses two fragments from the same group in
one word.

*/

package wordbites

// An OrientationView lists the tile fragments playable in one
// orientation, with a parallel list of group ids. Fragments sharing
// a group id come from the same physical tile and are mutually
// exclusive within a single word.
type OrientationView struct {
	Tiles  []string
	Groups []int
}

// Views holds the two orientation views projected from a tile bag
type Views struct {
	Horizontal OrientationView
	Vertical   OrientationView
}

// append adds a single fragment with its group id to the view
func (view *OrientationView) append(fragment string, group int) {
	view.Tiles = append(view.Tiles, fragment)
	view.Groups = append(view.Groups, group)
}

// appendSplit adds each letter of a tile as its own fragment,
// all sharing the given group id
func (view *OrientationView) appendSplit(tile string, group int) {
	for _, letter := range tile {
		view.append(string(letter), group)
	}
}

// BuildViews projects a raw tile bag into its horizontal and
// vertical views. The three input slices are the single-letter
// tiles, the horizontal multi-letter tiles and the vertical
// multi-letter tiles, in bag order. Fragments are emitted in that
// same order, and group ids are assigned densely from zero, one
// fresh id per source tile. The function is pure and does not
// validate tile contents; normalizing tiles to uppercase is the
// caller's responsibility.
func BuildViews(single, horizontal, vertical []string) Views {
	var views Views
	group := 0
	// Single-letter tiles appear unchanged in both views,
	// under the same group id
	for _, tile := range single {
		views.Horizontal.append(tile, group)
		views.Vertical.append(tile, group)
		group++
	}
	// A horizontal tile is one atomic fragment in the horizontal
	// view; in the vertical view it is split into its letters,
	// which all share the tile's group id
	for _, tile := range horizontal {
		views.Horizontal.append(tile, group)
		views.Vertical.appendSplit(tile, group)
		group++
	}
	// A vertical tile is the mirror image: split in the
	// horizontal view, atomic in the vertical view
	for _, tile := range vertical {
		views.Horizontal.appendSplit(tile, group)
		views.Vertical.append(tile, group)
		group++
	}
	return views
}
