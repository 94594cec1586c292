// server.go
//
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements a compact HTTP server that receives
// JSON encoded requests and returns JSON encoded responses.

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
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ProtocolVersion is returned in every JSON response
const ProtocolVersion = "1.0"

// MaxTileCount is the maximum total number of tiles accepted in a
// solve request. The search is bounded by the factorial of the
// tile count before pruning, so the server caps it at a size that
// stays comfortably interactive.
const MaxTileCount = 20

// Default word length limits, applied when a request leaves
// them unspecified
const (
	DefaultMaxHorizontalLength = 8
	DefaultMaxVerticalLength   = 9
)

// A class describing incoming solve requests
type SolveRequest struct {
	SingleTiles         []string `json:"single_tiles"`
	HorizontalTiles     []string `json:"horizontal_tiles"`
	VerticalTiles       []string `json:"vertical_tiles"`
	MinLength           int      `json:"min_length"`
	MaxHorizontalLength int      `json:"max_horizontal_length"`
	MaxVerticalLength   int      `json:"max_vertical_length"`
	// OnlyDirection is "h" or "v" to restrict the response to one
	// orientation, or empty for both
	OnlyDirection string `json:"only_direction"`
	// Limit caps the number of words returned per orientation;
	// zero means no cap
	Limit int `json:"limit"`
}

// The JSON response to a solve request
type SolveResponse struct {
	Version         string   `json:"version"`
	HorizontalCount int      `json:"horizontal_count"`
	VerticalCount   int      `json:"vertical_count"`
	TotalCount      int      `json:"total_count"`
	Horizontal      []string `json:"horizontal"`
	Vertical        []string `json:"vertical"`
}

// A class describing incoming word check requests
type WordCheckRequest struct {
	Words []string `json:"words"`
}

// WordCheckResult holds the verdict for a single checked word
type WordCheckResult struct {
	Word  string `json:"word"`
	Found bool   `json:"found"`
}

// The JSON response to a word check request
type WordCheckResponse struct {
	Version string            `json:"version"`
	Results []WordCheckResult `json:"results"`
}

// resultCache caches full solve results across requests; the
// direction filter and limit are applied per request, after the
// cache, so requests differing only in presentation share entries
var resultCache solveCache

func init() {
	resultCache.Init(1024)
}

// cacheKey produces the canonical form of a solve request, for use
// as a result cache key. The dictionary pointer is included since
// results depend on which (immutable) dictionary is in use.
func cacheKey(dict *Dictionary, single, horizontal, vertical []string,
	minLength, maxHorizontalLength, maxVerticalLength int) string {

	return fmt.Sprintf("%p|%s|%s|%s|%v|%v|%v",
		dict,
		strings.Join(single, " "),
		strings.Join(horizontal, " "),
		strings.Join(vertical, " "),
		minLength, maxHorizontalLength, maxVerticalLength,
	)
}

// validTiles checks that all tiles in a list are non-empty
func validTiles(tiles []string) bool {
	for _, tile := range tiles {
		if len(tile) == 0 {
			return false
		}
	}
	return true
}

// HandleSolveRequest handles an incoming, already decoded solve
// request, writing a JSON response (or an HTTP error) to w
func HandleSolveRequest(w http.ResponseWriter, req SolveRequest, dict *Dictionary) {
	if req.OnlyDirection != "" && req.OnlyDirection != "h" && req.OnlyDirection != "v" {
		msg := "Invalid direction. Must be 'h', 'v' or unset.\n"
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	// Normalize the tiles to uppercase; the solver core is
	// case sensitive against an uppercase dictionary
	single := UpperAll(req.SingleTiles)
	horizontal := UpperAll(req.HorizontalTiles)
	vertical := UpperAll(req.VerticalTiles)

	if !validTiles(single) || !validTiles(horizontal) || !validTiles(vertical) {
		msg := "Invalid tile. Tiles must be non-empty strings.\n"
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	numTiles := len(single) + len(horizontal) + len(vertical)
	if numTiles == 0 {
		msg := "At least one tile must be provided.\n"
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if numTiles > MaxTileCount {
		msg := fmt.Sprintf("Too many tiles. At most %v are allowed.\n", MaxTileCount)
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	// Fill in defaults for unspecified lengths
	minLength := req.MinLength
	if minLength == 0 {
		minLength = dict.MinLength()
	}
	maxHorizontalLength := req.MaxHorizontalLength
	if maxHorizontalLength == 0 {
		maxHorizontalLength = DefaultMaxHorizontalLength
	}
	maxVerticalLength := req.MaxVerticalLength
	if maxVerticalLength == 0 {
		maxVerticalLength = DefaultMaxVerticalLength
	}

	key := cacheKey(dict, single, horizontal, vertical,
		minLength, maxHorizontalLength, maxVerticalLength)
	lists, err := resultCache.Lookup(key, func() (WordLists, error) {
		return Solve(single, horizontal, vertical, dict,
			minLength, maxHorizontalLength, maxVerticalLength)
	})
	if err != nil {
		// Length preconditions violated; reject the request
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Apply the direction filter and limit; these are
	// presentation concerns, applied outside the solver core
	horizontalWords := lists.Horizontal
	verticalWords := lists.Vertical
	if req.OnlyDirection == "v" {
		horizontalWords = []string{}
	} else if req.OnlyDirection == "h" {
		verticalWords = []string{}
	}
	if req.Limit > 0 {
		horizontalWords = horizontalWords[0:min(req.Limit, len(horizontalWords))]
		verticalWords = verticalWords[0:min(req.Limit, len(verticalWords))]
	}

	result := SolveResponse{
		Version:         ProtocolVersion,
		HorizontalCount: len(horizontalWords),
		VerticalCount:   len(verticalWords),
		TotalCount:      len(horizontalWords) + len(verticalWords),
		Horizontal:      horizontalWords,
		Vertical:        verticalWords,
	}
	if err := json.NewEncoder(w).Encode(result); err != nil {
		// Unable to generate valid JSON
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HandleWordCheckRequest checks a list of words against the
// dictionary, writing a JSON response to w
func HandleWordCheckRequest(w http.ResponseWriter, req WordCheckRequest, dict *Dictionary) {
	results := make([]WordCheckResult, len(req.Words))
	for i, word := range req.Words {
		upper := strings.ToUpper(strings.TrimSpace(word))
		results[i] = WordCheckResult{
			Word:  upper,
			Found: dict.Contains(upper),
		}
	}
	result := WordCheckResponse{
		Version: ProtocolVersion,
		Results: results,
	}
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
