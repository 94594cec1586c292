// cache.go
//
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements a small LRU cache of solver results,
// keyed by the canonical form of a solve request.

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
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
)

// solveCache encapsulates a simple LRU cached map of canonical
// solve request keys to their word lists. Solving is a pure
// function of the request and the dictionary, and the dictionary
// is immutable after load, so cached entries never go stale.
type solveCache struct {
	mux sync.Mutex
	lru *simplelru.LRU
}

// Init initializes an empty solveCache
func (sc *solveCache) Init(size int) {
	sc.lru, _ = simplelru.NewLRU(size, nil)
}

// Lookup returns the word lists for a given canonical request key.
// If the key is found in the cache, its entry is returned
// immediately. Otherwise the given solveFunc is called to compute
// the result, which is cached unless the computation failed.
func (sc *solveCache) Lookup(key string,
	solveFunc func() (WordLists, error)) (WordLists, error) {

	sc.mux.Lock()
	defer sc.mux.Unlock()
	if lists, ok := sc.lru.Get(key); ok {
		return lists.(WordLists), nil
	}
	lists, err := solveFunc()
	if err != nil {
		return WordLists{}, err
	}
	sc.lru.Add(key, lists)
	return lists, nil
}
