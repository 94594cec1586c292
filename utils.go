// utils.go
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file contains general utility functions.

package wordbites

import "strings"

// UpperAll returns a new slice with every string trimmed of
// surrounding whitespace and converted to uppercase
func UpperAll(tiles []string) []string {
	result := make([]string, len(tiles))
	for i, tile := range tiles {
		result[i] = strings.ToUpper(strings.TrimSpace(tile))
	}
	return result
}

// SplitTiles splits a whitespace-separated tile string into a
// list of uppercase tiles. An empty or blank input yields an
// empty list.
func SplitTiles(s string) []string {
	return UpperAll(strings.Fields(s))
}
