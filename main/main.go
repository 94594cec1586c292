// main.go
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.

// Command line program for exercising the wordbites module.
// It prompts for the three tile categories on standard input and
// prints the longest playable words for each orientation.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	wordbites "github.com/vthorsteinsson/GoWordBites"
)

const separatorWidth = 50

// promptTiles reads one whitespace-separated tile list from stdin
func promptTiles(scanner *bufio.Scanner, prompt string) []string {
	fmt.Printf("%s: ", prompt)
	if !scanner.Scan() {
		return nil
	}
	return wordbites.SplitTiles(scanner.Text())
}

// displayWords prints the top words of one orientation under a title
func displayWords(words []string, title string, maxDisplay int) {
	separator := strings.Repeat("=", separatorWidth)
	fmt.Printf("\n%s\n%s\n%s\n", separator, title, separator)
	top := words[0:min(maxDisplay, len(words))]
	fmt.Printf("Showing top %v longest words (out of %v total):\n\n", len(top), len(words))
	if len(top) == 0 {
		fmt.Println("  No valid words found.")
		return
	}
	for _, word := range top {
		fmt.Printf("  %v\n", word)
	}
}

func main() {
	dictPath := flag.String("d", "/usr/share/dict/words", "Path to a newline-delimited word list")
	minLength := flag.Int("min", wordbites.MinWordLength, "Minimum word length")
	maxHorizontal := flag.Int("maxh", wordbites.DefaultMaxHorizontalLength, "Maximum horizontal word length")
	maxVertical := flag.Int("maxv", wordbites.DefaultMaxVerticalLength, "Maximum vertical word length")
	only := flag.String("only", "", "Only show words in one direction: 'h' or 'v'")
	top := flag.Int("top", 30, "Number of words to display per direction")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = log.Output(output)

	if *only != "" && *only != "h" && *only != "v" {
		fmt.Printf("Unknown direction '%v'. Specify 'h' or 'v', or omit for both.\n", *only)
		os.Exit(1)
	}

	dict, err := wordbites.LoadDictionary(*dictPath, *minLength)
	if err != nil {
		log.Fatal().Err(err).Str("path", *dictPath).Msg("Unable to load dictionary")
	}
	fmt.Printf("Dictionary contains %v words\n", dict.Length())

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("\nEnter tiles for each category, space-separated (blank for none).")
	single := promptTiles(scanner, "Single tiles")
	horizontal := promptTiles(scanner, "Horizontal tiles")
	vertical := promptTiles(scanner, "Vertical tiles")

	result, err := wordbites.Solve(
		single, horizontal, vertical, dict,
		*minLength, *maxHorizontal, *maxVertical,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Solve failed")
	}

	if *only != "v" {
		displayWords(result.Horizontal, "HORIZONTAL WORDS", *top)
	}
	if *only != "h" {
		displayWords(result.Vertical, "VERTICAL WORDS", *top)
	}
	fmt.Println()
}
