// go-app/main.go
// App Engine main package for the GoWordBites server
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	wordbites "github.com/vthorsteinsson/GoWordBites"
)

// Corresponding Authorization header (or "" if no auth required)
var AUTH_HEADER string

// Allowed access control (CORS) origins
var ALLOWED_ORIGINS string = "*" // Default to all origins allowed

// The process-wide dictionary, loaded once at startup and
// treated as immutable thereafter
var dictionary *wordbites.Dictionary

func validate(w http.ResponseWriter, r *http.Request, req any) bool {
	// Set CORS headers
	header := w.Header()
	header.Set("Access-Control-Allow-Origin", ALLOWED_ORIGINS)
	header.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	// Handle preflight OPTIONS request
	if r.Method == "OPTIONS" {
		// Returning false simply causes the handler to return the response headers
		return false
	}

	// We only accept POST requests
	if r.Method != "POST" {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return false
	}
	// Check for a bearer authorization token,
	// which must match the environment variable
	// ACCESS_KEY, if present
	if AUTH_HEADER != "" {
		authHeader := r.Header.Get("Authorization")
		if authHeader != AUTH_HEADER {
			http.Error(w,
				fmt.Sprintf(
					"Authorization header mismatch: got '%s'",
					authHeader,
				),
				http.StatusUnauthorized,
			)
			return false
		}
	}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		// Not valid JSON
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func solveHandler(w http.ResponseWriter, r *http.Request) {
	var req wordbites.SolveRequest
	if !validate(w, r, &req) {
		return
	}
	wordbites.HandleSolveRequest(w, req, dictionary)
}

func wordcheckHandler(w http.ResponseWriter, r *http.Request) {
	var req wordbites.WordCheckRequest
	if !validate(w, r, &req) {
		return
	}
	wordbites.HandleWordCheckRequest(w, req, dictionary)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	result := map[string]any{
		"status":          "healthy",
		"dictionary_size": dictionary.Length(),
	}
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func warmupHandler(w http.ResponseWriter, r *http.Request) {
	// No concrete action required
	log.Info().Msg("Warmup request received")
}

func main() {
	// Load a .env file, if present, before reading the environment
	_ = godotenv.Load()
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	if os.Getenv("DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = log.Output(output)
	log.Info().Str("goVersion", runtime.Version()).Msg("Solver service starting")

	// Figure out the authorization header, if required
	accessKey := os.Getenv("ACCESS_KEY")
	if accessKey != "" {
		AUTH_HEADER = "Bearer " + accessKey
	}

	// Load the dictionary once; all requests share it read-only
	dictPath := os.Getenv("DICTIONARY_PATH")
	if dictPath == "" {
		dictPath = "/usr/share/dict/words"
	}
	minLength := wordbites.MinWordLength
	if s := os.Getenv("MIN_WORD_LENGTH"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			minLength = n
		}
	}
	var err error
	dictionary, err = wordbites.LoadDictionary(dictPath, minLength)
	if err != nil {
		log.Fatal().Err(err).Str("path", dictPath).Msg("Unable to load dictionary")
	}

	// Set up a dummy warmup handler
	http.HandleFunc("/_ah/warmup", warmupHandler)
	// Set up the actual service handlers
	http.HandleFunc("/solve", solveHandler)
	http.HandleFunc("/wordcheck", wordcheckHandler)
	http.HandleFunc("/health", healthHandler)

	// Establish the port number to listen on, defaulting to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	// Establish allowed CORS origins
	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins != "" {
		log.Info().Str("origins", origins).Msg("Allowed CORS origins")
		ALLOWED_ORIGINS = origins
	} else {
		log.Info().Msg("No ALLOWED_ORIGINS specified, allowing all")
	}
	log.Info().Str("port", port).Msg("Listening")
	// Start the server loop
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatal().Err(err).Msg("Server terminated")
	}
}
