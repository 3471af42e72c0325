// ytagent — YouTube video search service.
//
// Searches videos through the YouTube Data API v3 and exposes normalized
// records over a JSON HTTP API, an embedded browser page, and a CLI.
package main

import (
	"log/slog"

	"github.com/joho/godotenv"

	"ytagent/cmd"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", slog.Any("error", err))
	}

	cmd.Execute()
}
