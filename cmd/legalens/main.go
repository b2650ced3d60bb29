package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/legalens/legalens/internal/cli"
)

func main() {
	// Load .env if present so API keys can live next to the project
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
