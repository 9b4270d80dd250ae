// Package main is the entry point for the smartfitter-cli application.
// It gives operators migrations, member review and slot previews without the web app.
package main

import (
	"log"
	"os"

	"github.com/michaelddmanuel/SmartFitter-sub000/cmd/smartfitter-cli/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
