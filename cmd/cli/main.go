// ChatScope - Chat Transcript Analytics
//
// ChatScope is a batch analytics tool for exported chat transcripts:
// it parses the export into a message table, scores sentiment per
// message, and reports activity, word, and emoji statistics.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ccollicutt/chatscope/internal/cli"
)

func main() {
	// Best-effort .env load; system environment wins when absent.
	_ = godotenv.Load()

	os.Exit(cli.Execute())
}
