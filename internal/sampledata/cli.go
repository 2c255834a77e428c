package sampledata

import "os"

// ShowHelp prints usage information for the sample match tool.
func ShowHelp() {
	_, _ = os.Stdout.WriteString(`matchlens sample match tool
===========================

Writes a reproducible synthetic match in the StatsBomb open-data layout and
optionally checks a running server's key events and player profiles.

Usage:
  go run ./cmd/sample-match [options]

Options:
  -dir string
        Data directory the match is written to (default "data/events")
  -match int
        Match id (default 900001)
  -events int
        Number of events to generate (default 1500)
  -players int
        Players per team (default 11)
  -seed uint
        Seed for the event mix (default 7)
  -url string
        Base URL of a running server to verify (default: no verification)
  -workers int
        Concurrent verification requests (default 4)
  -timeout duration
        HTTP request timeout (default 10s)
  -verbose
        Log every mismatch
  -help
        Show this help message

Examples:
  # Write data/events/900001.json
  go run ./cmd/sample-match

  # Write and verify against a local server using the same data directory
  go run ./cmd/sample-match -url http://localhost:8000
`)
}
