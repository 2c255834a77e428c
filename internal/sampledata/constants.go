package sampledata

import "time"

// Defaults used by the command line tool.
const (
	DefaultMatchID = 900001
	DefaultPlayers = 11
	DefaultEvents  = 1500
	DefaultSeed    = 7
	DefaultTimeout = 10 * time.Second
	DefaultDataDir = "data/events"
)

const (
	matchMinutes        = 90
	firstPlayerID       = 1000
	teamPlayerIDStride  = 100
	directoryPermission = 0o750
	filePermission      = 0o640
)
