package sampledata

import "time"

// Config holds configuration for the sample match tool.
type Config struct {
	BaseURL  string        // Base URL of a running service; empty skips verification
	DataDir  string        // Directory the match document is written to
	MatchID  int           // Match id; the document is {DataDir}/{MatchID}.json
	Players  int           // Players per team
	Events   int           // Number of events to generate
	Seed     uint64        // Seed for reproducible matches
	Workers  int           // Concurrent verification requests
	Timeout  time.Duration // HTTP request timeout
	Verbose  bool          // Log each mismatch found during verification
	Generate GenerateOptions
}

// GenerateOptions tunes the event mix.
type GenerateOptions struct {
	// MissingMinuteEvery drops the minute from every n-th event (0 keeps all).
	MissingMinuteEvery int
}

// RawEvent is one event in the StatsBomb open-data layout.
type RawEvent struct {
	ID     string  `json:"id"`
	Index  int     `json:"index"`
	Minute *int    `json:"minute,omitempty"`
	Type   Named   `json:"type"`
	Player *Person `json:"player,omitempty"`
	Team   *Named  `json:"team,omitempty"`
}

// Named is an {id, name} pair.
type Named struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Person is a player reference.
type Person = Named

// Stats holds run statistics.
type Stats struct {
	EventsGenerated  int
	KeyEvents        int
	PlayersVerified  int
	PlayersMismatch  int
	KeyEventsChecked bool
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
