package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/matchlens/internal/sampledata"
	"github.com/okian/matchlens/pkg/logger"
)

const (
	defaultWorkers     = 4
	defaultToolTimeout = 5 * time.Minute
)

func main() {
	var (
		dataDir  = flag.String("dir", sampledata.DefaultDataDir, "Data directory the match is written to")
		matchID  = flag.Int("match", sampledata.DefaultMatchID, "Match id")
		events   = flag.Int("events", sampledata.DefaultEvents, "Number of events to generate")
		players  = flag.Int("players", sampledata.DefaultPlayers, "Players per team")
		seed     = flag.Uint64("seed", sampledata.DefaultSeed, "Seed for the event mix")
		missing  = flag.Int("missing-minute", 0, "Drop the minute from every n-th event (0 keeps all)")
		baseURL  = flag.String("url", "", "Base URL of a running server to verify")
		workers  = flag.Int("workers", defaultWorkers, "Concurrent verification requests")
		timeout  = flag.Duration("timeout", sampledata.DefaultTimeout, "HTTP request timeout")
		verbose  = flag.Bool("verbose", false, "Log every mismatch")
		help     = flag.Bool("help", false, "Show help")
		jsonLogs = flag.Bool("json", false, "Log as JSON lines")
	)
	flag.Parse()

	if *help {
		sampledata.ShowHelp()
		return
	}

	if err := logger.Init(logger.WithJSON(*jsonLogs)); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultToolTimeout)
	defer cancel()

	config := &sampledata.Config{
		BaseURL:  *baseURL,
		DataDir:  *dataDir,
		MatchID:  *matchID,
		Players:  *players,
		Events:   *events,
		Seed:     *seed,
		Workers:  *workers,
		Timeout:  *timeout,
		Verbose:  *verbose,
		Generate: sampledata.GenerateOptions{MissingMinuteEvery: *missing},
	}

	if err := sampledata.Run(ctx, config); err != nil {
		logger.Get().Error(ctx, "sample match failed", logger.Error(err))
		os.Exit(1)
	}
}
