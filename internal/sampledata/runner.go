package sampledata

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/okian/matchlens/pkg/logger"
)

// Run generates a sample match, writes it to the data directory and, when
// a base URL is configured, verifies the running server's answers.
func Run(ctx context.Context, config *Config) error {
	if config.MatchID <= 0 || config.Events <= 0 || config.Players <= 0 {
		return fmt.Errorf("%w: match id, event and player counts must be positive", ErrInvalidArg)
	}
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get()

	log.Info(ctx, "generating sample match",
		logger.Int("matchID", config.MatchID),
		logger.Int("events", config.Events),
		logger.Int("players", config.Players),
		logger.Int("seed", int(config.Seed)),
	)

	events := Generate(config.Seed, config.Players, config.Events, config.Generate)
	stats.EventsGenerated = len(events)

	path, err := Write(config.DataDir, config.MatchID, events)
	if err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}
	log.Info(ctx, "match saved", logger.String("path", path))

	exp, err := Expect(events, Roster(config.Players))
	if err != nil {
		return err
	}
	stats.KeyEvents = len(exp.KeyEvents)

	if config.BaseURL != "" {
		client := NewClient(config.BaseURL, config.Timeout)
		if err := client.Health(ctx); err != nil {
			return err
		}
		report, err := Verify(ctx, client, config.MatchID, config.Workers, exp)
		if err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		stats.KeyEventsChecked = true
		stats.PlayersVerified = report.Checked
		stats.PlayersMismatch = len(report.Mismatches)
		if config.Verbose {
			for _, m := range report.Mismatches {
				log.Warn(ctx, "mismatch", logger.String("detail", m))
			}
		}
		if !report.OK() {
			return fmt.Errorf("%w: %s", ErrMismatch, strings.Join(report.Mismatches, "; "))
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)
	return nil
}

// displayFinalStats logs the run statistics.
func displayFinalStats(ctx context.Context, stats *Stats) {
	logger.Get().Info(ctx, "final statistics",
		logger.Int("eventsGenerated", stats.EventsGenerated),
		logger.Int("keyEvents", stats.KeyEvents),
		logger.Bool("verified", stats.KeyEventsChecked),
		logger.Int("playersVerified", stats.PlayersVerified),
		logger.Int("playersMismatch", stats.PlayersMismatch),
		logger.Duration("duration", stats.Duration),
	)
}
