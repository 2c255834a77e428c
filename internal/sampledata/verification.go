package sampledata

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/okian/matchlens/pkg/logger"
)

// Report lists the differences found by Verify.
type Report struct {
	Checked    int
	Mismatches []string
}

// OK reports whether no differences were found.
func (r Report) OK() bool { return len(r.Mismatches) == 0 }

// Verify compares the server's key events and every roster profile with
// the expectations. Profiles are fetched by a pool of workers.
func Verify(ctx context.Context, c *Client, matchID, workers int, exp Expectations) (Report, error) {
	var (
		report Report
		mu     sync.Mutex
	)
	mismatch := func(format string, args ...any) {
		mu.Lock()
		report.Mismatches = append(report.Mismatches, fmt.Sprintf(format, args...))
		mu.Unlock()
	}

	keys, err := c.KeyEvents(ctx, matchID)
	if err != nil {
		return report, fmt.Errorf("key events: %w", err)
	}
	if len(keys) != len(exp.KeyEvents) {
		mismatch("key events: got %d, want %d", len(keys), len(exp.KeyEvents))
	} else {
		for i := range keys {
			if keys[i].Category != exp.KeyEvents[i].Category || keys[i].ID != exp.KeyEvents[i].ID {
				mismatch("key event %d: got %s/%s, want %s/%s", i, keys[i].Category, keys[i].ID, exp.KeyEvents[i].Category, exp.KeyEvents[i].ID)
				break
			}
		}
	}

	workers = max(1, min(workers, len(exp.Roster)))
	poolCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	ids := make(chan int, workers*2)
	errs := make(chan error, workers)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range ids {
				got, found, err := c.Profile(poolCtx, matchID, id)
				if err != nil {
					errs <- fmt.Errorf("profile %d: %w", id, err)
					cancel()
					return
				}
				want, present := exp.Profiles[id]
				switch {
				case found != present:
					mismatch("profile %d: found=%t, want %t", id, found, present)
				case found && !reflect.DeepEqual(got, want):
					mismatch("profile %d: got %+v, want %+v", id, got, want)
				}
				mu.Lock()
				report.Checked++
				mu.Unlock()
			}
		}()
	}

	go func() {
		defer close(ids)
		for _, id := range exp.Roster {
			select {
			case <-poolCtx.Done():
				return
			case ids <- id:
			}
		}
	}()

	wg.Wait()
	close(errs)
	if err := <-errs; err != nil {
		return report, err
	}
	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("verification interrupted: %w", err)
	}

	logger.Get().Info(ctx, "verification finished",
		logger.Int("checked", report.Checked),
		logger.Int("mismatches", len(report.Mismatches)),
	)
	return report, nil
}
