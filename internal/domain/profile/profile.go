// Package profile folds a match's event stream into per-player statistics.
package profile

import "github.com/okian/matchlens/internal/domain/model"

// Build computes the profile of playerID from the events of one match.
// It returns false when no event is attributed to the player, so that
// "not in the match" stays distinct from "in the match with zero stats".
//
// MinutesPlayed is max-min+1 over the events that carry a minute and 0
// when none do. A player seen only at minute 0 therefore reports 1, while
// a player with no minute data reports 0.
func Build(events []model.Event, playerID int) (model.PlayerProfile, bool) {
	var (
		p         model.PlayerProfile
		found     bool
		hasMinute bool
		minMinute int
		maxMinute int
	)
	for _, e := range events {
		id, ok := e.PlayerID()
		if !ok || id != playerID {
			continue
		}
		if !found {
			p.Name = e.Player.Name
			found = true
		}

		switch e.Category {
		case model.CategoryPass:
			p.Passes++
		case model.CategoryShot, model.CategoryGoal:
			p.Finalizations++
		case model.CategoryTackle:
			p.Dispossessions++
		}

		if e.Minute == nil {
			continue
		}
		m := *e.Minute
		if !hasMinute {
			minMinute, maxMinute, hasMinute = m, m, true
			continue
		}
		minMinute = min(minMinute, m)
		maxMinute = max(maxMinute, m)
	}
	if !found {
		return model.PlayerProfile{}, false
	}
	if hasMinute {
		p.MinutesPlayed = maxMinute - minMinute + 1
	}
	return p, true
}
