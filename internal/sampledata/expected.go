package sampledata

import (
	"encoding/json"
	"fmt"

	"github.com/okian/matchlens/internal/adapters/provider"
	"github.com/okian/matchlens/internal/domain/keyevents"
	"github.com/okian/matchlens/internal/domain/model"
	"github.com/okian/matchlens/internal/domain/profile"
)

// Expectations are the answers a correct server gives for a match.
type Expectations struct {
	KeyEvents []model.Event
	Profiles  map[int]model.PlayerProfile // absent players are missing
	Roster    []int
}

// Expect computes the answers for events by decoding them the way the
// provider does and running the domain aggregation locally.
func Expect(events []RawEvent, roster []int) (Expectations, error) {
	raw, err := json.Marshal(events)
	if err != nil {
		return Expectations{}, fmt.Errorf("failed to marshal events: %w", err)
	}
	decoded, err := provider.DecodeEvents(raw)
	if err != nil {
		return Expectations{}, fmt.Errorf("failed to decode events: %w", err)
	}

	exp := Expectations{
		KeyEvents: keyevents.Filter(decoded),
		Profiles:  make(map[int]model.PlayerProfile, len(roster)),
		Roster:    roster,
	}
	for _, id := range roster {
		if p, ok := profile.Build(decoded, id); ok {
			exp.Profiles[id] = p
		}
	}
	return exp, nil
}
