package sampledata

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/okian/matchlens/internal/domain/model"
)

// weighted event mix; non-key categories dominate like in real matches.
var categoryWeights = []struct {
	name   string
	weight int
}{
	{model.CategoryPass, 60},
	{"Carry", 15},
	{model.CategoryTackle, 6},
	{"Pressure", 8},
	{model.CategoryShot, 4},
	{model.CategoryGoal, 1},
	{model.CategoryCard, 1},
	{model.CategorySubstitution, 1},
	{"Foul Committed", 4},
}

var totalWeight = func() int {
	n := 0
	for _, c := range categoryWeights {
		n += c.weight
	}
	return n
}()

var teams = []Named{{ID: 1, Name: "Home FC"}, {ID: 2, Name: "Away United"}}

// Generate builds a reproducible match: the same seed yields the same
// categories, minutes and players. Event ids are random UUIDs, as in the
// open-data documents. The first event is a kick-off without a player.
func Generate(seed uint64, players, events int, opts GenerateOptions) []RawEvent {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	if players < 1 {
		players = 1
	}

	out := make([]RawEvent, 0, events+1)
	kickOff := 0
	out = append(out, RawEvent{
		ID:     uuid.NewString(),
		Index:  1,
		Minute: &kickOff,
		Type:   Named{ID: 35, Name: "Starting XI"},
		Team:   &teams[0],
	})

	for i := 0; i < events; i++ {
		// Minutes never decrease along the stream.
		minute := i * matchMinutes / max(events, 1)
		teamIdx := rng.IntN(len(teams))
		slot := rng.IntN(players)
		team := teams[teamIdx]

		ev := RawEvent{
			ID:     uuid.NewString(),
			Index:  len(out) + 1,
			Type:   Named{ID: i%40 + 1, Name: pickCategory(rng)},
			Player: &Person{ID: playerID(teamIdx, slot), Name: playerName(team, slot)},
			Team:   &team,
		}
		if opts.MissingMinuteEvery <= 0 || (i+1)%opts.MissingMinuteEvery != 0 {
			m := minute
			ev.Minute = &m
		}
		out = append(out, ev)
	}
	return out
}

// Roster lists every player id that can appear in a generated match.
func Roster(players int) []int {
	players = max(players, 0)
	ids := make([]int, 0, players*len(teams))
	for t := range teams {
		for s := 0; s < players; s++ {
			ids = append(ids, playerID(t, s))
		}
	}
	return ids
}

func pickCategory(rng *rand.Rand) string {
	n := rng.IntN(totalWeight)
	for _, c := range categoryWeights {
		if n < c.weight {
			return c.name
		}
		n -= c.weight
	}
	return model.CategoryPass
}

func playerID(team, slot int) int {
	return firstPlayerID + team*teamPlayerIDStride + slot
}

func playerName(team Named, slot int) string {
	return fmt.Sprintf("%s #%d", team.Name, slot+1)
}
