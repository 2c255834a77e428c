// Package model contains domain models passed between layers.
package model

// Event categories as named by the match data provider.
const (
	CategoryPass         = "Pass"
	CategoryShot         = "Shot"
	CategoryGoal         = "Goal"
	CategoryCard         = "Card"
	CategorySubstitution = "Substitution"
	CategoryTackle       = "Tackle"
)

// Player identifies the player an event is attributed to. NoID marks a
// player the provider named without a numeric id: it is rendered by name
// but never matched by id.
type Player struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
	NoID bool   `json:"-"`
}

// Team identifies the team an event is attributed to.
type Team struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
}

// Event is one discrete action in a match. Only Category is guaranteed;
// the remaining fields are absent when the provider did not send them.
type Event struct {
	ID       string  `json:"id,omitempty"`    // provider event id, if any
	Index    int     `json:"index,omitempty"` // position in the provider's stream
	Category string  `json:"category"`
	Minute   *int    `json:"minute,omitempty"`
	Player   *Player `json:"player,omitempty"`
	Team     *Team   `json:"team,omitempty"`
}

// PlayerID returns the attributed player id and whether the event has one.
func (e Event) PlayerID() (int, bool) {
	if e.Player == nil || e.Player.NoID {
		return 0, false
	}
	return e.Player.ID, true
}

// PlayerProfile holds per-player statistics derived from one match.
type PlayerProfile struct {
	Name           string `json:"name"`
	Passes         int    `json:"passes"`
	Finalizations  int    `json:"finalizations"`
	Dispossessions int    `json:"dispossessions"`
	MinutesPlayed  int    `json:"minutes_played"`
}

// Minute is a convenience for building events with a minute set.
func Minute(m int) *int {
	return &m
}
