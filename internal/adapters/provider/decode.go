package provider

import (
	"fmt"

	"github.com/okian/matchlens/internal/domain/model"
	"github.com/tidwall/gjson"
)

// DecodeEvents parses a match document. The category is read from
// "type.name" (StatsBomb) or, failing that, a flat "category" field.
// Minute, player and team are optional; a player without a numeric id
// keeps its name but cannot be looked up by id.
func DecodeEvents(data []byte) ([]model.Event, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidPayload)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, fmt.Errorf("%w: expected an array of events", ErrInvalidPayload)
	}

	items := doc.Array()
	events := make([]model.Event, 0, len(items))
	for i, item := range items {
		if !item.IsObject() {
			return nil, fmt.Errorf("%w: event %d is not an object", ErrInvalidPayload, i)
		}
		events = append(events, decodeEvent(item))
	}
	return events, nil
}

func decodeEvent(item gjson.Result) model.Event {
	e := model.Event{
		ID:    item.Get("id").String(),
		Index: int(item.Get("index").Int()),
	}

	if name := item.Get("type.name"); name.Exists() {
		e.Category = name.String()
	} else {
		e.Category = item.Get("category").String()
	}

	if m := item.Get("minute"); m.Exists() && m.Type == gjson.Number {
		e.Minute = model.Minute(int(m.Int()))
	}

	if player := item.Get("player"); player.IsObject() {
		e.Player = &model.Player{Name: player.Get("name").String()}
		if pid := player.Get("id"); pid.Exists() && pid.Type == gjson.Number {
			e.Player.ID = int(pid.Int())
		} else {
			e.Player.NoID = true
		}
	}

	if team := item.Get("team"); team.IsObject() {
		e.Team = &model.Team{
			ID:   int(team.Get("id").Int()),
			Name: team.Get("name").String(),
		}
	}
	return e
}
