package narrative

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okian/matchlens/internal/domain/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultStyle is used when a narrative request does not name a style.
const DefaultStyle = "Formal"

// lower folds text without locale-specific rules so that a style such as
// "Técnico" becomes "técnico" whatever the catalog language.
var lower = cases.Lower(language.Und)

// RenderLine renders one event as a sentence. Missing minute, player or
// team become the catalog's N/A marker.
func (m Messages) RenderLine(e model.Event) string {
	minute := m.NotAvailable
	if e.Minute != nil {
		minute = strconv.Itoa(*e.Minute)
	}
	player := m.NotAvailable
	if e.Player != nil {
		player = e.Player.Name
	}
	team := m.NotAvailable
	if e.Team != nil {
		team = e.Team.Name
	}
	return fmt.Sprintf(m.Line, minute, player, team, lower.String(e.Category))
}

// RenderEvents renders events one per line, in order.
func (m Messages) RenderEvents(events []model.Event) string {
	var b strings.Builder
	for _, e := range events {
		b.WriteString(m.RenderLine(e))
		b.WriteByte('\n')
	}
	return b.String()
}

// SummaryPrompt builds the prompt for a short match summary.
func (m Messages) SummaryPrompt(events []model.Event) string {
	return m.SummaryHeader + "\n\n" + m.RenderEvents(events) + "\n" + m.SummaryTail
}

// NarrativePrompt builds the prompt for a narrative in the given style.
// The style is free text: it is lower-cased and embedded as is, even when
// empty. Use StyleOrDefault to fill in an absent style.
func (m Messages) NarrativePrompt(events []model.Event, style string) string {
	header := fmt.Sprintf(m.NarrativeHeader, lower.String(style))
	return header + "\n\n" + m.RenderEvents(events) + "\n" + m.NarrativeTail
}

// StyleOrDefault returns the requested style, or DefaultStyle when none
// was given. An explicitly empty style is kept.
func StyleOrDefault(style *string) string {
	if style == nil {
		return DefaultStyle
	}
	return *style
}
