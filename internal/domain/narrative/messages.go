package narrative

import (
	"golang.org/x/text/language"
)

// Messages holds the fixed, localized texts used around generation.
type Messages struct {
	Tag language.Tag

	// Line formats one event: minute, player, team, lower-cased category.
	Line          string
	NotAvailable  string
	SummaryHeader string
	SummaryTail   string
	// NarrativeHeader takes the lower-cased style.
	NarrativeHeader string
	NarrativeTail   string

	NoSummaryEvents      string
	NoNarrativeEvents    string
	SummaryUnavailable   string
	NarrativeUnavailable string
}

var english = Messages{
	Tag:                  language.English,
	Line:                 "At minute %s, %s of %s performed a %s.",
	NotAvailable:         "N/A",
	SummaryHeader:        "Summarize the following events of a football match:",
	SummaryTail:          "Summary:",
	NarrativeHeader:      "Write a %s narrative for the football match with the following events:",
	NarrativeTail:        "Narrative:",
	NoSummaryEvents:      "No key events found for this match.",
	NoNarrativeEvents:    "No events found to generate the narrative.",
	SummaryUnavailable:   "Could not generate the match summary.",
	NarrativeUnavailable: "Could not generate the match narrative.",
}

var portuguese = Messages{
	Tag:                  language.BrazilianPortuguese,
	Line:                 "Aos %s' minuto, %s do %s realizou um(a) %s.",
	NotAvailable:         "N/A",
	SummaryHeader:        "Resuma os seguintes eventos de uma partida de futebol:",
	SummaryTail:          "Resumo:",
	NarrativeHeader:      "Crie uma narrativa %s para a partida de futebol com os seguintes eventos:",
	NarrativeTail:        "Narrativa:",
	NoSummaryEvents:      "Nenhum evento principal encontrado para esta partida.",
	NoNarrativeEvents:    "Nenhum evento encontrado para gerar a narrativa.",
	SummaryUnavailable:   "Não foi possível gerar a sumarização da partida.",
	NarrativeUnavailable: "Não foi possível gerar a narrativa da partida.",
}

// catalog order matters: the first entry is the fallback for the matcher.
var catalog = []Messages{english, portuguese}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(catalog))
	for i, m := range catalog {
		tags[i] = m.Tag
	}
	return language.NewMatcher(tags)
}()

// MessagesFor returns the catalog entry best matching lang, which may be a
// BCP 47 tag or an Accept-Language value. Unknown or empty input yields
// English.
func MessagesFor(lang string) Messages {
	if lang == "" {
		return english
	}
	_, idx := language.MatchStrings(matcher, lang)
	return catalog[idx]
}
