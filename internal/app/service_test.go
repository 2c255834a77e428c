package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/okian/matchlens/internal/adapters/provider"
	service "github.com/okian/matchlens/internal/app"
	"github.com/okian/matchlens/internal/domain/model"
	"github.com/okian/matchlens/internal/domain/narrative"
	"github.com/okian/matchlens/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

type fakeProvider struct {
	mu      sync.Mutex
	matches map[int][]model.Event
	err     error
	calls   int
}

func (p *fakeProvider) FetchEvents(_ context.Context, matchID int) ([]model.Event, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	events, ok := p.matches[matchID]
	if !ok {
		return nil, fmt.Errorf("match %d: %w", matchID, provider.ErrMatchNotFound)
	}
	return events, nil
}

type fakeCompleter struct {
	mu       sync.Mutex
	text     string
	err      error
	requests []narrative.Request
}

func (c *fakeCompleter) Complete(_ context.Context, req narrative.Request) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests = append(c.requests, req)
	return c.text, c.err
}

func ev(category string, minute int, playerID int, name, team string) model.Event {
	return model.Event{
		Category: category,
		Minute:   model.Minute(minute),
		Player:   &model.Player{ID: playerID, Name: name},
		Team:     &model.Team{Name: team},
	}
}

func sampleMatch() []model.Event {
	return []model.Event{
		ev(model.CategoryPass, 10, 1, "Ana", "Reds"),
		ev(model.CategoryPass, 10, 1, "Ana", "Reds"),
		ev(model.CategoryShot, 12, 2, "Bia", "Blues"),
		ev(model.CategoryTackle, 30, 1, "Ana", "Reds"),
		ev(model.CategoryGoal, 45, 1, "Ana", "Reds"),
		ev(model.CategoryCard, 60, 2, "Bia", "Blues"),
	}
}

func TestService_New(t *testing.T) {
	Convey("Given no provider", t, func() {
		svc, err := service.New(nil)

		Convey("Then construction fails", func() {
			So(errors.Is(err, service.ErrNoProvider), ShouldBeTrue)
			So(svc, ShouldBeNil)
		})
	})

	Convey("Given a provider and options", t, func() {
		svc, err := service.New(&fakeProvider{},
			service.WithCompleter(&fakeCompleter{}),
			service.WithLanguage("pt-BR"),
			service.WithLogger(logger.Get()),
		)

		Convey("Then it should be created with the options applied", func() {
			So(err, ShouldBeNil)
			So(svc.GenerationEnabled(), ShouldBeTrue)
			So(svc.Language(), ShouldEqual, "pt-BR")
		})
	})

	Convey("Given only a provider", t, func() {
		svc, err := service.New(&fakeProvider{})

		Convey("Then generation is disabled and English is used", func() {
			So(err, ShouldBeNil)
			So(svc.GenerationEnabled(), ShouldBeFalse)
			So(svc.Language(), ShouldEqual, "en")
		})
	})
}

func TestService_GetKeyEvents(t *testing.T) {
	Convey("Given a service over a known match", t, func() {
		p := &fakeProvider{matches: map[int][]model.Event{7: sampleMatch()}}
		svc, _ := service.New(p)
		ctx := context.Background()

		Convey("When key events are requested", func() {
			keys, err := svc.GetKeyEvents(ctx, 7)

			Convey("Then only key categories are returned in order", func() {
				So(err, ShouldBeNil)
				cats := make([]string, 0, len(keys))
				for _, k := range keys {
					cats = append(cats, k.Category)
				}
				So(cats, ShouldResemble, []string{model.CategoryShot, model.CategoryGoal, model.CategoryCard})
			})

			Convey("And the provider is called once", func() {
				So(p.calls, ShouldEqual, 1)
			})
		})

		Convey("When requested twice", func() {
			_, _ = svc.GetKeyEvents(ctx, 7)
			_, _ = svc.GetKeyEvents(ctx, 7)

			Convey("Then nothing is cached", func() {
				So(p.calls, ShouldEqual, 2)
			})
		})

		Convey("When the match is unknown", func() {
			keys, err := svc.GetKeyEvents(ctx, 99)

			Convey("Then the provider error propagates", func() {
				So(errors.Is(err, provider.ErrMatchNotFound), ShouldBeTrue)
				So(keys, ShouldBeNil)
			})
		})
	})
}

func TestService_GetPlayerProfile(t *testing.T) {
	Convey("Given a service over a known match", t, func() {
		p := &fakeProvider{matches: map[int][]model.Event{7: sampleMatch()}}
		svc, _ := service.New(p)
		ctx := context.Background()

		Convey("When a present player's profile is requested", func() {
			prof, ok, err := svc.GetPlayerProfile(ctx, 7, 1)

			Convey("Then the statistics are aggregated", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(prof, ShouldResemble, model.PlayerProfile{
					Name:           "Ana",
					Passes:         2,
					Finalizations:  1,
					Dispossessions: 1,
					MinutesPlayed:  36,
				})
			})
		})

		Convey("When an absent player's profile is requested", func() {
			prof, ok, err := svc.GetPlayerProfile(ctx, 7, 42)

			Convey("Then absence is reported without error", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
				So(prof, ShouldResemble, model.PlayerProfile{})
			})
		})

		Convey("When the provider fails", func() {
			p.err = provider.ErrUnavailable
			_, ok, err := svc.GetPlayerProfile(ctx, 7, 1)

			Convey("Then the error propagates", func() {
				So(errors.Is(err, provider.ErrUnavailable), ShouldBeTrue)
				So(ok, ShouldBeFalse)
			})
		})
	})
}

func TestService_Summary(t *testing.T) {
	Convey("Given a service with a working completer", t, func() {
		p := &fakeProvider{matches: map[int][]model.Event{
			7: sampleMatch(),
			8: {ev(model.CategoryPass, 1, 1, "Ana", "Reds")},
		}}
		c := &fakeCompleter{text: "\n  A tight game.  \n"}
		svc, _ := service.New(p,
			service.WithCompleter(c),
			service.WithSettings(narrative.Settings{SummaryMaxTokens: 99, Temperature: 0.3}),
		)
		ctx := context.Background()

		Convey("When a summary is requested", func() {
			res := svc.Summary(ctx, 7)

			Convey("Then the trimmed text is returned", func() {
				So(res.Outcome, ShouldEqual, narrative.Generated)
				So(res.Text, ShouldEqual, "A tight game.")
				So(res.Err, ShouldBeNil)
			})

			Convey("And the completer received the configured parameters", func() {
				So(c.requests, ShouldHaveLength, 1)
				req := c.requests[0]
				So(req.MaxTokens, ShouldEqual, 99)
				So(req.Temperature, ShouldEqual, 0.3)
				So(req.N, ShouldEqual, 1)
				So(req.Stop, ShouldBeNil)
				So(req.Prompt, ShouldContainSubstring, "At minute 45, Ana of Reds performed a goal.")
				So(strings.Contains(req.Prompt, "performed a pass"), ShouldBeFalse)
			})
		})

		Convey("When the match has no key events", func() {
			text := svc.SummarizeMatch(ctx, 8)

			Convey("Then the fixed message is returned and the completer is not called", func() {
				So(text, ShouldEqual, "No key events found for this match.")
				So(c.requests, ShouldBeEmpty)
			})
		})

		Convey("When the match is unknown", func() {
			res := svc.Summary(ctx, 99)

			Convey("Then the fallback message is returned with the cause", func() {
				So(res.Outcome, ShouldEqual, narrative.Unavailable)
				So(res.Text, ShouldEqual, "Could not generate the match summary.")
				So(errors.Is(res.Err, provider.ErrMatchNotFound), ShouldBeTrue)
				So(errors.Is(res.Err, narrative.ErrGenerationUnavailable), ShouldBeTrue)
				So(c.requests, ShouldBeEmpty)
			})
		})
	})

	Convey("Given a service whose completer fails", t, func() {
		p := &fakeProvider{matches: map[int][]model.Event{7: sampleMatch()}}
		c := &fakeCompleter{err: errors.New("quota exceeded")}
		svc, _ := service.New(p, service.WithCompleter(c))

		Convey("When the summary text is requested", func() {
			text := svc.SummarizeMatch(context.Background(), 7)

			Convey("Then it never fails and reports the fallback", func() {
				So(text, ShouldEqual, "Could not generate the match summary.")
				So(c.requests, ShouldHaveLength, 1)
			})
		})
	})

	Convey("Given a service without a completer", t, func() {
		p := &fakeProvider{matches: map[int][]model.Event{7: sampleMatch()}}
		svc, _ := service.New(p)

		Convey("When a summary is requested", func() {
			res := svc.Summary(context.Background(), 7)

			Convey("Then generation is reported as not configured", func() {
				So(res.Outcome, ShouldEqual, narrative.Unavailable)
				So(errors.Is(res.Err, narrative.ErrNotConfigured), ShouldBeTrue)
			})
		})
	})
}

func TestService_Narrative(t *testing.T) {
	Convey("Given a service with a working completer", t, func() {
		p := &fakeProvider{matches: map[int][]model.Event{
			7: sampleMatch(),
			8: {},
		}}
		c := &fakeCompleter{text: "What a match."}
		svc, _ := service.New(p, service.WithCompleter(c))
		ctx := context.Background()

		Convey("When a narrative is requested with a style", func() {
			text := svc.GenerateNarrative(ctx, 7, "Humorous")

			Convey("Then the style is lower-cased into the prompt", func() {
				So(text, ShouldEqual, "What a match.")
				So(c.requests, ShouldHaveLength, 1)
				So(c.requests[0].Prompt, ShouldStartWith, "Write a humorous narrative")
				So(c.requests[0].MaxTokens, ShouldEqual, narrative.DefaultNarrativeMaxTokens)
				So(c.requests[0].Temperature, ShouldEqual, narrative.DefaultTemperature)
			})
		})

		Convey("When a narrative is requested with the default style", func() {
			_ = svc.GenerateNarrative(ctx, 7, narrative.DefaultStyle)

			Convey("Then the formal style is used", func() {
				So(c.requests[0].Prompt, ShouldStartWith, "Write a formal narrative")
			})
		})

		Convey("When the match has no events", func() {
			res := svc.Narrative(ctx, 8, "Formal")

			Convey("Then the fixed message is returned", func() {
				So(res.Outcome, ShouldEqual, narrative.NoKeyEvents)
				So(res.Text, ShouldEqual, "No events found to generate the narrative.")
				So(c.requests, ShouldBeEmpty)
			})
		})

		Convey("When the provider fails", func() {
			p.err = provider.ErrUnavailable
			text := svc.GenerateNarrative(ctx, 7, "Formal")

			Convey("Then the fallback message is returned", func() {
				So(text, ShouldEqual, "Could not generate the match narrative.")
			})
		})
	})

	Convey("Given a Portuguese service", t, func() {
		p := &fakeProvider{matches: map[int][]model.Event{8: {}}}
		svc, _ := service.New(p, service.WithLanguage("pt-BR"))

		Convey("When the match has no events", func() {
			text := svc.GenerateNarrative(context.Background(), 8, "")

			Convey("Then the Portuguese message is returned", func() {
				So(text, ShouldEqual, "Nenhum evento encontrado para gerar a narrativa.")
			})
		})
	})
}

func TestService_Concurrent(t *testing.T) {
	Convey("Given a shared service", t, func() {
		p := &fakeProvider{matches: map[int][]model.Event{7: sampleMatch()}}
		c := &fakeCompleter{text: "ok"}
		svc, _ := service.New(p, service.WithCompleter(c))

		Convey("When many goroutines call it", func() {
			var wg sync.WaitGroup
			results := make([]string, 16)
			for i := range results {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					results[i] = svc.SummarizeMatch(context.Background(), 7)
				}(i)
			}
			wg.Wait()

			Convey("Then every call fetches and generates once", func() {
				for _, r := range results {
					So(r, ShouldEqual, "ok")
				}
				So(p.calls, ShouldEqual, 16)
				So(c.requests, ShouldHaveLength, 16)
			})
		})
	})
}
