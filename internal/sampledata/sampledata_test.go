package sampledata_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gorilla/mux"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/matchlens/internal/adapters/http/api"
	"github.com/okian/matchlens/internal/adapters/provider"
	service "github.com/okian/matchlens/internal/app"
	"github.com/okian/matchlens/internal/domain/model"
	"github.com/okian/matchlens/internal/sampledata"
	"github.com/okian/matchlens/pkg/logger"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func categories(events []sampledata.RawEvent) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Type.Name
	}
	return out
}

func TestGenerate(t *testing.T) {
	Convey("Given a seed", t, func() {
		a := sampledata.Generate(42, 5, 300, sampledata.GenerateOptions{})
		b := sampledata.Generate(42, 5, 300, sampledata.GenerateOptions{})

		Convey("Then generation is reproducible apart from ids", func() {
			So(a, ShouldHaveLength, 301)
			So(categories(a), ShouldResemble, categories(b))
			So(a[10].Player.ID, ShouldEqual, b[10].Player.ID)
			So(a[10].ID, ShouldNotEqual, b[10].ID)
		})

		Convey("And the stream starts with a kick-off without a player", func() {
			So(a[0].Player, ShouldBeNil)
			So(*a[0].Minute, ShouldEqual, 0)
		})

		Convey("And indexes and minutes never decrease", func() {
			for i := 1; i < len(a); i++ {
				So(a[i].Index, ShouldEqual, a[i-1].Index+1)
				So(*a[i].Minute, ShouldBeGreaterThanOrEqualTo, *a[i-1].Minute)
			}
		})

		Convey("And every player is on the roster", func() {
			roster := map[int]bool{}
			for _, id := range sampledata.Roster(5) {
				roster[id] = true
			}
			So(roster, ShouldHaveLength, 10)
			for _, e := range a[1:] {
				So(roster[e.Player.ID], ShouldBeTrue)
			}
		})
	})

	Convey("Given minutes are dropped every third event", t, func() {
		events := sampledata.Generate(1, 2, 9, sampledata.GenerateOptions{MissingMinuteEvery: 3})

		Convey("Then those events have no minute", func() {
			missing := 0
			for _, e := range events {
				if e.Minute == nil {
					missing++
				}
			}
			So(missing, ShouldEqual, 3)
		})
	})
}

func TestWriteAndExpect(t *testing.T) {
	Convey("Given a generated match written to disk", t, func() {
		dir := t.TempDir()
		events := sampledata.Generate(3, 4, 200, sampledata.GenerateOptions{})
		path, err := sampledata.Write(filepath.Join(dir, "events"), 77, events)
		So(err, ShouldBeNil)

		Convey("Then the provider reads it back", func() {
			So(path, ShouldEndWith, "77.json")
			got, err := provider.NewFileProvider(filepath.Join(dir, "events")).FetchEvents(context.Background(), 77)
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, len(events))
			So(got[5].Category, ShouldEqual, events[5].Type.Name)
			So(got[5].ID, ShouldEqual, events[5].ID)
		})

		Convey("And expectations only keep key events", func() {
			exp, err := sampledata.Expect(events, sampledata.Roster(4))
			So(err, ShouldBeNil)
			for _, k := range exp.KeyEvents {
				So(k.Category, ShouldBeIn, []string{model.CategoryGoal, model.CategoryCard, model.CategorySubstitution, model.CategoryShot})
			}
			So(len(exp.Profiles), ShouldBeLessThanOrEqualTo, 8)
		})
	})

	Convey("Given no events", t, func() {
		_, err := sampledata.Write(t.TempDir(), 1, nil)

		Convey("Then nothing is written", func() {
			So(errors.Is(err, sampledata.ErrNoEvents), ShouldBeTrue)
		})
	})
}

func newServer(dataDir string) *httptest.Server {
	svc, err := service.New(provider.NewFileProvider(dataDir))
	if err != nil {
		panic(err)
	}
	r := mux.NewRouter()
	api.NewServer(svc, svc).Register(context.Background(), r)
	return httptest.NewServer(r)
}

func TestRun(t *testing.T) {
	Convey("Given a running server over the data directory", t, func() {
		dir := t.TempDir()
		ts := newServer(dir)
		defer ts.Close()

		cfg := &sampledata.Config{
			BaseURL: ts.URL,
			DataDir: dir,
			MatchID: 555,
			Players: 6,
			Events:  400,
			Seed:    9,
			Workers: 3,
			Timeout: 5 * time.Second,
		}

		Convey("When the tool runs", func() {
			err := sampledata.Run(context.Background(), cfg)

			Convey("Then the server agrees with the local expectations", func() {
				So(err, ShouldBeNil)
				_, statErr := os.Stat(filepath.Join(dir, "555.json"))
				So(statErr, ShouldBeNil)
			})
		})

		Convey("When the expectations are tampered with", func() {
			events := sampledata.Generate(cfg.Seed, cfg.Players, cfg.Events, cfg.Generate)
			_, err := sampledata.Write(dir, cfg.MatchID, events)
			So(err, ShouldBeNil)
			exp, err := sampledata.Expect(events, sampledata.Roster(cfg.Players))
			So(err, ShouldBeNil)
			for id, p := range exp.Profiles {
				p.Passes++
				exp.Profiles[id] = p
				break
			}

			report, err := sampledata.Verify(context.Background(), sampledata.NewClient(ts.URL, time.Second), cfg.MatchID, 2, exp)

			Convey("Then the mismatch is reported", func() {
				So(err, ShouldBeNil)
				So(report.OK(), ShouldBeFalse)
				So(report.Mismatches, ShouldHaveLength, 1)
				So(report.Checked, ShouldEqual, 12)
			})
		})
	})

	Convey("Given an unreachable server", t, func() {
		cfg := &sampledata.Config{
			BaseURL: "http://127.0.0.1:1",
			DataDir: t.TempDir(),
			MatchID: 1,
			Players: 2,
			Events:  10,
			Timeout: time.Second,
		}

		Convey("Then the health check fails", func() {
			err := sampledata.Run(context.Background(), cfg)
			So(errors.Is(err, sampledata.ErrUnhealthy), ShouldBeTrue)
		})
	})

	Convey("Given invalid arguments", t, func() {
		err := sampledata.Run(context.Background(), &sampledata.Config{})

		Convey("Then the run is rejected", func() {
			So(errors.Is(err, sampledata.ErrInvalidArg), ShouldBeTrue)
		})
	})

	Convey("Given a non-positive player count", t, func() {
		dir := t.TempDir()

		Convey("Then zero and negative counts are rejected before writing", func() {
			for _, players := range []int{0, -1} {
				err := sampledata.Run(context.Background(), &sampledata.Config{
					DataDir: dir, MatchID: 9, Events: 10, Players: players,
				})
				So(errors.Is(err, sampledata.ErrInvalidArg), ShouldBeTrue)
			}
			entries, _ := os.ReadDir(dir)
			So(entries, ShouldBeEmpty)
		})

		Convey("And Roster does not panic on a negative count", func() {
			So(func() { sampledata.Roster(-1) }, ShouldNotPanic)
			So(sampledata.Roster(-1), ShouldBeEmpty)
		})
	})
}

func TestClient(t *testing.T) {
	Convey("Given a server answering 500", t, func() {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()
		c := sampledata.NewClient(ts.URL+"/", time.Second)

		Convey("Then profile lookups report the status", func() {
			_, _, err := c.Profile(context.Background(), 1, 2)
			So(errors.Is(err, sampledata.ErrBadStatus), ShouldBeTrue)
		})

		Convey("And the health check fails", func() {
			So(errors.Is(c.Health(context.Background()), sampledata.ErrUnhealthy), ShouldBeTrue)
		})
	})
}
