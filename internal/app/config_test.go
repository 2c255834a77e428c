package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	service "github.com/okian/matchlens/internal/app"
	"github.com/okian/matchlens/internal/config"
	"github.com/okian/matchlens/internal/domain/narrative"
	. "github.com/smartystreets/goconvey/convey"
)

const matchDoc = `[
  {"id": "a", "index": 1, "minute": 3, "type": {"name": "Pass"}, "player": {"id": 10, "name": "Ana"}, "team": {"id": 1, "name": "Reds"}},
  {"id": "b", "index": 2, "minute": 20, "type": {"name": "Goal"}, "player": {"id": 10, "name": "Ana"}, "team": {"id": 1, "name": "Reds"}}
]`

func TestFromConfig(t *testing.T) {
	Convey("Given a file provider configuration", t, func() {
		dir := t.TempDir()
		So(os.WriteFile(filepath.Join(dir, "101.json"), []byte(matchDoc), 0o600), ShouldBeNil)

		cfg := config.New()
		cfg.DataDir = dir

		Convey("When the service is wired without an API key", func() {
			svc, err := service.FromConfig(cfg, nil)
			So(err, ShouldBeNil)

			Convey("Then it reads matches from the data directory", func() {
				prof, ok, err := svc.GetPlayerProfile(context.Background(), 101, 10)
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(prof.Passes, ShouldEqual, 1)
				So(prof.Finalizations, ShouldEqual, 1)
				So(prof.MinutesPlayed, ShouldEqual, 18)
			})

			Convey("And generation is disabled", func() {
				So(svc.GenerationEnabled(), ShouldBeFalse)
				res := svc.Summary(context.Background(), 101)
				So(res.Outcome, ShouldEqual, narrative.Unavailable)
				So(errors.Is(res.Err, narrative.ErrNotConfigured), ShouldBeTrue)
			})
		})

		Convey("When an API key is configured", func() {
			cfg.OpenAIAPIKey = "sk-test"
			svc, err := service.FromConfig(cfg, nil)

			Convey("Then generation is enabled", func() {
				So(err, ShouldBeNil)
				So(svc.GenerationEnabled(), ShouldBeTrue)
			})
		})

		Convey("When the language is Portuguese", func() {
			cfg.Language = "pt-BR"
			svc, err := service.FromConfig(cfg, nil)

			Convey("Then the Portuguese catalog is used", func() {
				So(err, ShouldBeNil)
				So(svc.Language(), ShouldEqual, "pt-BR")
			})
		})
	})

	Convey("Given an unknown provider", t, func() {
		cfg := config.New()
		cfg.Provider = "ftp"

		Convey("Then wiring fails with an invalid config error", func() {
			_, err := service.FromConfig(cfg, nil)
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})
	})

	Convey("Given an http provider configuration", t, func() {
		cfg := config.New()
		cfg.Provider = config.ProviderHTTP

		Convey("Then the provider is built", func() {
			p, err := service.NewProvider(cfg)
			So(err, ShouldBeNil)
			So(p, ShouldNotBeNil)
		})
	})
}
