package model_test

import (
	"encoding/json"
	"testing"

	model "github.com/okian/matchlens/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestEvent(t *testing.T) {
	convey.Convey("Given an Event struct", t, func() {
		convey.Convey("When the event carries a player", func() {
			event := model.Event{
				Category: model.CategoryPass,
				Minute:   model.Minute(12),
				Player:   &model.Player{ID: 5503, Name: "Lionel Andrés Messi Cuccittini"},
				Team:     &model.Team{ID: 217, Name: "Barcelona"},
			}

			convey.Convey("Then PlayerID should report it", func() {
				id, ok := event.PlayerID()
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(id, convey.ShouldEqual, 5503)
				convey.So(*event.Minute, convey.ShouldEqual, 12)
			})
		})

		convey.Convey("When the player has a name but no id", func() {
			event := model.Event{Category: model.CategoryGoal, Player: &model.Player{Name: "Ana", NoID: true}}

			convey.Convey("Then PlayerID should report absence", func() {
				_, ok := event.PlayerID()
				convey.So(ok, convey.ShouldBeFalse)
			})

			convey.Convey("And the encoding should carry only the name", func() {
				b, err := json.Marshal(event)
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(b), convey.ShouldEqual, `{"category":"Goal","player":{"name":"Ana"}}`)
			})
		})

		convey.Convey("When the event has no player", func() {
			event := model.Event{Category: "Half Start"}

			convey.Convey("Then PlayerID should report absence", func() {
				id, ok := event.PlayerID()
				convey.So(ok, convey.ShouldBeFalse)
				convey.So(id, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When encoding an event without optional fields", func() {
			b, err := json.Marshal(model.Event{Category: model.CategoryCard})

			convey.Convey("Then absent fields should be omitted", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(b), convey.ShouldEqual, `{"category":"Card"}`)
			})
		})

		convey.Convey("When encoding an event at minute zero", func() {
			b, err := json.Marshal(model.Event{Category: model.CategoryShot, Minute: model.Minute(0)})

			convey.Convey("Then the minute should still be present", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(b), convey.ShouldContainSubstring, `"minute":0`)
			})
		})
	})
}

func TestMinute(t *testing.T) {
	convey.Convey("Given two calls to Minute", t, func() {
		a, b := model.Minute(7), model.Minute(7)

		convey.Convey("Then each should return its own pointer", func() {
			convey.So(a, convey.ShouldNotPointTo, b)
			convey.So(*a, convey.ShouldEqual, *b)
		})
	})
}
