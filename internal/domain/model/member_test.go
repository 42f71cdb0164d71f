package model_test

import (
	"testing"

	"github.com/gyouaiba-hash/sup-selection/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRoster_WithGender(t *testing.T) {
	Convey("Given a mixed roster", t, func() {
		roster := model.Roster{
			{Name: "Aoi", Gender: "female", PracticeCount: 12},
			{Name: "Ken", Gender: "male", PracticeCount: 9},
			{Name: "Mei", Gender: "female", PracticeCount: 4},
		}

		Convey("When selecting one gender", func() {
			got := roster.WithGender("female")

			Convey("Then only matching members remain in original order", func() {
				So(len(got), ShouldEqual, 2)
				So(got[0].Name, ShouldEqual, "Aoi")
				So(got[1].Name, ShouldEqual, "Mei")
			})
		})

		Convey("When selecting everyone", func() {
			Convey("Then an empty label keeps all members", func() {
				So(len(roster.WithGender("")), ShouldEqual, 3)
			})

			Convey("And the all label is case-insensitive", func() {
				So(len(roster.WithGender(" ALL ")), ShouldEqual, 3)
			})
		})

		Convey("When the label matches nobody", func() {
			got := roster.WithGender("other")

			Convey("Then the result is empty but not nil", func() {
				So(got, ShouldNotBeNil)
				So(len(got), ShouldEqual, 0)
			})
		})

		Convey("When filtering", func() {
			got := roster.Filter(func(m model.Member) bool { return m.PracticeCount > 5 })

			Convey("Then the source roster is not modified", func() {
				So(len(got), ShouldEqual, 2)
				So(len(roster), ShouldEqual, 3)
			})
		})
	})
}

func TestRoster_Counts(t *testing.T) {
	Convey("Given a roster", t, func() {
		roster := model.Roster{{Name: "A", PracticeCount: 10}, {Name: "B", PracticeCount: 8}}

		Convey("Then counts follow roster order", func() {
			So(roster.Counts(), ShouldResemble, []float64{10, 8})
		})

		Convey("And an empty roster yields no counts", func() {
			So(len(model.Roster{}.Counts()), ShouldEqual, 0)
		})
	})
}

func TestRankedResult_Names(t *testing.T) {
	Convey("Given a ranked result", t, func() {
		result := model.RankedResult{
			{Rank: 1, Member: model.Member{Name: "B"}},
			{Rank: 2, Member: model.Member{Name: "A"}},
		}

		Convey("Then names follow rank order", func() {
			So(result.Names(), ShouldResemble, []string{"B", "A"})
		})
	})
}
