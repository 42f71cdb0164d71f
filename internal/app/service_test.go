package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	service "github.com/gyouaiba-hash/sup-selection/internal/app"
	"github.com/gyouaiba-hash/sup-selection/internal/domain/model"
	"github.com/gyouaiba-hash/sup-selection/internal/domain/scoring"
	"github.com/gyouaiba-hash/sup-selection/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func roster() model.Roster {
	return model.Roster{
		{Name: "A", Gender: "male", PracticeCount: 10},
		{Name: "B", Gender: "female", PracticeCount: 8},
		{Name: "C", Gender: "female", PracticeCount: 3},
	}
}

func sigma(v float64) *float64 { return &v }

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should have sensible defaults", func() {
			So(svc, ShouldNotBeNil)
			So(svc.DefaultSigma(), ShouldEqual, 2.0)
			stats := svc.GetStats()
			So(stats["runs"], ShouldEqual, 0)
			So(stats["maxSigma"], ShouldEqual, 10.0)
			So(stats["seeded"], ShouldBeFalse)
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithDefaultSigma(1.5),
			service.WithMaxSigma(5),
			service.WithMaxRosterSize(2),
			service.WithSeed(9),
		)

		Convey("Then the options should be applied", func() {
			So(svc.DefaultSigma(), ShouldEqual, 1.5)
			stats := svc.GetStats()
			So(stats["maxSigma"], ShouldEqual, 5.0)
			So(stats["maxRosterSize"], ShouldEqual, 2)
			So(stats["seeded"], ShouldBeTrue)
		})
	})

	Convey("Given a default sigma above the maximum", t, func() {
		svc := service.New(service.WithDefaultSigma(8), service.WithMaxSigma(4))

		Convey("Then the default is clamped to the maximum", func() {
			So(svc.DefaultSigma(), ShouldEqual, 4.0)
		})
	})
}

func TestService_Statistics(t *testing.T) {
	Convey("Given a service", t, func() {
		svc := service.New()
		ctx := context.Background()

		Convey("When computing statistics over two members", func() {
			st := svc.Statistics(ctx, roster()[:2])

			Convey("Then mean and suggestion are derived", func() {
				So(st.Mean, ShouldEqual, 9.0)
				So(st.SuggestedSigma, ShouldAlmostEqual, 0.707, 0.001)
				So(st.Count, ShouldEqual, 2)
			})
		})

		Convey("When computing statistics over nobody", func() {
			st := svc.Statistics(ctx, nil)

			Convey("Then the fixed default suggestion is returned", func() {
				So(st.SuggestedSigma, ShouldEqual, 2.0)
			})
		})
	})
}

func TestService_Draw(t *testing.T) {
	Convey("Given a seeded service", t, func() {
		svc := service.New(service.WithSeed(42), service.WithMaxRosterSize(3))
		ctx := context.Background()

		Convey("When drawing with the default sigma", func() {
			d, err := svc.Draw(ctx, roster(), nil)

			Convey("Then a ranked result with metadata is returned", func() {
				So(err, ShouldBeNil)
				So(d.RunID, ShouldNotEqual, uuid.Nil)
				So(d.Sigma, ShouldEqual, 2.0)
				So(d.ReversalRange, ShouldEqual, 4.0)
				So(d.DrawnAt.IsZero(), ShouldBeFalse)
				So(len(d.Result), ShouldEqual, 3)
				So(d.Result[0].Rank, ShouldEqual, 1)
			})

			Convey("And the run is counted", func() {
				stats := svc.GetStats()
				So(stats["runs"], ShouldEqual, 1)
				So(stats["membersRanked"], ShouldEqual, 3)
				So(stats["lastSigma"], ShouldEqual, 2.0)
			})
		})

		Convey("When drawing with sigma 0", func() {
			d, err := svc.Draw(ctx, roster(), sigma(0))

			Convey("Then the order follows practice counts", func() {
				So(err, ShouldBeNil)
				So(d.Result.Names(), ShouldResemble, []string{"A", "B", "C"})
				So(d.ReversalRange, ShouldEqual, 0.0)
			})
		})

		Convey("When the roster is empty", func() {
			_, err := svc.Draw(ctx, model.Roster{}, nil)

			Convey("Then ErrEmptyRoster is returned", func() {
				So(errors.Is(err, service.ErrEmptyRoster), ShouldBeTrue)
			})
		})

		Convey("When sigma is negative", func() {
			_, err := svc.Draw(ctx, roster(), sigma(-1))

			Convey("Then the engine's invalid sigma error surfaces", func() {
				So(errors.Is(err, scoring.ErrInvalidSigma), ShouldBeTrue)
			})
		})

		Convey("When sigma exceeds the maximum", func() {
			_, err := svc.Draw(ctx, roster(), sigma(10.5))

			Convey("Then ErrSigmaTooLarge is returned", func() {
				So(errors.Is(err, service.ErrSigmaTooLarge), ShouldBeTrue)
			})
		})

		Convey("When the roster is larger than allowed", func() {
			big := append(roster(), model.Member{Name: "D", PracticeCount: 1})
			_, err := svc.Draw(ctx, big, nil)

			Convey("Then ErrRosterTooLarge is returned", func() {
				So(errors.Is(err, service.ErrRosterTooLarge), ShouldBeTrue)
			})
		})

		Convey("When the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := svc.Draw(cctx, roster(), nil)

			Convey("Then the cancellation is reported", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})

		Convey("When a rejected draw happens", func() {
			_, _ = svc.Draw(ctx, nil, nil)

			Convey("Then no run is counted", func() {
				So(svc.GetStats()["runs"], ShouldEqual, 0)
			})
		})
	})

	Convey("Given two services with the same seed", t, func() {
		a := service.New(service.WithSeed(7))
		b := service.New(service.WithSeed(7))

		Convey("Then their draws agree but run ids differ", func() {
			da, errA := a.Draw(context.Background(), roster(), sigma(3))
			db, errB := b.Draw(context.Background(), roster(), sigma(3))
			So(errA, ShouldBeNil)
			So(errB, ShouldBeNil)
			So(da.Result, ShouldResemble, db.Result)
			So(da.RunID, ShouldNotEqual, db.RunID)
		})
	})

	Convey("Given an injected lottery", t, func() {
		svc := service.New(service.WithLottery(scoring.NewLottery(scoring.WithSeed(1))))

		Convey("Then it is used for draws", func() {
			d, err := svc.Draw(context.Background(), roster(), nil)
			So(err, ShouldBeNil)
			So(len(d.Result), ShouldEqual, 3)
		})
	})
}

func TestService_ReversalRange(t *testing.T) {
	Convey("Given a service", t, func() {
		svc := service.New()

		Convey("Then the range doubles sigma", func() {
			r, err := svc.ReversalRange(3)
			So(err, ShouldBeNil)
			So(r, ShouldEqual, 6.0)
		})

		Convey("And out-of-bounds sigma is rejected", func() {
			_, err := svc.ReversalRange(-2)
			So(errors.Is(err, scoring.ErrInvalidSigma), ShouldBeTrue)
			_, err = svc.ReversalRange(11)
			So(errors.Is(err, service.ErrSigmaTooLarge), ShouldBeTrue)
		})
	})
}
