package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"

	api "github.com/RyanRaymundo99/betcompare/internal/adapters/http/api"
	repository "github.com/RyanRaymundo99/betcompare/internal/adapters/repository"
	service "github.com/RyanRaymundo99/betcompare/internal/app"
	bet "github.com/RyanRaymundo99/betcompare/internal/domain/bet"
	params "github.com/RyanRaymundo99/betcompare/internal/domain/params"
	"github.com/RyanRaymundo99/betcompare/pkg/logger"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func newStartedService(t *testing.T) *service.Service {
	t.Helper()
	svc := service.New(service.WithStore(repository.NewMemStore()))
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}
	t.Cleanup(svc.Stop)
	return svc
}

func createBet(t *testing.T, svc *service.Service, name string) bet.Bet {
	t.Helper()
	b, err := svc.CreateBet(context.Background(), bet.Bet{Name: name, Status: bet.StatusActive})
	if err != nil {
		t.Fatalf("create bet: %v", err)
	}
	return b
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should have sensible defaults", func() {
			So(svc, ShouldNotBeNil)
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithStore(repository.NewMemStore()),
			service.WithCurrencyUnit("R$"),
			service.WithSeedProbability(0.5),
		)

		Convey("Then it should be created successfully", func() {
			So(svc, ShouldNotBeNil)
		})
	})
}

func TestService_StartStop(t *testing.T) {
	Convey("Given a service over the in-memory store", t, func() {
		svc := service.New(service.WithStore(repository.NewMemStore()))
		ctx := context.Background()

		Convey("When starting it", func() {
			err := svc.Start(ctx)

			Convey("Then it starts and reports as started", func() {
				So(err, ShouldBeNil)
				So(svc.GetStats()["started"], ShouldEqual, true)
			})

			Convey("And a second start is a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
			})

			Convey("And stopping flips the state", func() {
				svc.Stop()
				So(svc.GetStats()["started"], ShouldEqual, false)
			})
		})
	})
}

func TestService_WriteValue(t *testing.T) {
	Convey("Given a started service with one bet", t, func() {
		svc := newStartedService(t)
		b := createBet(t, svc, "Betano")
		ctx := context.Background()

		Convey("When writing a catalog-backed value", func() {
			stored, created, err := svc.WriteValue(ctx, api.WriteValueInput{
				SubjectID: b.ID,
				Name:      "Saque mínimo",
				Value:     50,
			})

			Convey("Then the catalog's typing is denormalized onto the row", func() {
				So(err, ShouldBeNil)
				So(created, ShouldBeTrue)
				So(stored.Type, ShouldEqual, params.KindCurrency)
				So(stored.Category, ShouldEqual, "Pagamentos & Financeiro")
				So(stored.Unit, ShouldEqual, "R$")
				So(*stored.Slot.Number, ShouldEqual, 50.0)
			})
		})

		Convey("When the request claims a different type for a catalog name", func() {
			stored, _, err := svc.WriteValue(ctx, api.WriteValueInput{
				SubjectID: b.ID,
				Name:      "Saque mínimo",
				Type:      "text",
				Value:     50,
			})

			Convey("Then the catalog wins", func() {
				So(err, ShouldBeNil)
				So(stored.Type, ShouldEqual, params.KindCurrency)
			})
		})

		Convey("When writing an off-catalog value with explicit typing", func() {
			stored, _, err := svc.WriteValue(ctx, api.WriteValueInput{
				SubjectID: b.ID,
				Name:      "Parâmetro interno",
				Category:  "Categoria Interna",
				Type:      "boolean",
				Value:     "sim",
			})

			Convey("Then the request's typing applies", func() {
				So(err, ShouldBeNil)
				So(stored.Type, ShouldEqual, params.KindBoolean)
				So(*stored.Slot.Boolean, ShouldBeTrue)
				So(stored.Category, ShouldEqual, "Categoria Interna")
			})
		})

		Convey("When the value violates the catalog's constraints", func() {
			_, _, err := svc.WriteValue(ctx, api.WriteValueInput{
				SubjectID: b.ID,
				Name:      "Nota do suporte",
				Value:     9,
			})

			Convey("Then it fails validation and nothing is stored", func() {
				So(err, ShouldNotBeNil)
				So(err, ShouldWrap, params.ErrValidation)

				history, herr := svc.SubjectHistory(ctx, b.ID)
				So(herr, ShouldBeNil)
				So(len(history), ShouldEqual, 0)
			})
		})

		Convey("When the select value is not an allowed option", func() {
			_, _, err := svc.WriteValue(ctx, api.WriteValueInput{
				SubjectID: b.ID,
				Name:      "Atuação",
				Value:     "Regional",
			})

			Convey("Then it is rejected", func() {
				So(err, ShouldWrap, params.ErrNotInOptions)
			})
		})

		Convey("When the bet does not exist", func() {
			_, _, err := svc.WriteValue(ctx, api.WriteValueInput{
				SubjectID: uuid.New(),
				Name:      "Saque mínimo",
				Value:     50,
			})

			Convey("Then it reports bet not found", func() {
				So(err, ShouldWrap, repository.ErrBetNotFound)
			})
		})
	})
}

func TestService_SubjectValues(t *testing.T) {
	Convey("Given a started service with stored values", t, func() {
		svc := newStartedService(t)
		b := createBet(t, svc, "Betano")
		ctx := context.Background()

		for name, raw := range map[string]any{
			"Saque mínimo":    50,
			"Nota do suporte": 4.5,
		} {
			_, _, err := svc.WriteValue(ctx, api.WriteValueInput{SubjectID: b.ID, Name: name, Value: raw})
			So(err, ShouldBeNil)
		}

		Convey("When listing the subject's values", func() {
			values, err := svc.SubjectValues(ctx, b.ID)

			Convey("Then they come back ordered by name", func() {
				So(err, ShouldBeNil)
				So(len(values), ShouldEqual, 2)
				So(values[0].Name, ShouldEqual, "Nota do suporte")
				So(values[1].Name, ShouldEqual, "Saque mínimo")
			})
		})

		Convey("When the bet does not exist", func() {
			_, err := svc.SubjectValues(ctx, uuid.New())

			Convey("Then it reports bet not found", func() {
				So(err, ShouldWrap, repository.ErrBetNotFound)
			})
		})
	})
}

func TestService_UpdateValue(t *testing.T) {
	Convey("Given a started service with a stored value", t, func() {
		svc := newStartedService(t)
		b := createBet(t, svc, "Betano")
		ctx := context.Background()

		stored, _, err := svc.WriteValue(ctx, api.WriteValueInput{
			SubjectID: b.ID,
			Name:      "Nota do suporte",
			Value:     4,
		})
		So(err, ShouldBeNil)

		Convey("When updating it by identity", func() {
			updated, err := svc.UpdateValue(ctx, stored.ID, 4.5, "reviewed")

			Convey("Then the slot changes and history grows", func() {
				So(err, ShouldBeNil)
				So(*updated.Slot.Rating, ShouldEqual, 4.5)

				history, herr := svc.ValueHistory(ctx, stored.ID)
				So(herr, ShouldBeNil)
				So(len(history), ShouldEqual, 2)
				So(history[0].Note, ShouldEqual, "reviewed")
			})
		})

		Convey("When the update violates the catalog bounds", func() {
			_, err := svc.UpdateValue(ctx, stored.ID, 12, "")

			Convey("Then it is rejected and history is untouched", func() {
				So(err, ShouldWrap, params.ErrOutOfRange)

				history, herr := svc.ValueHistory(ctx, stored.ID)
				So(herr, ShouldBeNil)
				So(len(history), ShouldEqual, 1)
			})
		})

		Convey("When the value does not exist", func() {
			_, err := svc.UpdateValue(ctx, uuid.New(), 3, "")

			Convey("Then it reports value not found", func() {
				So(err, ShouldWrap, repository.ErrValueNotFound)
			})
		})
	})
}

func TestService_Score(t *testing.T) {
	Convey("Given a started service with one bet", t, func() {
		svc := newStartedService(t)
		b := createBet(t, svc, "Betano")
		ctx := context.Background()

		Convey("When the bet has no rating values", func() {
			summary, err := svc.Score(ctx, b.ID)

			Convey("Then it reports the explicit no-rating state", func() {
				So(err, ShouldBeNil)
				So(summary.Rated, ShouldBeFalse)
				So(summary.Score, ShouldEqual, 0)
			})
		})

		Convey("When ratings exist", func() {
			for name, rating := range map[string]float64{
				"Nota do suporte":       4,
				"Nota das odds":         5,
				"Nota geral da redação": 3,
			} {
				_, _, err := svc.WriteValue(ctx, api.WriteValueInput{
					SubjectID: b.ID, Name: name, Value: rating,
				})
				So(err, ShouldBeNil)
			}

			summary, err := svc.Score(ctx, b.ID)

			Convey("Then the mean projects onto both scales", func() {
				So(err, ShouldBeNil)
				So(summary.Rated, ShouldBeTrue)
				So(summary.Overall, ShouldEqual, 4.0)
				So(summary.Score, ShouldEqual, 80)
				So(summary.RatedCount, ShouldEqual, 3)
			})
		})
	})
}
