package scoring_test

import (
	"testing"

	params "github.com/RyanRaymundo99/betcompare/internal/domain/params"
	scoring "github.com/RyanRaymundo99/betcompare/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func ratingValue(name string, rating float64) params.Value {
	return params.Value{
		Name:     name,
		Category: "Reputação & Avaliação",
		Type:     params.KindRating,
		Slot:     params.Slot{Rating: &rating},
	}
}

func textValue(name, text string) params.Value {
	return params.Value{
		Name: name,
		Type: params.KindText,
		Slot: params.Slot{Text: &text},
	}
}

func TestCompute(t *testing.T) {
	Convey("Given a subject with three ratings 4, 5 and 3", t, func() {
		values := []params.Value{
			ratingValue("Nota do suporte", 4),
			ratingValue("Nota das odds", 5),
			ratingValue("Nota de pagamentos", 3),
		}

		Convey("When computing the score", func() {
			result := scoring.Compute(values)

			Convey("Then overall, score and stars should match the mean", func() {
				So(result.Rated, ShouldBeTrue)
				So(result.RatedCount, ShouldEqual, 3)
				So(result.Overall, ShouldAlmostEqual, 4.0)
				So(result.Score, ShouldEqual, 80)
				So(result.Stars, ShouldAlmostEqual, 4.0)
			})
		})

		Convey("When non-rating values are mixed in", func() {
			mixed := append([]params.Value{textValue("País de origem", "Malta")}, values...)
			result := scoring.Compute(mixed)

			Convey("Then only rating slots participate", func() {
				So(result.RatedCount, ShouldEqual, 3)
				So(result.Overall, ShouldAlmostEqual, 4.0)
			})
		})

		Convey("When the input order is shuffled", func() {
			shuffled := []params.Value{values[2], values[0], values[1]}
			a := scoring.Compute(values)
			b := scoring.Compute(shuffled)

			Convey("Then the result is order-independent", func() {
				So(a.Overall, ShouldAlmostEqual, b.Overall)
				So(a.Score, ShouldEqual, b.Score)
			})
		})
	})

	Convey("Given a subject with no rating values", t, func() {
		Convey("When computing over an empty list", func() {
			result := scoring.Compute(nil)

			Convey("Then the defined no-rating state is returned", func() {
				So(result.Rated, ShouldBeFalse)
				So(result.RatedCount, ShouldEqual, 0)
				So(result.Overall, ShouldAlmostEqual, 0)
				So(result.Score, ShouldEqual, 0)
			})
		})

		Convey("When computing over only non-rating values", func() {
			result := scoring.Compute([]params.Value{textValue("Atuação", "Nacional")})

			Convey("Then it short-circuits instead of dividing by zero", func() {
				So(result.Rated, ShouldBeFalse)
			})
		})
	})

	Convey("Given fractional ratings", t, func() {
		values := []params.Value{
			ratingValue("Nota da comunidade", 4.5),
			ratingValue("Nota geral da redação", 3.5),
		}

		Convey("When computing the score", func() {
			result := scoring.Compute(values)

			Convey("Then stars keep the exact fractional fill", func() {
				So(result.Stars, ShouldAlmostEqual, 4.0)
				So(result.Score, ShouldEqual, 80)
			})
		})
	})

	Convey("Given a single rating", t, func() {
		Convey("When computing 4.5 alone", func() {
			result := scoring.Compute([]params.Value{ratingValue("Nota de segurança", 4.5)})

			Convey("Then score maps 0-5 onto 0-100 with rounding", func() {
				So(result.Overall, ShouldAlmostEqual, 4.5)
				So(result.Score, ShouldEqual, 90)
				So(result.Stars, ShouldAlmostEqual, 4.5)
			})
		})
	})
}
