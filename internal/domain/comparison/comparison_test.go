package comparison_test

import (
	"testing"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"

	catalog "github.com/RyanRaymundo99/betcompare/internal/domain/catalog"
	comparison "github.com/RyanRaymundo99/betcompare/internal/domain/comparison"
	params "github.com/RyanRaymundo99/betcompare/internal/domain/params"
)

func numberValue(name, category string, kind params.Kind, unit string, n float64) params.Value {
	return params.Value{
		ID: uuid.New(), Name: name, Category: category, Type: kind, Unit: unit,
		Slot: params.Slot{Number: &n},
	}
}

func boolValue(name, category string, b bool) params.Value {
	return params.Value{
		ID: uuid.New(), Name: name, Category: category, Type: params.KindBoolean,
		Slot: params.Slot{Boolean: &b},
	}
}

func ratingVal(name, category string, r float64) params.Value {
	return params.Value{
		ID: uuid.New(), Name: name, Category: category, Type: params.KindRating,
		Slot: params.Slot{Rating: &r},
	}
}

func findRow(m comparison.Matrix, name string) (comparison.Row, string, bool) {
	for _, g := range m.Groups {
		for _, row := range g.Rows {
			if row.Name == name {
				return row, g.Category, true
			}
		}
	}
	return comparison.Row{}, "", false
}

func TestResolve(t *testing.T) {
	Convey("Given a resolver over the default catalog", t, func() {
		resolver := comparison.NewResolver(catalog.Default(), "R$")

		Convey("When subject A has 'Saque mínimo' = 50 and subject B has none", func() {
			a := comparison.Subject{
				ID:   uuid.New(),
				Name: "Betano",
				Values: []params.Value{
					numberValue("Saque mínimo", "Pagamentos & Financeiro", params.KindCurrency, "R$", 50),
				},
			}
			b := comparison.Subject{ID: uuid.New(), Name: "KTO"}

			m := resolver.Resolve([]comparison.Subject{a, b})

			Convey("Then the row shows the formatted value and a dash", func() {
				row, category, ok := findRow(m, "Saque mínimo")
				So(ok, ShouldBeTrue)
				So(category, ShouldEqual, "Pagamentos & Financeiro")
				So(row.Cells[0], ShouldEqual, "50,00 R$")
				So(row.Cells[1], ShouldEqual, comparison.Missing)
			})

			Convey("And the subject columns are in request order", func() {
				So(len(m.Subjects), ShouldEqual, 2)
				So(m.Subjects[0].Name, ShouldEqual, "Betano")
				So(m.Subjects[1].Name, ShouldEqual, "KTO")
			})

			Convey("And categories follow the catalog render order", func() {
				So(m.Groups[0].Category, ShouldEqual, "Informações Gerais")
			})
		})

		Convey("When formatting booleans", func() {
			a := comparison.Subject{ID: uuid.New(), Name: "A", Values: []params.Value{
				boolValue("Aceita Pix", "Pagamentos & Financeiro", true),
			}}
			b := comparison.Subject{ID: uuid.New(), Name: "B", Values: []params.Value{
				boolValue("Aceita Pix", "Pagamentos & Financeiro", false),
			}}

			m := resolver.Resolve([]comparison.Subject{a, b})
			row, _, ok := findRow(m, "Aceita Pix")

			Convey("Then cells render Sim/Não", func() {
				So(ok, ShouldBeTrue)
				So(row.Cells[0], ShouldEqual, "Sim")
				So(row.Cells[1], ShouldEqual, "Não")
			})
		})

		Convey("When formatting ratings", func() {
			a := comparison.Subject{ID: uuid.New(), Name: "A", Values: []params.Value{
				ratingVal("Nota do suporte", "Suporte ao Cliente", 4.5),
				ratingVal("Nota das odds", "Odds & Mercados", 4),
			}}

			m := resolver.Resolve([]comparison.Subject{a})

			Convey("Then fractional ratings keep one decimal and integral ones none", func() {
				half, _, _ := findRow(m, "Nota do suporte")
				So(half.Cells[0], ShouldEqual, "4,5")
				whole, _, _ := findRow(m, "Nota das odds")
				So(whole.Cells[0], ShouldEqual, "4")
			})
		})

		Convey("When formatting large numbers", func() {
			a := comparison.Subject{ID: uuid.New(), Name: "A", Values: []params.Value{
				numberValue("Mercados por partida", "Odds & Mercados", params.KindNumber, "", 1250),
			}}

			m := resolver.Resolve([]comparison.Subject{a})
			row, _, _ := findRow(m, "Mercados por partida")

			Convey("Then locale thousands separators apply", func() {
				So(row.Cells[0], ShouldEqual, "1.250")
			})
		})

		Convey("When a subject carries an off-catalog legacy value", func() {
			a := comparison.Subject{ID: uuid.New(), Name: "A", Values: []params.Value{
				numberValue("Parâmetro legado", "Categoria Antiga", params.KindNumber, "", 7),
			}}
			b := comparison.Subject{ID: uuid.New(), Name: "B"}

			m := resolver.Resolve([]comparison.Subject{a, b})

			Convey("Then it appears under its denormalized category after the catalog groups", func() {
				row, category, ok := findRow(m, "Parâmetro legado")
				So(ok, ShouldBeTrue)
				So(category, ShouldEqual, "Categoria Antiga")
				So(row.Cells[0], ShouldEqual, "7")
				So(row.Cells[1], ShouldEqual, comparison.Missing)
				So(m.Groups[len(m.Groups)-1].Category, ShouldEqual, "Categoria Antiga")
			})
		})

		Convey("When a legacy value has no category", func() {
			a := comparison.Subject{ID: uuid.New(), Name: "A", Values: []params.Value{
				numberValue("Sem categoria", "", params.KindNumber, "", 1),
			}}

			m := resolver.Resolve([]comparison.Subject{a})
			_, category, ok := findRow(m, "Sem categoria")

			Convey("Then it falls back to the Outros group", func() {
				So(ok, ShouldBeTrue)
				So(category, ShouldEqual, comparison.FallbackCategory)
			})
		})

		Convey("When resolving zero subjects", func() {
			m := resolver.Resolve(nil)

			Convey("Then the matrix still lists every catalog row with no cells", func() {
				So(len(m.Subjects), ShouldEqual, 0)
				So(len(m.Groups), ShouldEqual, len(catalog.Categories))
			})
		})

		Convey("When a percentage value is present", func() {
			a := comparison.Subject{ID: uuid.New(), Name: "A", Values: []params.Value{
				numberValue("Índice de resolução", "Reputação & Avaliação", params.KindPercentage, "%", 87.5),
			}}

			m := resolver.Resolve([]comparison.Subject{a})
			row, _, _ := findRow(m, "Índice de resolução")

			Convey("Then the unit is appended", func() {
				So(row.Cells[0], ShouldEqual, "87,5%")
			})
		})
	})
}
