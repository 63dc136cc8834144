package catalog_test

import (
	"errors"
	"testing"

	catalog "github.com/RyanRaymundo99/betcompare/internal/domain/catalog"
	params "github.com/RyanRaymundo99/betcompare/internal/domain/params"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaultCatalog(t *testing.T) {
	Convey("Given the built-in catalog manifest", t, func() {
		c := catalog.Default()

		Convey("Then it should contain a substantial definition set", func() {
			So(c.Len(), ShouldBeGreaterThan, 50)
		})

		Convey("Then every definition should round-trip through Get", func() {
			for _, d := range c.All() {
				got, ok := c.Get(d.Name)
				So(ok, ShouldBeTrue)
				So(got.Name, ShouldEqual, d.Name)
				So(got.Category, ShouldEqual, d.Category)
				So(got.Type, ShouldEqual, d.Type)
			}
		})

		Convey("Then every category in the enumeration should have definitions", func() {
			for _, cat := range catalog.Categories {
				So(len(c.ByCategory(cat)), ShouldBeGreaterThan, 0)
			}
		})

		Convey("Then category grouping should preserve declaration order", func() {
			defs := c.ByCategory(catalog.CategoryPayments)
			So(defs[0].Name, ShouldEqual, "Depósito mínimo")
			names := make(map[string]bool, len(defs))
			for _, d := range defs {
				names[d.Name] = true
			}
			So(names["Saque mínimo"], ShouldBeTrue)
		})

		Convey("Then select definitions should always carry options", func() {
			for _, d := range c.All() {
				if d.Type == params.KindSelect {
					So(len(d.Options), ShouldBeGreaterThan, 0)
				}
			}
		})

		Convey("Then rating definitions should be bounded to the star scale", func() {
			for _, d := range c.All() {
				if d.Type == params.KindRating {
					So(d.Min, ShouldNotBeNil)
					So(d.Max, ShouldNotBeNil)
					So(*d.Min, ShouldAlmostEqual, 0)
					So(*d.Max, ShouldAlmostEqual, 5)
				}
			}
		})

		Convey("When looking up an unknown name", func() {
			_, ok := c.Get("Parâmetro inexistente")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestCatalogValidation(t *testing.T) {
	Convey("Given hand-built definition lists", t, func() {
		Convey("When two definitions share a name", func() {
			_, err := catalog.New(duplicateDefinitions())
			So(errors.Is(err, catalog.ErrDuplicateDefinition), ShouldBeTrue)
		})

		Convey("When a definition has an unlisted category", func() {
			_, err := catalog.New([]catalog.Definition{
				{Name: "Qualquer", Category: catalog.Category("Inexistente"), Type: params.KindText},
			})
			So(errors.Is(err, catalog.ErrInvalidDefinition), ShouldBeTrue)
		})

		Convey("When a select definition has no options", func() {
			_, err := catalog.New([]catalog.Definition{
				{Name: "Escolha", Category: catalog.CategoryGeneral, Type: params.KindSelect},
			})
			So(errors.Is(err, catalog.ErrInvalidDefinition), ShouldBeTrue)
		})

		Convey("When a definition has no name", func() {
			_, err := catalog.New([]catalog.Definition{
				{Category: catalog.CategoryGeneral, Type: params.KindText},
			})
			So(errors.Is(err, catalog.ErrInvalidDefinition), ShouldBeTrue)
		})
	})
}

// duplicateDefinitions builds a list with a duplicated name.
func duplicateDefinitions() []catalog.Definition {
	return []catalog.Definition{
		{Name: "Repetido", Category: catalog.CategoryGeneral, Type: params.KindText},
		{Name: "Repetido", Category: catalog.CategoryOdds, Type: params.KindNumber},
	}
}
