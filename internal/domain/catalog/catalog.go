// Package catalog holds the static, versioned registry of parameter
// definitions. Pure in-memory lookup; no I/O.
package catalog

import (
	"fmt"

	params "github.com/RyanRaymundo99/betcompare/internal/domain/params"
)

// Category is one of the fixed comparison categories. The declaration order
// of Categories is the render order and must stay stable.
type Category string

// The eight comparison categories, in render order.
const (
	CategoryGeneral    Category = "Informações Gerais"
	CategoryLicense    Category = "Licença & Segurança"
	CategoryBonuses    Category = "Bônus & Promoções"
	CategoryOdds       Category = "Odds & Mercados"
	CategoryPayments   Category = "Pagamentos & Financeiro"
	CategoryPlatform   Category = "Plataforma & Usabilidade"
	CategorySupport    Category = "Suporte ao Cliente"
	CategoryReputation Category = "Reputação & Avaliação"
)

// Categories lists every category in render order. The enumeration is total:
// a definition with a category outside this list is a configuration error.
var Categories = []Category{
	CategoryGeneral,
	CategoryLicense,
	CategoryBonuses,
	CategoryOdds,
	CategoryPayments,
	CategoryPlatform,
	CategorySupport,
	CategoryReputation,
}

// Definition is one catalog entry. Name is the unique key joining stored
// values to their definition; there is no surrogate ID.
type Definition struct {
	Name        string
	Category    Category
	Type        params.Kind
	Unit        string
	Options     []string
	Min         *float64
	Max         *float64
	Description string
}

// Constraints exposes the definition-side restrictions for coercion.
func (d Definition) Constraints() params.Constraints {
	return params.Constraints{Min: d.Min, Max: d.Max, Options: d.Options}
}

// Catalog provides ordered lookup over a fixed definition list.
type Catalog struct {
	defs       []Definition
	byName     map[string]int
	byCategory map[Category][]int
}

// New builds a Catalog from the given definitions, validating name
// uniqueness and category membership.
func New(defs []Definition) (*Catalog, error) {
	known := make(map[Category]bool, len(Categories))
	for _, c := range Categories {
		known[c] = true
	}

	c := &Catalog{
		defs:       defs,
		byName:     make(map[string]int, len(defs)),
		byCategory: make(map[Category][]int),
	}
	for i, d := range defs {
		if d.Name == "" {
			return nil, fmt.Errorf("%w: definition %d has no name", ErrInvalidDefinition, i)
		}
		if !known[d.Category] {
			return nil, fmt.Errorf("%w: %q has unlisted category %q", ErrInvalidDefinition, d.Name, d.Category)
		}
		if d.Type == params.KindSelect && len(d.Options) == 0 {
			return nil, fmt.Errorf("%w: select parameter %q has no options", ErrInvalidDefinition, d.Name)
		}
		if _, dup := c.byName[d.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateDefinition, d.Name)
		}
		c.byName[d.Name] = i
		c.byCategory[d.Category] = append(c.byCategory[d.Category], i)
	}
	return c, nil
}

// Default builds the Catalog from the built-in definition manifest.
// The manifest is validated at build time by tests, so this cannot fail
// unless the manifest itself is edited into an invalid state.
func Default() *Catalog {
	c, err := New(definitions)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the definition for name. The boolean is false when the name is
// unknown; callers treat such values as extra/legacy and fall back to the
// denormalized copies on the value row.
func (c *Catalog) Get(name string) (Definition, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Definition{}, false
	}
	return c.defs[i], true
}

// ByCategory returns the ordered definitions for one category.
func (c *Catalog) ByCategory(cat Category) []Definition {
	idx := c.byCategory[cat]
	out := make([]Definition, len(idx))
	for i, j := range idx {
		out[i] = c.defs[j]
	}
	return out
}

// All returns every definition in declaration order.
func (c *Catalog) All() []Definition {
	out := make([]Definition, len(c.defs))
	copy(out, c.defs)
	return out
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.defs)
}
