// Package comparison merges subjects' parameter values with the catalog into
// a category-grouped matrix for side-by-side rendering.
package comparison

import (
	"github.com/google/uuid"

	catalog "github.com/RyanRaymundo99/betcompare/internal/domain/catalog"
	params "github.com/RyanRaymundo99/betcompare/internal/domain/params"
)

// FallbackCategory groups off-catalog values whose rows carry no category.
const FallbackCategory = "Outros"

// Subject is one compared bet with its current values.
type Subject struct {
	ID     uuid.UUID
	Name   string
	Values []params.Value
}

// SubjectRef identifies one column of the matrix.
type SubjectRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Row is one parameter across all compared subjects. Cells align with the
// matrix's Subjects order; missing values hold the Missing placeholder.
type Row struct {
	Name  string   `json:"name"`
	Type  string   `json:"type"`
	Unit  string   `json:"unit,omitempty"`
	Cells []string `json:"cells"`
}

// Group is one category's worth of rows, in render order.
type Group struct {
	Category string `json:"category"`
	Rows     []Row  `json:"rows"`
}

// Matrix is the resolved comparison table.
type Matrix struct {
	Subjects []SubjectRef `json:"subjects"`
	Groups   []Group      `json:"groups"`
}

// Resolver builds comparison matrices against a fixed catalog.
type Resolver struct {
	catalog *catalog.Catalog
	format  *formatter
}

// NewResolver creates a Resolver. currencyUnit is appended to currency values
// whose rows carry no unit.
func NewResolver(c *catalog.Catalog, currencyUnit string) *Resolver {
	return &Resolver{
		catalog: c,
		format:  newFormatter(currencyUnit),
	}
}

// Resolve builds the matrix for the given subjects. The row set is the union
// of every catalog definition and every value present on any subject, so
// legacy values whose definition was removed still appear. Categories follow
// the catalog's render order; off-catalog categories are appended in
// first-seen order.
func (r *Resolver) Resolve(subjects []Subject) Matrix {
	m := Matrix{
		Subjects: make([]SubjectRef, len(subjects)),
	}

	// Index each subject's values by parameter name.
	valuesByName := make([]map[string]params.Value, len(subjects))
	for i, s := range subjects {
		m.Subjects[i] = SubjectRef{ID: s.ID.String(), Name: s.Name}
		valuesByName[i] = make(map[string]params.Value, len(s.Values))
		for _, v := range s.Values {
			valuesByName[i][v.Name] = v
		}
	}

	seen := make(map[string]bool)
	groups := make(map[string][]Row)
	var extraCategories []string

	addRow := func(category string, row Row) {
		if _, known := groups[category]; !known && !isCatalogCategory(category) {
			extraCategories = append(extraCategories, category)
		}
		groups[category] = append(groups[category], row)
	}

	// Catalog rows first, in catalog order.
	for _, cat := range catalog.Categories {
		for _, def := range r.catalog.ByCategory(cat) {
			seen[def.Name] = true
			addRow(string(cat), r.buildRow(def.Name, def.Type, def.Unit, subjects, valuesByName))
		}
	}

	// Off-catalog values present on any subject, in subject/value order.
	for i := range subjects {
		for _, v := range subjects[i].Values {
			if seen[v.Name] {
				continue
			}
			seen[v.Name] = true
			category := v.Category
			if category == "" {
				category = FallbackCategory
			}
			addRow(category, r.buildRow(v.Name, v.Type, v.Unit, subjects, valuesByName))
		}
	}

	// Assemble groups: catalog categories in render order, then extras.
	for _, cat := range catalog.Categories {
		if rows := groups[string(cat)]; len(rows) > 0 {
			m.Groups = append(m.Groups, Group{Category: string(cat), Rows: rows})
		}
	}
	for _, cat := range extraCategories {
		m.Groups = append(m.Groups, Group{Category: cat, Rows: groups[cat]})
	}
	return m
}

func (r *Resolver) buildRow(name string, kind params.Kind, unit string, subjects []Subject, valuesByName []map[string]params.Value) Row {
	row := Row{
		Name:  name,
		Type:  string(kind),
		Unit:  unit,
		Cells: make([]string, len(subjects)),
	}
	for i := range subjects {
		v, ok := valuesByName[i][name]
		if !ok {
			row.Cells[i] = Missing
			continue
		}
		// The catalog's kind wins over the denormalized copy when both exist.
		v.Type = kind
		if v.Unit == "" {
			v.Unit = unit
		}
		row.Cells[i] = r.format.formatValue(v)
	}
	return row
}

func isCatalogCategory(category string) bool {
	for _, c := range catalog.Categories {
		if string(c) == category {
			return true
		}
	}
	return false
}
