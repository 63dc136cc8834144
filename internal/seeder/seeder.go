// Package seeder generates plausible parameter values from the catalog, for
// demo data and the bulk regenerate tooling.
package seeder

import (
	"crypto/rand"
	"math"
	"math/big"
	"strings"

	catalog "github.com/RyanRaymundo99/betcompare/internal/domain/catalog"
	params "github.com/RyanRaymundo99/betcompare/internal/domain/params"
)

const randomFloatDivisor = 1000000

// Default generation ranges per kind, used when a definition carries no
// explicit bounds.
const (
	currencySmallMin = 1.0
	currencySmallMax = 100.0
	currencyLargeMin = 500.0
	currencyLargeMax = 50000.0
	percentageMax    = 100.0
	numberDefaultMax = 1000.0
	ratingStep       = 0.5
	booleanTrueBias  = 0.7
)

var textSamples = []string{
	"Disponível",
	"Sob consulta",
	"Consultar termos",
	"Em todo o território nacional",
	"Suporte em português",
}

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// Generator produces random parameter value sets from a catalog.
type Generator struct {
	catalog     *catalog.Catalog
	probability float64
}

// New creates a Generator. probability is the chance each catalog definition
// gets a value during generation, clamped to [0, 1].
func New(c *catalog.Catalog, probability float64) *Generator {
	p := math.Min(math.Max(probability, 0), 1)
	return &Generator{catalog: c, probability: p}
}

// Generate builds one value per catalog definition with the configured
// probability, in catalog order. Subject ID assignment is the caller's
// concern.
func (g *Generator) Generate() []params.Value {
	var out []params.Value
	for _, def := range g.catalog.All() {
		if getRandomFloat() > g.probability {
			continue
		}
		out = append(out, params.Value{
			Name:     def.Name,
			Category: string(def.Category),
			Type:     def.Type,
			Unit:     def.Unit,
			Options:  def.Options,
			Slot:     g.generateSlot(def),
		})
	}
	return out
}

func (g *Generator) generateSlot(def catalog.Definition) params.Slot {
	switch def.Type {
	case params.KindBoolean:
		b := getRandomFloat() < booleanTrueBias
		return params.Slot{Boolean: &b}

	case params.KindRating:
		lo, hi := params.DefaultRatingMin, params.DefaultRatingMax
		if def.Min != nil {
			lo = *def.Min
		}
		if def.Max != nil {
			hi = *def.Max
		}
		// Half-star steps read naturally in the comparison table.
		steps := (hi - lo) / ratingStep
		r := lo + ratingStep*math.Round(getRandomFloat()*steps)
		return params.Slot{Rating: &r}

	case params.KindCurrency:
		lo, hi := currencyRange(def)
		n := roundCurrency(lo + getRandomFloat()*(hi-lo))
		return params.Slot{Number: &n}

	case params.KindPercentage:
		lo, hi := 0.0, percentageMax
		if def.Min != nil {
			lo = *def.Min
		}
		if def.Max != nil {
			hi = *def.Max
		}
		n := math.Round((lo+getRandomFloat()*(hi-lo))*10) / 10
		return params.Slot{Number: &n}

	case params.KindNumber:
		lo, hi := 1.0, numberDefaultMax
		if def.Min != nil {
			lo = *def.Min
		}
		if def.Max != nil {
			hi = *def.Max
		}
		n := math.Round(lo + getRandomFloat()*(hi-lo))
		return params.Slot{Number: &n}

	case params.KindSelect:
		if len(def.Options) > 0 {
			s := def.Options[int(getRandomFloat()*float64(len(def.Options)))%len(def.Options)]
			return params.Slot{Text: &s}
		}
		fallthrough

	case params.KindText:
		fallthrough
	default:
		s := textSamples[int(getRandomFloat()*float64(len(textSamples)))%len(textSamples)]
		return params.Slot{Text: &s}
	}
}

// currencyRange picks bounds keyed on the definition name: minimum-flavored
// parameters (deposit/withdrawal floors) stay small, maximum-flavored ones
// go large.
func currencyRange(def catalog.Definition) (float64, float64) {
	if def.Min != nil && def.Max != nil {
		return *def.Min, *def.Max
	}
	name := strings.ToLower(def.Name)
	switch {
	case strings.Contains(name, "mínimo") || strings.Contains(name, "minimo"):
		return currencySmallMin, currencySmallMax
	case strings.Contains(name, "máximo") || strings.Contains(name, "maximo"):
		return currencyLargeMin, currencyLargeMax
	}
	return currencySmallMin, currencyLargeMax
}

// roundCurrency keeps generated amounts on whole reais.
func roundCurrency(n float64) float64 {
	return math.Round(n)
}
