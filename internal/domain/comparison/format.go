package comparison

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	params "github.com/RyanRaymundo99/betcompare/internal/domain/params"
)

// Display constants for formatted cells.
const (
	// Missing is the placeholder for a subject without a value for a
	// parameter. Always a literal dash, never zero.
	Missing = "-"

	boolTrue  = "Sim"
	boolFalse = "Não"
)

// formatter renders parameter values for side-by-side display using
// Brazilian Portuguese number conventions.
type formatter struct {
	printer      *message.Printer
	currencyUnit string
}

func newFormatter(currencyUnit string) *formatter {
	return &formatter{
		printer:      message.NewPrinter(language.BrazilianPortuguese),
		currencyUnit: currencyUnit,
	}
}

// formatValue renders one value according to its kind. The zero slot renders
// as Missing.
func (f *formatter) formatValue(v params.Value) string {
	switch v.Type {
	case params.KindBoolean:
		if v.Slot.Boolean == nil {
			return Missing
		}
		if *v.Slot.Boolean {
			return boolTrue
		}
		return boolFalse

	case params.KindRating:
		if v.Slot.Rating == nil {
			return Missing
		}
		return f.formatRating(*v.Slot.Rating)

	case params.KindCurrency:
		if v.Slot.Number == nil {
			return Missing
		}
		unit := v.Unit
		if unit == "" {
			unit = f.currencyUnit
		}
		return f.printer.Sprint(number.Decimal(*v.Slot.Number,
			number.MinFractionDigits(2), number.MaxFractionDigits(2))) + " " + unit

	case params.KindPercentage:
		if v.Slot.Number == nil {
			return Missing
		}
		s := f.printer.Sprint(number.Decimal(*v.Slot.Number, number.MaxFractionDigits(2)))
		unit := v.Unit
		if unit == "" {
			unit = "%"
		}
		if unit == "%" {
			return s + unit
		}
		return s + " " + unit

	case params.KindNumber:
		if v.Slot.Number == nil {
			return Missing
		}
		s := f.printer.Sprint(number.Decimal(*v.Slot.Number, number.MaxFractionDigits(2)))
		if v.Unit != "" {
			return s + " " + v.Unit
		}
		return s

	case params.KindSelect, params.KindText:
		fallthrough
	default:
		if v.Slot.Text == nil {
			return Missing
		}
		return *v.Slot.Text
	}
}

// formatRating renders one decimal place unless the value is exactly
// integral ("4" rather than "4,0"; "4,5" otherwise).
func (f *formatter) formatRating(r float64) string {
	if r == math.Trunc(r) {
		return strconv.Itoa(int(r))
	}
	return f.printer.Sprint(number.Decimal(r,
		number.MinFractionDigits(1), number.MaxFractionDigits(1)))
}
