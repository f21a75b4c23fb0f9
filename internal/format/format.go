// Package format renders numeric indicator values as display strings.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"atlas.healthmap.org/internal/catalog"
)

// NotAvailable is the sentinel shown for missing indicator values. Missing
// data is never an error.
const NotAvailable = "Data not available"

// grouped formats numbers with English thousands separators.
var grouped = message.NewPrinter(language.English)

// Value renders a numeric value as a unit-annotated display string.
//
// Rules:
//   - nil value: the NotAvailable sentinel, regardless of unit and precision.
//   - currency: "$" prefix; values >= 1000 are grouped with thousands
//     separators and carry no decimals, smaller values are fixed-point at
//     the given precision.
//   - non-currency: values >= 1000 are grouped integers, except that "%"
//     and "Yrs" units always take the fixed-point precision path.
func Value(v *float64, unit string, precision int, currency bool) string {
	if v == nil {
		return NotAvailable
	}

	if currency {
		if *v >= 1000 {
			return grouped.Sprintf("$%.0f", *v)
		}
		return fmt.Sprintf("$%.*f", precision, *v)
	}

	if unit == "%" || unit == "Yrs" {
		return withUnit(fmt.Sprintf("%.*f", precision, *v), unit)
	}

	if *v >= 1000 {
		return withUnit(grouped.Sprintf("%.0f", *v), unit)
	}
	return withUnit(fmt.Sprintf("%.*f", precision, *v), unit)
}

// Indicator renders a value under an indicator's catalog rules.
func Indicator(v *float64, ind catalog.Indicator) string {
	return Value(v, ind.Unit, ind.Precision, ind.Currency)
}

// Percent signs attach directly; every other unit gets a space.
func withUnit(s, unit string) string {
	switch unit {
	case "":
		return s
	case "%":
		return s + "%"
	default:
		return s + " " + unit
	}
}
