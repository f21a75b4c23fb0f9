package models

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ChartType selects the comparison chart rendering.
type ChartType string

const (
	ChartLine ChartType = "line"
	ChartBar  ChartType = "bar"
)

// TrendRange selects how much history a trend chart shows.
type TrendRange string

const (
	TrendLast5  TrendRange = "last5"
	TrendLast10 TrendRange = "last10"
	TrendAll    TrendRange = "all"
)

// Window returns the number of trailing years a range covers, 0 meaning all.
func (t TrendRange) Window() int {
	switch t {
	case TrendLast5:
		return 5
	case TrendLast10:
		return 10
	default:
		return 0
	}
}

// MaxCompareCountries bounds the multi-country comparison view.
const MaxCompareCountries = 4

// ViewState is the explicit per-request selection state: the chosen year,
// country, comparison set, chart type and trend range. It is parsed fresh
// from every request; nothing about a selection is ambient or persisted.
type ViewState struct {
	Year    int
	Country string
	Compare []string
	Chart   ChartType
	Trend   TrendRange
}

// ParseViewState builds a ViewState from query parameters. The year is
// clamped to the data range and defaults to the most recent year; absent
// toggles take their dashboard defaults. Violations are collected as field
// errors for the validation response.
func ParseViewState(params url.Values, minYear, maxYear int) (ViewState, map[string][]string) {
	fieldErrors := make(map[string][]string)

	state := ViewState{
		Year:  maxYear,
		Chart: ChartLine,
		Trend: TrendAll,
	}

	if raw := params.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			fieldErrors["year"] = append(fieldErrors["year"], fmt.Sprintf("Invalid field value for field %q.", "year"))
		} else {
			if year < minYear {
				year = minYear
			}
			if year > maxYear {
				year = maxYear
			}
			state.Year = year
		}
	}

	state.Country = strings.TrimSpace(params.Get("country"))

	if raw := params.Get("countries"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				state.Compare = append(state.Compare, part)
			}
		}
		if len(state.Compare) > MaxCompareCountries {
			fieldErrors["countries"] = append(fieldErrors["countries"],
				fmt.Sprintf("At most %d countries can be compared.", MaxCompareCountries))
		}
	}

	if raw := params.Get("chart"); raw != "" {
		switch ChartType(raw) {
		case ChartLine, ChartBar:
			state.Chart = ChartType(raw)
		default:
			fieldErrors["chart"] = append(fieldErrors["chart"], fmt.Sprintf("Invalid field value for field %q.", "chart"))
		}
	}

	if raw := params.Get("range"); raw != "" {
		switch TrendRange(raw) {
		case TrendLast5, TrendLast10, TrendAll:
			state.Trend = TrendRange(raw)
		default:
			fieldErrors["range"] = append(fieldErrors["range"], fmt.Sprintf("Invalid field value for field %q.", "range"))
		}
	}

	if len(fieldErrors) == 0 {
		fieldErrors = nil
	}
	return state, fieldErrors
}
