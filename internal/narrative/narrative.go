// Package narrative assembles the per-country snapshot report: every
// indicator, formatted and annotated with its definition, grouped under the
// four fixed category headings. The output is deterministic given a row.
package narrative

import (
	"atlas.healthmap.org/internal/catalog"
	"atlas.healthmap.org/internal/dataset"
	"atlas.healthmap.org/internal/format"
)

// Entry is one indicator line of the report.
type Entry struct {
	Key        catalog.Key `json:"key"`
	Label      string      `json:"label"`
	Value      string      `json:"value"`
	Definition string      `json:"definition"`
}

// Section groups the entries under one category heading.
type Section struct {
	Title   string  `json:"title"`
	Entries []Entry `json:"entries"`
}

// Report is the full snapshot for one country and year.
type Report struct {
	Country  string    `json:"country"`
	Year     int       `json:"year"`
	Sections []Section `json:"sections"`
}

// Build renders the report for a row. Missing indicator values appear as
// the not-available sentinel; no entry is ever omitted.
func Build(rec dataset.Record, year int) Report {
	report := Report{
		Country:  rec.Country,
		Year:     year,
		Sections: make([]Section, 0, len(catalog.Categories())),
	}

	for _, cat := range catalog.Categories() {
		indicators := catalog.ByCategory(cat)
		section := Section{
			Title:   string(cat),
			Entries: make([]Entry, 0, len(indicators)),
		}
		for _, ind := range indicators {
			section.Entries = append(section.Entries, Entry{
				Key:        ind.Key,
				Label:      ind.Label,
				Value:      format.Indicator(rec.ValuePtr(ind.Key), ind),
				Definition: ind.Definition,
			})
		}
		report.Sections = append(report.Sections, section)
	}

	return report
}
