package dataset

import "strings"

// The indicator table mixes real countries with regional and income-bracket
// aggregates. The filter keeps countries, drops aggregates, and renames a
// handful of ISO3 codes to descriptive proxy labels so they display as
// countries. Filtering is label-driven only: missing indicator values never
// drop a row.

// proxyLabels rewrites the display label for rows whose ISO3 code stands in
// for a territory or proxy entity. Membership here also forces the row to be
// kept.
var proxyLabels = map[string]string{
	"GRL": "Greenland",
	"HKG": "Hong Kong (SAR of China)",
	"MAC": "Macao (SAR of China)",
	"PSE": "Palestine",
	"TWN": "Taiwan",
	"XKX": "Kosovo",
}

// keepNames are aggregate labels that must survive the blocklist. The
// allow-list wins over the blocklist; this matches the legacy behavior and
// is deliberately not tightened (see DESIGN.md).
var keepNames = map[string]bool{
	"Americas": true,
}

// americasLabel is applied after filtering: the "Americas" aggregate is
// displayed as a proxy for USA-level data.
const americasLabel = "Americas (USA Data Proxy)"

// blockSubstrings excludes aggregate rows by case-insensitive substring
// match against the original label.
var blockSubstrings = []string{
	"income",
	"world",
	"ida & ibrd",
	"ibrd only",
	"ida total",
	"ida only",
	"ida blend",
	"oecd",
	"euro area",
	"european union",
	"demographic dividend",
	"small states",
	"sub-saharan africa (",
	"latin america &",
	"east asia & pacific (",
	"europe & central asia (",
	"middle east & north africa (",
	"south asia (",
	"north america",
	"africa eastern and southern",
	"africa western and central",
	"fragile and conflict",
	"heavily indebted",
	"least developed",
	"arab world",
	"central europe and the baltics",
	"pacific island small states",
}

// excludeNames drops rows whose label never matches a blocklist term but is
// known not to be a displayable country.
var excludeNames = map[string]bool{
	"Channel Islands": true,
	"Not classified":  true,
}

// KeepRow reports whether a row survives the filter. Precedence: proxy
// ISO3 membership, then the exact-match keep list, then the substring
// blocklist and the explicit exclusion list.
func KeepRow(r Record) bool {
	if _, ok := proxyLabels[r.ISO3]; ok {
		return true
	}
	if keepNames[r.Country] {
		return true
	}
	if excludeNames[r.Country] {
		return false
	}
	lower := strings.ToLower(r.Country)
	for _, term := range blockSubstrings {
		if strings.Contains(lower, term) {
			return false
		}
	}
	return true
}

// FilterRows returns the subset of rows that survive the filter, with proxy
// labels applied. The input is never mutated, and running the filter over
// its own output yields the same rows.
func FilterRows(rows []Record) []Record {
	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		if !KeepRow(r) {
			continue
		}
		if label, ok := proxyLabels[r.ISO3]; ok {
			r = r.withCountry(label)
		}
		if r.Country == "Americas" {
			r = r.withCountry(americasLabel)
		}
		out = append(out, r)
	}
	return out
}
