// Package sealcatalog is a static seal-size lookup keyed by the sealed
// diameter. It only pre-populates informational fields on the piston; the
// core never depends on it for validation or calculation.
package sealcatalog

type Category string

const (
	CategoryPiston Category = "piston"
	CategoryRod    Category = "rod"
	CategoryWiper  Category = "wiper"
)

// Profile is one catalog seal cross-section.
type Profile struct {
	Code   string  `json:"code"`
	Width  float64 `json:"width"`  // mm
	Height float64 `json:"height"` // mm
}

// entry covers the diameter range [min, max). A max of 0 marks the
// open-ended final range.
type entry struct {
	min, max float64
	profile  Profile
}

// Nominal compact-seal sections per diameter band. The tables are ordered
// and disjoint, ending in an open-ended band.
var tables = map[Category][]entry{
	CategoryPiston: {
		{8, 40, Profile{Code: "PK-0840", Width: 4.2, Height: 3.2}},
		{40, 80, Profile{Code: "PK-4080", Width: 6.3, Height: 4.2}},
		{80, 150, Profile{Code: "PK-80150", Width: 8.1, Height: 5.5}},
		{150, 250, Profile{Code: "PK-150250", Width: 9.5, Height: 6.3}},
		{250, 0, Profile{Code: "PK-250X", Width: 12.5, Height: 8.1}},
	},
	CategoryRod: {
		{6, 25, Profile{Code: "RS-0625", Width: 3.2, Height: 2.5}},
		{25, 60, Profile{Code: "RS-2560", Width: 5.0, Height: 3.6}},
		{60, 110, Profile{Code: "RS-60110", Width: 7.1, Height: 4.7}},
		{110, 0, Profile{Code: "RS-110X", Width: 8.9, Height: 6.0}},
	},
	CategoryWiper: {
		{6, 30, Profile{Code: "WR-0630", Width: 2.8, Height: 4.0}},
		{30, 70, Profile{Code: "WR-3070", Width: 4.0, Height: 5.6}},
		{70, 0, Profile{Code: "WR-70X", Width: 5.3, Height: 7.0}},
	},
}

// LookupByDiameter returns the catalog profile for the sealed diameter in
// mm. The second return is false for an unknown category or a diameter
// below the smallest catalogued size.
func LookupByDiameter(category Category, diameter float64) (Profile, bool) {
	table, ok := tables[category]
	if !ok {
		return Profile{}, false
	}
	for _, e := range table {
		if diameter < e.min {
			break
		}
		if e.max == 0 || diameter < e.max {
			return e.profile, true
		}
	}
	return Profile{}, false
}
