package review

import "sort"

// ValidLocations is the fixed set of locations a review may be submitted for.
var ValidLocations = map[string]struct{}{
	"Albuquerque, New Mexico":    {},
	"Carlsbad, California":       {},
	"Chula Vista, California":    {},
	"Colorado Springs, Colorado": {},
	"Denver, Colorado":           {},
	"El Cajon, California":       {},
	"El Paso, Texas":             {},
	"Escondido, California":      {},
	"Fresno, California":         {},
	"La Mesa, California":        {},
	"Las Vegas, Nevada":          {},
	"Los Angeles, California":    {},
	"Oceanside, California":      {},
	"Phoenix, Arizona":           {},
	"Sacramento, California":     {},
	"Salt Lake City, Utah":       {},
	"San Diego, California":      {},
	"Tucson, Arizona":            {},
}

// IsValidLocation reports whether s is an exact member of ValidLocations.
func IsValidLocation(s string) bool {
	_, ok := ValidLocations[s]
	return ok
}

// Locations returns the valid locations in sorted order.
func Locations() []string {
	out := make([]string, 0, len(ValidLocations))
	for l := range ValidLocations {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}
