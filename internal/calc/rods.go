package calc

import (
	"regexp"
	"slices"
	"strings"
)

// RodOrder lists the supported metric rod sizes from smallest to largest.
var RodOrder = []string{"M6", "M8", "M10", "M12", "M16", "M20"}

var rodSizePattern = regexp.MustCompile(`M\s*(\d+)`)

// ParseRodSize normalises a rod label such as "m10", "M 10" or
// "Threaded rod M10 A4" to "M10". Labels without an M-size are returned
// upper-cased.
func ParseRodSize(label string) string {
	upper := strings.ToUpper(label)
	if m := rodSizePattern.FindStringSubmatch(upper); m != nil {
		return "M" + m[1]
	}
	return upper
}

// RodRank returns the position of size in [RodOrder], or -1.
func RodRank(size string) int {
	return slices.Index(RodOrder, size)
}

// IsKnownRodSize reports whether label parses to a size in [RodOrder].
func IsKnownRodSize(label string) bool {
	return RodRank(ParseRodSize(label)) >= 0
}

// RequiredRodSize returns the smallest rod whose allowable tension carries
// perRodN newtons. When none does, the largest size is returned.
func RequiredRodSize(perRodN float64, capacities map[string]float64) string {
	for _, size := range RodOrder {
		if capacity, ok := capacities[size]; ok && capacity > 0 && capacity >= perRodN {
			return size
		}
	}
	return RodOrder[len(RodOrder)-1]
}
