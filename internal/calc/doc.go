// Package calc implements the bracket capacity checks.
//
// The beam and rod models are simplified placeholders: each tier is
// treated as a simply supported beam spanning the bracket spacing with the
// tier weight as a central point load, and the two drop rods share the
// total load equally. Results say so in their notes and every report
// repeats it.
package calc
