package calc

import (
	"math"
	"math/big"
)

// Gravity is the standard acceleration used to turn kg into N.
const Gravity = 9.81

// Placeholder allowables used when the selected profile carries none.
const (
	DefaultAllowableMomentKNm   = 0.25
	DefaultDeflectionLimitRatio = 360.0
)

// noDeflectionLimit stands in for an unbounded limit when the ratio is
// not positive.
const noDeflectionLimit = 1e9

// BeamResult is the outcome of one tier's beam check.
type BeamResult struct {
	DeflectionMM   float64
	MomentKNm      float64
	DeflectionPass bool
	BendingPass    bool
}

// SimpleBeam checks a tier as a simply supported beam of span spanMM
// carrying weightKg as a central point load.
//
// Without section data (e <= 0 or ixx <= 0) deflection is reported as
// zero and passing while bending fails.
func SimpleBeam(spanMM, weightKg, e, ixx, allowableMomentKNm, deflectionRatio float64) BeamResult {
	p := weightKg * Gravity
	l := spanMM

	momentNmm := p * l / 4
	momentKNm := momentNmm / 1e6

	if e <= 0 || ixx <= 0 {
		return BeamResult{
			DeflectionMM:   0,
			MomentKNm:      momentKNm,
			DeflectionPass: true,
			BendingPass:    false,
		}
	}

	deflection := p * math.Pow(l, 3) / (48 * e * ixx)

	limit := noDeflectionLimit
	if deflectionRatio > 0 {
		limit = l / deflectionRatio
	}

	return BeamResult{
		DeflectionMM:   deflection,
		MomentKNm:      momentKNm,
		DeflectionPass: deflection <= limit,
		BendingPass:    momentKNm <= allowableMomentKNm,
	}
}

// round rounds the exact binary value of v to places decimals, sending
// exact halves to the even neighbour. 0.125 becomes 0.12 and 2.675, stored
// just below 2.675, becomes 2.67.
func round(v float64, places int) float64 {
	scale := math.Pow10(places)
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v*scale) >= 1<<52 {
		return v
	}

	exact := new(big.Float).SetPrec(256).SetFloat64(v)
	exact.Mul(exact, new(big.Float).SetPrec(256).SetFloat64(scale))

	n, _ := exact.Int(nil)
	frac := new(big.Float).SetPrec(256).Sub(exact, new(big.Float).SetPrec(256).SetInt(n))
	frac.Abs(frac)

	switch frac.Cmp(big.NewFloat(0.5)) {
	case 1:
		n.Add(n, big.NewInt(int64(exact.Sign())))
	case 0:
		if n.Bit(0) == 1 {
			n.Add(n, big.NewInt(int64(exact.Sign())))
		}
	}

	return float64(n.Int64()) / scale
}
