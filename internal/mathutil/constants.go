package mathutil

import "math"

// Region selection for BesselJ.
const (
	// Above this argument (and when |ν| < x) the Hankel asymptotic expansion
	// plus recurrence is used instead of the ascending series.
	besselAsymptoticThreshold = 12.0

	// Integer orders below this magnitude are evaluated with math.Jn.
	besselIntegerOrderLimit = 1 << 30
)

// Series and expansion limits
const (
	besselSeriesMaxTerms     = 500
	besselAsymptoticMaxTerms = 60
	besselEpsilon            = 1e-17
)

// Hankel expansion constants
const (
	hankelQuarterPi   = 0.25        // Phase offset (ν/2 + 1/4)π
	hankelHalfOrder   = 0.5         // ν/2 in the phase
	hankelDenomFactor = 8.0         // 8x in the a_k(ν) recurrence
	orderSquareFactor = 4.0         // 4ν² in the a_k(ν) recurrence
	twoOverPi         = 2 / math.Pi // √(2/πx) prefactor
)

// Common factors
const (
	halfDivisor      = 2.0 // Division by 2
	recurrenceFactor = 2.0 // 2k/x in the three-term recurrence
)
