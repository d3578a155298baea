// Package mathutil provides special functions for the Hankel transform.
package mathutil

import (
	"math"
)

// BesselJ computes the Bessel function of the first kind J_ν(x) for real
// order ν and real argument x.
//
// Evaluation strategy:
//   - Integer ν: math.Jn (also covers negative x and negative orders)
//   - Non-integer ν, x ≤ 12 or |ν| ≥ x: ascending power series
//   - Otherwise: Hankel asymptotic expansion for J_μ and J_μ+1 with
//     μ = ν - ⌊ν⌋, then the three-term recurrence up or down to ν
//
// J_ν(x) is complex for non-integer ν and x < 0; NaN is returned there.
//
// Reference: Abramowitz & Stegun, "Handbook of Mathematical Functions",
// 9.1.10 (series), 9.1.27 (recurrence), 9.2.5 (asymptotic expansion).
func BesselJ(nu, x float64) float64 {
	if math.IsNaN(nu) || math.IsNaN(x) || math.IsInf(nu, 0) {
		return math.NaN()
	}

	if isIntegerOrder(nu) {
		return math.Jn(int(nu), x)
	}

	switch {
	case x < 0:
		return math.NaN()
	case x == 0:
		return besselJAtZero(nu)
	case math.IsInf(x, 1):
		return 0
	}

	if x <= besselAsymptoticThreshold || math.Abs(nu) >= x {
		return besselJSeries(nu, x)
	}
	return besselJRecurrence(nu, x)
}

// isIntegerOrder reports whether nu can be passed to math.Jn.
func isIntegerOrder(nu float64) bool {
	return math.Abs(nu) < besselIntegerOrderLimit && nu == math.Trunc(nu)
}

// besselJAtZero returns J_ν(0) for non-integer ν.
func besselJAtZero(nu float64) float64 {
	if nu > 0 {
		return 0
	}
	// Leading term (x/2)^ν / Γ(ν+1) diverges with the sign of Γ(ν+1).
	_, sign := math.Lgamma(nu + 1)
	return math.Inf(sign)
}

// besselJSeries sums J_ν(x) = Σ (-1)^k (x/2)^(2k+ν) / (k! Γ(k+ν+1)).
func besselJSeries(nu, x float64) float64 {
	half := x / halfDivisor
	lg, sign := math.Lgamma(nu + 1)

	// First term in log space so large orders underflow to 0 instead of Inf/Inf.
	term := float64(sign) * math.Exp(nu*math.Log(half)-lg)
	sum := term
	q := -half * half

	for k := 1; k <= besselSeriesMaxTerms; k++ {
		fk := float64(k)
		term *= q / (fk * (fk + nu))
		sum += term

		if term == 0 {
			break
		}
		// Terms only shrink once k(k+ν) exceeds (x/2)².
		decreasing := fk+nu > 0 && fk*(fk+nu) > half*half
		if decreasing && math.Abs(term) <= besselEpsilon*math.Abs(sum) {
			break
		}
	}

	return sum
}

// besselJAsymptotic evaluates Hankel's expansion
//
//	J_ν(x) ≈ √(2/πx) (P cos χ - Q sin χ),  χ = x - (ν/2 + 1/4)π
//
// where P and Q are the even and odd alternating partial sums of
// a_k(ν)/x^k, a_k(ν) = (4ν²-1)(4ν²-9)...(4ν²-(2k-1)²) / (k! 8^k).
// The series is cut at its smallest term. For half-integer ν it
// terminates and the result is exact.
func besselJAsymptotic(nu, x float64) float64 {
	mu := orderSquareFactor * nu * nu
	p, q := 1.0, 0.0
	term := 1.0
	prev := math.Inf(1)

	for k := 1; k <= besselAsymptoticMaxTerms; k++ {
		odd := float64(2*k - 1)
		term *= (mu - odd*odd) / (float64(k) * hankelDenomFactor * x)

		mag := math.Abs(term)
		if term == 0 || mag > prev {
			break
		}
		prev = mag

		switch k % 4 {
		case 1:
			q += term
		case 2:
			p -= term
		case 3:
			q -= term
		case 0:
			p += term
		}

		if mag < besselEpsilon {
			break
		}
	}

	chi := x - (hankelHalfOrder*nu+hankelQuarterPi)*math.Pi
	return math.Sqrt(twoOverPi/x) * (p*math.Cos(chi) - q*math.Sin(chi))
}

// besselJRecurrence reaches J_ν from the fractional part of ν.
// Both directions of J_(k-1) + J_(k+1) = (2k/x) J_k are stable while |ν| < x.
func besselJRecurrence(nu, x float64) float64 {
	base := math.Floor(nu)
	mu := nu - base

	j0 := besselJAsymptotic(mu, x)
	steps := int(base)
	if steps == 0 {
		return j0
	}
	j1 := besselJAsymptotic(mu+1, x)

	if steps > 0 {
		// Upward: J_(μ+k+1) = (2(μ+k)/x) J_(μ+k) - J_(μ+k-1)
		prev, cur := j0, j1
		for k := 1; k < steps; k++ {
			prev, cur = cur, recurrenceFactor*(mu+float64(k))/x*cur-prev
		}
		return cur
	}

	// Downward: J_(μ+k-1) = (2(μ+k)/x) J_(μ+k) - J_(μ+k+1)
	next, cur := j1, j0
	for k := 0; k > steps; k-- {
		next, cur = cur, recurrenceFactor*(mu+float64(k))/x*cur-next
	}
	return cur
}
