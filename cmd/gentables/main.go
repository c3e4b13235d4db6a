// Command gentables is the offline table-generation toolchain for
// gaussfix: it derives the value-spline, area-spline, and dyadic
// precomputed-area tables from the closed-form Gaussian density and its
// antiderivative, and writes them in the plain-text formats the engine
// loads at construction time.
//
// It is never imported by the library. Like the teacher's own tools/
// fixture generators, it is a standalone package main whose output is
// checked in; this program exists only so that output is reproducible.
//
// The 6x6 linear system for each area-spline segment is ill-conditioned
// under plain float64 Gaussian elimination for segments away from the
// origin (coefficient magnitudes blow up past int64 range once scaled to
// Q0.60). This tool solves it with math/big.Float at high working
// precision instead, mirroring the arbitrary-precision Decimal arithmetic
// the original symbolic-math construction used -- the same category of
// fix, ported from a CAS's bignum decimal type to Go's bignum float type.
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
)

// workingPrecision is generous relative to the 60-bit fixed-point output:
// the erf Taylor series has large intermediate cancellation for the
// z ~ 6.8 inputs this tool evaluates (terms grow past 10^70 before
// shrinking), so precision is sized to keep that cancellation from
// eating into the 60 bits of result precision that matter.
const workingPrecision = 800 // bits

const (
	valueSegmentWidthShift = 54
	areaSegmentWidthShift  = 53

	valueSegmentCount = 433
	areaSegmentCount  = 830

	numDyadicScales = 11

	q60Scale = 60
	q63Scale = 63
)

var dyadicScaleCounts = [numDyadicScales]int{830, 415, 208, 104, 52, 26, 13, 7, 4, 2, 1}

func main() {
	outDir := flag.String("out", "tabledata", "output directory for generated table files")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "gentables: %v\n", err)
		os.Exit(1)
	}

	if err := writeValueSplines(*outDir); err != nil {
		fmt.Fprintf(os.Stderr, "gentables: value splines: %v\n", err)
		os.Exit(1)
	}
	if err := writeAreaSplines(*outDir); err != nil {
		fmt.Fprintf(os.Stderr, "gentables: area splines: %v\n", err)
		os.Exit(1)
	}
	if err := writeDyadicAreas(*outDir); err != nil {
		fmt.Fprintf(os.Stderr, "gentables: dyadic areas: %v\n", err)
		os.Exit(1)
	}
}

func newFloat() *big.Float {
	return new(big.Float).SetPrec(workingPrecision)
}

func fromInt(n int64) *big.Float {
	return newFloat().SetInt64(n)
}

// g evaluates the standard Gaussian density exp(-x^2/2) at a real x
// (an absolute position such as a segment edge, as a *big.Float) via a
// Taylor series for exp, since math/big has no built-in transcendental
// functions.
func g(x *big.Float) *big.Float {
	half := newFloat().Mul(x, x)
	half.Mul(half, newFloat().SetFloat64(-0.5))
	return bigExp(half)
}

// gPrime evaluates g'(x) = -x*g(x).
func gPrime(x *big.Float) *big.Float {
	return newFloat().Mul(newFloat().Neg(x), g(x))
}

// bigExp computes exp(z) via its Taylor series, summing until the term
// magnitude underflows the working precision. Valid for the |z| <= ~25
// range this tool's inputs stay within.
func bigExp(z *big.Float) *big.Float {
	term := fromInt(1)
	sum := fromInt(1)
	for n := int64(1); n < 400; n++ {
		term = newFloat().Mul(term, z)
		term = newFloat().Quo(term, fromInt(n))
		sum = newFloat().Add(sum, term)
		if term.MantExp(nil) < -int(workingPrecision) {
			break
		}
	}
	return sum
}

// bigErf computes erf(z) = (2/sqrt(pi)) * sum_{n>=0} (-1)^n z^(2n+1) / (n!(2n+1)).
func bigErf(z *big.Float) *big.Float {
	sum := newFloat().Copy(z)
	term := newFloat().Copy(z)
	zSq := newFloat().Mul(z, z)
	for n := int64(1); n < 2000; n++ {
		term = newFloat().Mul(term, zSq)
		term = newFloat().Neg(term)
		factorial := fromInt(1)
		for k := int64(1); k <= n; k++ {
			factorial.Mul(factorial, fromInt(k))
		}
		coeff := newFloat().Quo(term, factorial)
		coeff = newFloat().Quo(coeff, fromInt(2*n+1))
		sum = newFloat().Add(sum, coeff)
		if coeff.MantExp(nil) < -int(workingPrecision) {
			break
		}
	}
	twoOverSqrtPi := newFloat().Quo(fromInt(2), bigSqrt(bigPi()))
	return newFloat().Mul(sum, twoOverSqrtPi)
}

func bigPi() *big.Float {
	// Chudnovsky-free: pi to the working precision via Machin-like
	// arctan series is unnecessary precision for this tool's purpose;
	// a sufficient literal is used instead since pi itself is a fixed
	// constant, not a function of the segment.
	pi, _, err := big.ParseFloat(
		"3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798",
		10, workingPrecision, big.ToNearestEven)
	if err != nil {
		panic(err)
	}
	return pi
}

func bigSqrt(x *big.Float) *big.Float {
	return newFloat().Sqrt(x)
}

// exactSegmentArea returns the exact closed-form integral of g over
// [a, b] (real-valued), sqrt(pi/2)*(erf(b/sqrt2) - erf(a/sqrt2)).
func exactSegmentArea(a, b *big.Float) *big.Float {
	sqrt2 := bigSqrt(fromInt(2))
	ea := bigErf(newFloat().Quo(a, sqrt2))
	eb := bigErf(newFloat().Quo(b, sqrt2))
	diff := newFloat().Sub(eb, ea)
	halfPi := newFloat().Quo(bigPi(), fromInt(2))
	return newFloat().Mul(bigSqrt(halfPi), diff)
}

// toFixed scales a real-valued big.Float by 2^bits and rounds to the
// nearest integer, returning it as an int64.
func toFixed(x *big.Float, bits int) int64 {
	scale := newFloat().SetMantExp(fromInt(1), bits)
	scaled := newFloat().Mul(x, scale)
	half := newFloat().SetFloat64(0.5)
	if scaled.Sign() < 0 {
		scaled.Sub(scaled, half)
	} else {
		scaled.Add(scaled, half)
	}
	i, _ := scaled.Int64()
	return i
}

// solveLinear solves the n x n system A*x = b via Gaussian elimination
// with partial pivoting, all in big.Float at working precision.
func solveLinear(a [][]*big.Float, b []*big.Float) []*big.Float {
	n := len(b)
	// Work on copies so callers keep their matrices.
	m := make([][]*big.Float, n)
	rhs := make([]*big.Float, n)
	for i := 0; i < n; i++ {
		m[i] = make([]*big.Float, n)
		for j := 0; j < n; j++ {
			m[i][j] = newFloat().Copy(a[i][j])
		}
		rhs[i] = newFloat().Copy(b[i])
	}

	for col := 0; col < n; col++ {
		pivot := col
		pivotMag := newFloat().Abs(m[col][col])
		for r := col + 1; r < n; r++ {
			mag := newFloat().Abs(m[r][col])
			if mag.Cmp(pivotMag) > 0 {
				pivot, pivotMag = r, mag
			}
		}
		if pivot != col {
			m[col], m[pivot] = m[pivot], m[col]
			rhs[col], rhs[pivot] = rhs[pivot], rhs[col]
		}

		for r := col + 1; r < n; r++ {
			factor := newFloat().Quo(m[r][col], m[col][col])
			for c := col; c < n; c++ {
				m[r][c] = newFloat().Sub(m[r][c], newFloat().Mul(factor, m[col][c]))
			}
			rhs[r] = newFloat().Sub(rhs[r], newFloat().Mul(factor, rhs[col]))
		}
	}

	x := make([]*big.Float, n)
	for row := n - 1; row >= 0; row-- {
		acc := newFloat().Copy(rhs[row])
		for c := row + 1; c < n; c++ {
			acc = newFloat().Sub(acc, newFloat().Mul(m[row][c], x[c]))
		}
		x[row] = newFloat().Quo(acc, m[row][row])
	}
	return x
}

// valueSplineCoefs solves the 4x4 Hermite system matching g and g' at
// both endpoints of [x0, x1] for the cubic A*x^3 + B*x^2 + C*x + D.
func valueSplineCoefs(x0, x1 *big.Float) (a, b, c, d *big.Float) {
	x0sq := newFloat().Mul(x0, x0)
	x1sq := newFloat().Mul(x1, x1)

	rows := [][]*big.Float{
		{newFloat().Mul(x0sq, x0), x0sq, x0, fromInt(1)},
		{newFloat().Mul(x1sq, x1), x1sq, x1, fromInt(1)},
		{newFloat().Mul(fromInt(3), x0sq), newFloat().Mul(fromInt(2), x0), fromInt(1), fromInt(0)},
		{newFloat().Mul(fromInt(3), x1sq), newFloat().Mul(fromInt(2), x1), fromInt(1), fromInt(0)},
	}
	rhs := []*big.Float{g(x0), g(x1), gPrime(x0), gPrime(x1)}
	sol := solveLinear(rows, rhs)
	return sol[0], sol[1], sol[2], sol[3]
}

// areaSplineRawCoefs solves the 6x6 system for the quintic
// p(x) = c1*x^5 + c2*x^4 + c3*x^3 + c4*x^2 + c5*x + c6 that approximates
// g over [x0, x1]: p and p' match g and g' at both endpoints (4
// equations), and the segment integral of p and the segment first
// moment of p match the exact corresponding integrals of g (2 more
// equations) -- mirroring the equation list built in
// original_source/Math/SymPy/gauss.py's produce_area_aprx exactly (Eq on
// px0/px1/dpx0/dpx1/ipx01/impx01 against the closed-form gx/dgx/igx01/
// imgx01). The returned coefficients are the raw, undivided c1..c6; the
// caller pre-scales them by 1/(7-k) before storing.
func areaSplineRawCoefs(x0, x1 *big.Float) []*big.Float {
	pow := func(x *big.Float, n int) *big.Float {
		r := fromInt(1)
		for i := 0; i < n; i++ {
			r = newFloat().Mul(r, x)
		}
		return r
	}
	diffPow := func(n int) *big.Float {
		return newFloat().Sub(pow(x1, n), pow(x0, n))
	}

	pointRow := func(x *big.Float, deriv int) []*big.Float {
		switch deriv {
		case 0:
			return []*big.Float{pow(x, 5), pow(x, 4), pow(x, 3), pow(x, 2), x, fromInt(1)}
		case 1:
			return []*big.Float{
				newFloat().Mul(fromInt(5), pow(x, 4)),
				newFloat().Mul(fromInt(4), pow(x, 3)),
				newFloat().Mul(fromInt(3), pow(x, 2)),
				newFloat().Mul(fromInt(2), x),
				fromInt(1), fromInt(0),
			}
		default:
			panic("unsupported derivative order")
		}
	}

	// Segment integral of p: [c1 x^6/6 + c2 x^5/5 + c3 x^4/4 + c4 x^3/3 +
	// c5 x^2/2 + c6 x] from x0 to x1.
	integralRow := []*big.Float{
		newFloat().Quo(diffPow(6), fromInt(6)),
		newFloat().Quo(diffPow(5), fromInt(5)),
		newFloat().Quo(diffPow(4), fromInt(4)),
		newFloat().Quo(diffPow(3), fromInt(3)),
		newFloat().Quo(diffPow(2), fromInt(2)),
		diffPow(1),
	}

	// Segment first moment of p: [c1 x^7/7 + c2 x^6/6 + c3 x^5/5 +
	// c4 x^4/4 + c5 x^3/3 + c6 x^2/2] from x0 to x1.
	momentRow := []*big.Float{
		newFloat().Quo(diffPow(7), fromInt(7)),
		newFloat().Quo(diffPow(6), fromInt(6)),
		newFloat().Quo(diffPow(5), fromInt(5)),
		newFloat().Quo(diffPow(4), fromInt(4)),
		newFloat().Quo(diffPow(3), fromInt(3)),
		newFloat().Quo(diffPow(2), fromInt(2)),
	}

	rows := [][]*big.Float{
		pointRow(x0, 0), pointRow(x1, 0),
		pointRow(x0, 1), pointRow(x1, 1),
		integralRow, momentRow,
	}
	rhs := []*big.Float{
		g(x0), g(x1),
		gPrime(x0), gPrime(x1),
		exactSegmentArea(x0, x1),
		exactFirstMoment(x0, x1),
	}
	return solveLinear(rows, rhs)
}

// exactFirstMoment returns the closed-form integral of x*g(x) over
// [x0, x1]. Since d/dx[-g(x)] = x*g(x), this is simply g(x0) - g(x1),
// with no erf needed.
func exactFirstMoment(x0, x1 *big.Float) *big.Float {
	return newFloat().Sub(g(x0), g(x1))
}

func writeValueSplines(dir string) error {
	path := filepath.Join(dir, "value_approx_coef_64spiu_60bit.data")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for i := 0; i < valueSegmentCount; i++ {
		x0 := segmentEdge(i, valueSegmentWidthShift)
		x1 := segmentEdge(i+1, valueSegmentWidthShift)
		a, b, c, d := valueSplineCoefs(x0, x1)
		_, err := fmt.Fprintf(f, "{ %d, %d, %d, %d }\n",
			toFixed(a, q60Scale), toFixed(b, q60Scale), toFixed(c, q60Scale), toFixed(d, q60Scale))
		if err != nil {
			return err
		}
	}
	return nil
}

func writeAreaSplines(dir string) error {
	path := filepath.Join(dir, "area_approx_coef_128spiu_60bit.data")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for i := 0; i < areaSegmentCount; i++ {
		x0 := segmentEdge(i, areaSegmentWidthShift)
		x1 := segmentEdge(i+1, areaSegmentWidthShift)
		raw := areaSplineRawCoefs(x0, x1)

		// Store c_k already divided by its antiderivative power factor
		// (7-k), the convention that removes division from evaluation.
		fields := make([]int64, 6)
		for k := 0; k < 6; k++ {
			divisor := fromInt(int64(7 - (k + 1)))
			scaled := newFloat().Quo(raw[k], divisor)
			fields[k] = toFixed(scaled, q60Scale)
		}
		_, err := fmt.Fprintf(f, "{ %d, %d, %d, %d, %d, %d }\n",
			fields[0], fields[1], fields[2], fields[3], fields[4], fields[5])
		if err != nil {
			return err
		}
	}
	return nil
}

func writeDyadicAreas(dir string) error {
	for s := 0; s < numDyadicScales; s++ {
		path := filepath.Join(dir, fmt.Sprintf("areas_63bit_scale_%d.data", s))
		f, err := os.Create(path)
		if err != nil {
			return err
		}

		shift := areaSegmentWidthShift + s
		count := dyadicScaleCounts[s]
		for i := 0; i < count; i++ {
			x0 := segmentEdge(i, shift)
			x1 := segmentEdge(i+1, shift)
			area := exactSegmentArea(x0, x1)
			if _, err := fmt.Fprintf(f, "%d,\n", toFixed(area, q63Scale)); err != nil {
				f.Close()
				return err
			}
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

// segmentEdge returns the real-valued left edge of the i-th segment at
// the given Q0.60 bit shift, i.e. i * 2^shift converted out of Q0.60 into
// a real number (divided by 2^60).
func segmentEdge(i, shift int) *big.Float {
	q60 := newFloat().SetMantExp(fromInt(int64(i)), shift)
	return newFloat().SetMantExp(q60, -q60Scale)
}
