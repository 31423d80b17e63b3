package thermal

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Rate returns the rate of temperature change between (t0, T0) and (t1, T1).
func Rate(T0, T1, t0, t1 float64) (float64, error) {
	if t1 == t0 {
		return 0, newError("rate", -1, ErrDivisionByZero, "zero-width time span at t=%g", t0)
	}
	return (T1 - T0) / (t1 - t0), nil
}

// TemperatureAt linearly interpolates the temperature at time t on the line
// through (t0, T0) and (t1, T1). Both endpoints are returned exactly.
func TemperatureAt(t, t0, t1, T0, T1 float64) (float64, error) {
	slope, err := Rate(T0, T1, t0, t1)
	if err != nil {
		return 0, err
	}
	switch t {
	case t0:
		return T0, nil
	case t1:
		return T1, nil
	}
	return T0 + slope*(t-t0), nil
}

// Interleave merges dwell and ramp values as dwell0, ramp0, dwell1, ..., dwellN.
// The dwell sequence must hold exactly one more element than the ramp sequence.
func Interleave(dwell, ramp []float64) ([]float64, error) {
	if len(dwell) != len(ramp)+1 {
		return nil, newError("interleave", -1, ErrShapeMismatch,
			"%d dwell values need %d ramp values, got %d", len(dwell), len(dwell)-1, len(ramp))
	}
	out := make([]float64, 0, len(dwell)+len(ramp))
	for i, d := range dwell {
		out = append(out, d)
		if i < len(ramp) {
			out = append(out, ramp[i])
		}
	}
	return out, nil
}

// PadWithZero returns a new slice with a zero prepended and appended.
func PadWithZero(seq []float64) []float64 {
	out := make([]float64, len(seq)+2)
	copy(out[1:], seq)
	return out
}

// CumulativeSum returns the running sum of seq prefixed with 0.
func CumulativeSum(seq []float64) []float64 {
	out := make([]float64, len(seq)+1)
	if len(seq) > 0 {
		floats.CumSum(out[1:], seq)
	}
	return out
}

// Linspace returns n evenly spaced points over [start, end].
// n == 0 yields an empty slice and n == 1 yields [start].
func Linspace(start, end float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{start}
	}
	out := floats.Span(make([]float64, n), start, end)
	out[n-1] = end
	return out
}

// duplicate repeats every value twice: [a, b] -> [a, a, b, b].
func duplicate(seq []float64) []float64 {
	out := make([]float64, 0, 2*len(seq))
	for _, v := range seq {
		out = append(out, v, v)
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func checkFinite(op string, seq []float64) error {
	for i, v := range seq {
		if !finite(v) {
			return newError(op, i, ErrInvalidValue, "non-finite value %v", v)
		}
	}
	return nil
}

func checkDurations(op string, seq []float64) error {
	if err := checkFinite(op, seq); err != nil {
		return err
	}
	for i, v := range seq {
		if v < 0 {
			return newError(op, i, ErrInvalidValue, "negative duration %g", v)
		}
	}
	return nil
}
