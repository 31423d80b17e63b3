package thermal

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Schedule is an immutable thermal schedule of n dwell temperatures joined
// by n-1 ramps, padded with zero-length lead-in and lead-out segments.
type Schedule struct {
	source    Source
	temps     []float64
	rates     []float64
	durations []float64
	times     []float64
	segTemps  []float64
	segments  []Segment
	total     float64
}

// FromTimes builds a schedule from explicit step durations laid out as
// [dwell0, ramp0, dwell1, ramp1, ..., dwell(n-1)] for n temperatures.
// Even positions are dwells and odd positions are ramps.
func FromTimes(temps, times []float64) (*Schedule, error) {
	const op = "from times"
	n := len(temps)
	if n == 0 {
		return nil, newError(op, -1, ErrShapeMismatch, "no temperatures")
	}
	if err := checkFinite(op+": temps", temps); err != nil {
		return nil, err
	}
	if len(times) != 2*n-1 {
		return nil, newError(op, -1, ErrShapeMismatch,
			"%d temperatures need %d times, got %d", n, 2*n-1, len(times))
	}
	if err := checkDurations(op+": times", times); err != nil {
		return nil, err
	}

	dwell := make([]float64, 0, n)
	ramp := make([]float64, 0, n-1)
	for i, t := range times {
		if i%2 == 0 {
			dwell = append(dwell, t)
		} else {
			ramp = append(ramp, t)
		}
	}
	return build(SourceTimes, temps, dwell, ramp, nil)
}

// FromRates builds a schedule from n dwell durations and n-1 ramp rates.
// Each ramp lasts |T(i+1) - T(i)| / |rate(i)|. A zero rate is accepted only
// between equal temperatures, where the ramp takes no time.
func FromRates(temps, dwells, rates []float64) (*Schedule, error) {
	const op = "from rates"
	n := len(temps)
	if n == 0 {
		return nil, newError(op, -1, ErrShapeMismatch, "no temperatures")
	}
	if err := checkFinite(op+": temps", temps); err != nil {
		return nil, err
	}
	if len(dwells) != n {
		return nil, newError(op, -1, ErrShapeMismatch,
			"%d temperatures need %d dwell times, got %d", n, n, len(dwells))
	}
	if len(rates) != n-1 {
		return nil, newError(op, -1, ErrShapeMismatch,
			"%d temperatures need %d rates, got %d", n, n-1, len(rates))
	}
	if err := checkDurations(op+": dwells", dwells); err != nil {
		return nil, err
	}
	if err := checkFinite(op+": rates", rates); err != nil {
		return nil, err
	}

	ramp := make([]float64, n-1)
	for i, r := range rates {
		delta := math.Abs(temps[i+1] - temps[i])
		switch {
		case delta == 0:
			ramp[i] = 0
		case r == 0:
			return nil, newError(op+": rates", i, ErrDivisionByZero,
				"zero rate for a %g degree change", delta)
		default:
			ramp[i] = delta / math.Abs(r)
		}
	}
	return build(SourceRates, temps, cloneFloats(dwells), ramp, cloneFloats(rates))
}

func build(source Source, temps, dwell, ramp, rates []float64) (*Schedule, error) {
	steps, err := Interleave(dwell, ramp)
	if err != nil {
		return nil, err
	}
	durations := PadWithZero(steps)

	total := floats.Sum(durations)
	if total <= 0 {
		return nil, newError("build", -1, ErrDivisionByZero, "total time is zero")
	}

	times := CumulativeSum(durations)

	n := len(temps)
	segTemps := make([]float64, 0, 2*n+2)
	segTemps = append(segTemps, temps[0])
	segTemps = append(segTemps, duplicate(temps)...)
	segTemps = append(segTemps, temps[n-1])

	segments := make([]Segment, len(durations))
	last := len(durations) - 1
	for i := range durations {
		seg := Segment{
			Time: Span{Start: times[i], End: times[i+1]},
			Temp: Span{Start: segTemps[i], End: segTemps[i+1]},
		}
		switch {
		case i == 0:
			seg.Kind = KindLeadIn
		case i == last:
			seg.Kind = KindLeadOut
		case (i-1)%2 == 0:
			seg.Kind = KindDwell
			seg.Index = (i - 1) / 2
		default:
			seg.Kind = KindRamp
			seg.Index = (i - 1) / 2
		}
		segments[i] = seg
	}

	return &Schedule{
		source:    source,
		temps:     cloneFloats(temps),
		rates:     rates,
		durations: durations,
		times:     times,
		segTemps:  segTemps,
		segments:  segments,
		total:     total,
	}, nil
}

func (s *Schedule) Source() Source { return s.source }

// TotalTime is the sum of all segment durations. It is always positive.
func (s *Schedule) TotalTime() float64 { return s.total }

// Temperatures returns the dwell temperatures as supplied.
func (s *Schedule) Temperatures() []float64 { return cloneFloats(s.temps) }

// FunctionalTimes returns the segment boundaries, starting at 0.
func (s *Schedule) FunctionalTimes() []float64 { return cloneFloats(s.times) }

// Durations returns every segment duration including the zero-length
// lead-in and lead-out.
func (s *Schedule) Durations() []float64 { return cloneFloats(s.durations) }

// SegmentTemperatures returns the temperature at every functional time.
func (s *Schedule) SegmentTemperatures() []float64 { return cloneFloats(s.segTemps) }

// InputRates returns the rates a rate-driven schedule was built from, or nil.
func (s *Schedule) InputRates() []float64 { return cloneFloats(s.rates) }

// Segments returns all segments in chronological order.
func (s *Schedule) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

func (s *Schedule) Len() int { return len(s.segments) }

// Segment returns the i-th segment in chronological order.
func (s *Schedule) Segment(i int) (Segment, bool) {
	if i < 0 || i >= len(s.segments) {
		return Segment{}, false
	}
	return s.segments[i], true
}

func (s *Schedule) Dwells() []Segment { return s.ofKind(KindDwell) }

func (s *Schedule) Ramps() []Segment { return s.ofKind(KindRamp) }

func (s *Schedule) ofKind(k Kind) []Segment {
	out := make([]Segment, 0, len(s.segments)/2+1)
	for _, seg := range s.segments {
		if seg.Kind == k {
			out = append(out, seg)
		}
	}
	return out
}

func cloneFloats(v []float64) []float64 {
	if v == nil {
		return nil
	}
	c := make([]float64, len(v))
	copy(c, v)
	return c
}
