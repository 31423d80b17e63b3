package thermal

import "fmt"

// Kind tags the role of a segment in the schedule.
type Kind int

const (
	KindLeadIn Kind = iota
	KindDwell
	KindRamp
	KindLeadOut
)

func (k Kind) String() string {
	switch k {
	case KindLeadIn:
		return "lead-in"
	case KindDwell:
		return "dwell"
	case KindRamp:
		return "ramp"
	case KindLeadOut:
		return "lead-out"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Span is a closed interval between two values.
type Span struct {
	Start float64
	End   float64
}

// Width is End - Start; it is negative for a decreasing span.
func (s Span) Width() float64 { return s.End - s.Start }

func (s Span) Mid() float64 { return (s.Start + s.End) / 2 }

// Segment is one piece of a schedule. Index counts dwells and ramps
// separately, so the second ramp has Kind KindRamp and Index 1.
// Lead segments have Index 0.
type Segment struct {
	Kind  Kind
	Index int
	Time  Span
	Temp  Span
}

// IsFlat reports whether the temperature is constant over the segment.
func (s Segment) IsFlat() bool { return s.Temp.Start == s.Temp.End }

// IsSentinel reports whether s is the zero-length lead-in or lead-out.
func (s Segment) IsSentinel() bool { return s.Kind == KindLeadIn || s.Kind == KindLeadOut }

func (s Segment) Duration() float64 { return s.Time.End - s.Time.Start }

func (s Segment) String() string {
	return fmt.Sprintf("%s#%d t=[%g,%g] T=[%g,%g]", s.Kind, s.Index, s.Time.Start, s.Time.End, s.Temp.Start, s.Temp.End)
}

// Vector holds sampled points for one segment. Times and Temps have equal
// length, which may be 0 or 1 for short segments.
type Vector struct {
	Segment Segment
	Times   []float64
	Temps   []float64
}

func (v Vector) Len() int { return len(v.Times) }

// Source records which factory built a schedule.
type Source string

const (
	SourceTimes Source = "times"
	SourceRates Source = "rates"
)

// SamplePolicy returns the number of sample points for seg given the
// schedule's total time.
type SamplePolicy func(seg Segment, total float64) int

// PercentPolicy samples each segment with as many points as the integer
// percentage of total time it covers.
func PercentPolicy(seg Segment, total float64) int {
	return percent(seg.Time.Start, seg.Time.End, total)
}

// FixedPolicy samples every segment of non-zero duration with n points.
// Zero-length segments get no points.
func FixedPolicy(n int) SamplePolicy {
	return func(seg Segment, _ float64) int {
		if seg.Duration() == 0 {
			return 0
		}
		return n
	}
}
