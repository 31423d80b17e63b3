package thermal

import "math"

// SegmentVectors samples every segment in order. A nil policy samples by
// percentage of total time. Dwells are constant; ramps are linear.
func (s *Schedule) SegmentVectors(policy SamplePolicy) ([]Vector, error) {
	if policy == nil {
		policy = PercentPolicy
	}
	vectors := make([]Vector, 0, len(s.segments))
	for i, seg := range s.segments {
		n := policy(seg, s.total)
		times := Linspace(seg.Time.Start, seg.Time.End, n)
		temps := make([]float64, len(times))
		for j, t := range times {
			if seg.IsFlat() {
				temps[j] = seg.Temp.Start
				continue
			}
			v, err := TemperatureAt(t, seg.Time.Start, seg.Time.End, seg.Temp.Start, seg.Temp.End)
			if err != nil {
				return nil, &ScheduleError{Op: "segment vectors", Index: i, Err: err}
			}
			temps[j] = v
		}
		vectors = append(vectors, Vector{Segment: seg, Times: times, Temps: temps})
	}
	return vectors, nil
}

// RateOf returns the magnitude of the segment's rate, rounded to the
// nearest integer (halves to even) before the sign is dropped.
func (s *Schedule) RateOf(seg Segment) (float64, error) {
	r, err := Rate(seg.Temp.Start, seg.Temp.End, seg.Time.Start, seg.Time.End)
	if err != nil {
		return 0, err
	}
	return math.Abs(math.RoundToEven(r)), nil
}

// PercentOfTotal is the floored integer percentage of total time covered
// by the span [t0, t1].
func (s *Schedule) PercentOfTotal(t0, t1 float64) int {
	return percent(t0, t1, s.total)
}

func percent(t0, t1, total float64) int {
	return int(math.Floor(math.Abs(t1-t0) / total * 100))
}

// SegmentSummary carries the derived numbers for one segment.
type SegmentSummary struct {
	Kind     string  `json:"kind"`
	Index    int     `json:"index"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	From     float64 `json:"from"`
	To       float64 `json:"to"`
	Duration float64 `json:"duration"`
	Percent  int     `json:"percent"`
	Rate     float64 `json:"rate,omitempty"`
	HasRate  bool    `json:"has_rate"`
}

// Summary is a serializable snapshot of a schedule's derived values.
type Summary struct {
	Source          Source           `json:"source"`
	TotalTime       float64          `json:"total_time"`
	Temperatures    []float64        `json:"temperatures"`
	FunctionalTimes []float64        `json:"functional_times"`
	Rates           []float64        `json:"rates,omitempty"`
	Segments        []SegmentSummary `json:"segments"`
}

func (s *Schedule) Summary() Summary {
	sum := Summary{
		Source:          s.source,
		TotalTime:       s.total,
		Temperatures:    s.Temperatures(),
		FunctionalTimes: s.FunctionalTimes(),
		Rates:           s.InputRates(),
		Segments:        make([]SegmentSummary, 0, len(s.segments)),
	}
	for _, seg := range s.segments {
		ss := SegmentSummary{
			Kind:     seg.Kind.String(),
			Index:    seg.Index,
			Start:    seg.Time.Start,
			End:      seg.Time.End,
			From:     seg.Temp.Start,
			To:       seg.Temp.End,
			Duration: seg.Duration(),
			Percent:  s.PercentOfTotal(seg.Time.Start, seg.Time.End),
		}
		if seg.Kind == KindRamp {
			if r, err := s.RateOf(seg); err == nil {
				ss.Rate = r
				ss.HasRate = true
			}
		}
		sum.Segments = append(sum.Segments, ss)
	}
	return sum
}
