package render

import (
	"math"
	"sort"
	"strconv"

	"github.com/san-kum/labelmaker/internal/thermal"
)

// Point is a (time, temperature) pair in data coordinates.
type Point struct {
	T    float64
	Temp float64
}

// Anchor is the horizontal alignment of an annotation.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

type AnnotationKind string

const (
	AnnotationTemp AnnotationKind = "temp"
	AnnotationTime AnnotationKind = "time"
	AnnotationRate AnnotationKind = "rate"
)

// Annotation is a text label placed in data coordinates.
type Annotation struct {
	Kind   AnnotationKind
	Text   string
	At     Point
	Anchor Anchor
}

// Diagram is everything a renderer needs to draw one schedule.
type Diagram struct {
	Curve       []Point
	LeadIn      []Point
	LeadOut     []Point
	Annotations []Annotation
	TimeTicks   []float64
	TempTicks   []float64
	MinTime     float64
	MaxTime     float64
	MinTemp     float64
	MaxTemp     float64
}

// LeadLength is the visual length of the lead-in and lead-out stubs: the
// share of total time covered by one seventh of it, floored to a percent.
func LeadLength(s *thermal.Schedule) float64 {
	total := s.TotalTime()
	return total * float64(s.PercentOfTotal(total/7, 2*total/7)) / 100
}

// Build lays out a schedule for drawing. Any schedule error aborts the
// whole diagram.
func Build(s *thermal.Schedule, opts Options) (*Diagram, error) {
	vectors, err := s.SegmentVectors(nil)
	if err != nil {
		return nil, err
	}

	d := &Diagram{MaxTime: s.TotalTime()}
	add := func(p Point) {
		if n := len(d.Curve); n > 0 && d.Curve[n-1] == p {
			return
		}
		d.Curve = append(d.Curve, p)
	}
	// Segment endpoints are always kept so short segments with fewer
	// than two samples still join their neighbours.
	for _, v := range vectors {
		seg := v.Segment
		if seg.IsSentinel() {
			continue
		}
		add(Point{T: seg.Time.Start, Temp: seg.Temp.Start})
		for i := range v.Times {
			add(Point{T: v.Times[i], Temp: v.Temps[i]})
		}
		add(Point{T: seg.Time.End, Temp: seg.Temp.End})
	}

	temps := s.Temperatures()
	d.MinTemp, d.MaxTemp = temps[0], temps[0]
	for _, t := range temps {
		d.MinTemp = math.Min(d.MinTemp, t)
		d.MaxTemp = math.Max(d.MaxTemp, t)
	}

	if opts.LeadStubs {
		lead := LeadLength(s)
		first, last := temps[0], temps[len(temps)-1]
		d.LeadIn = []Point{{T: -lead, Temp: first}, {T: 0, Temp: first}}
		d.LeadOut = []Point{{T: d.MaxTime, Temp: last}, {T: d.MaxTime + lead, Temp: last}}
		d.MinTime = -lead
		d.MaxTime += lead
	}

	tg := opts.Toggles
	for _, seg := range s.Segments() {
		if seg.IsSentinel() {
			continue
		}
		if tg.Temps && seg.Kind == thermal.KindDwell {
			d.Annotations = append(d.Annotations, Annotation{
				Kind:   AnnotationTemp,
				Text:   FormatNumber(seg.Temp.Start) + opts.TempUnit,
				At:     Point{T: seg.Time.Start, Temp: seg.Temp.Start},
				Anchor: AnchorStart,
			})
		}
		if tg.Times && seg.Duration() > 0 {
			d.Annotations = append(d.Annotations, Annotation{
				Kind:   AnnotationTime,
				Text:   FormatNumber(seg.Duration()) + " " + opts.TimeUnit,
				At:     Point{T: seg.Time.Mid(), Temp: d.MinTemp},
				Anchor: AnchorMiddle,
			})
		}
		if tg.Rates && seg.Kind == thermal.KindRamp && !seg.IsFlat() && seg.Duration() > 0 {
			rate, err := s.RateOf(seg)
			if err != nil {
				return nil, err
			}
			anchor := AnchorEnd
			if seg.Temp.End < seg.Temp.Start {
				anchor = AnchorStart
			}
			d.Annotations = append(d.Annotations, Annotation{
				Kind:   AnnotationRate,
				Text:   FormatNumber(rate) + opts.RateUnit(),
				At:     Point{T: seg.Time.Mid(), Temp: seg.Temp.Mid()},
				Anchor: anchor,
			})
		}
	}

	if tg.TimeTicks {
		d.TimeTicks = uniqueSorted(s.FunctionalTimes())
	}
	if tg.TempTicks {
		d.TempTicks = uniqueSorted(temps)
	}
	return d, nil
}

// AnnotationsOf returns only the annotations of the given kind.
func (d *Diagram) AnnotationsOf(kind AnnotationKind) []Annotation {
	var out []Annotation
	for _, a := range d.Annotations {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}

// FormatNumber prints v with at most two decimals and no trailing zeros.
func FormatNumber(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 { // no "-0"
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func uniqueSorted(v []float64) []float64 {
	c := make([]float64, len(v))
	copy(c, v)
	sort.Float64s(c)
	out := c[:0]
	for i, x := range c {
		if i == 0 || x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}

// Sample returns n temperatures at evenly spaced times across the whole
// diagram, lead stubs included, by linear interpolation of the curve.
func (d *Diagram) Sample(n int) []float64 {
	points := make([]Point, 0, len(d.LeadIn)+len(d.Curve)+len(d.LeadOut))
	points = append(points, d.LeadIn...)
	points = append(points, d.Curve...)
	points = append(points, d.LeadOut...)
	if n <= 0 || len(points) == 0 {
		return []float64{}
	}

	out := make([]float64, n)
	step := 0.0
	if n > 1 {
		step = (d.MaxTime - d.MinTime) / float64(n-1)
	}
	j := 0
	for i := range out {
		t := d.MinTime + step*float64(i)
		for j < len(points)-2 && points[j+1].T < t {
			j++
		}
		a := points[j]
		if j+1 >= len(points) {
			out[i] = a.Temp
			continue
		}
		b := points[j+1]
		switch {
		case t <= a.T:
			out[i] = a.Temp
		case t >= b.T || b.T == a.T:
			out[i] = b.Temp
		default:
			out[i] = a.Temp + (b.Temp-a.Temp)*(t-a.T)/(b.T-a.T)
		}
	}
	return out
}
