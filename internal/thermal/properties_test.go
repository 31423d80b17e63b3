package thermal

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func randomTimesSchedule(r *rand.Rand) (temps, times []float64) {
	n := 1 + r.Intn(7)
	temps = make([]float64, n)
	for i := range temps {
		temps[i] = float64(20 + r.Intn(1200))
	}
	times = make([]float64, 2*n-1)
	for i := range times {
		times[i] = 0.5 + r.Float64()*48
	}
	return temps, times
}

var _ = Describe("Schedule", func() {
	var r *rand.Rand

	BeforeEach(func() {
		r = rand.New(rand.NewSource(GinkgoRandomSeed()))
	})

	Describe("layout", func() {
		It("pads 2n-1 step times to 2n+1 durations", func() {
			for trial := 0; trial < 200; trial++ {
				temps, times := randomTimesSchedule(r)
				s, err := FromTimes(temps, times)
				Expect(err).NotTo(HaveOccurred())

				n := len(temps)
				Expect(s.Durations()).To(HaveLen(2*n + 1))
				Expect(s.FunctionalTimes()).To(HaveLen(2*n + 2))
				Expect(s.Segments()).To(HaveLen(2*n + 1))
				Expect(s.Durations()[0]).To(BeZero())
				Expect(s.Durations()[2*n]).To(BeZero())
			}
		})

		It("keeps functional times non-decreasing and segments chronological", func() {
			for trial := 0; trial < 200; trial++ {
				temps, times := randomTimesSchedule(r)
				s, err := FromTimes(temps, times)
				Expect(err).NotTo(HaveOccurred())

				ft := s.FunctionalTimes()
				for i := 1; i < len(ft); i++ {
					Expect(ft[i]).To(BeNumerically(">=", ft[i-1]))
				}
				segs := s.Segments()
				for i := 1; i < len(segs); i++ {
					Expect(segs[i].Time.Start).To(Equal(segs[i-1].Time.End))
					Expect(segs[i].Temp.Start).To(Equal(segs[i-1].Temp.End))
				}
				Expect(ft[len(ft)-1]).To(BeNumerically("~", s.TotalTime(), 1e-9))
			}
		})

		It("tags dwells and ramps from their position", func() {
			temps, times := randomTimesSchedule(r)
			s, err := FromTimes(temps, times)
			Expect(err).NotTo(HaveOccurred())

			Expect(s.Dwells()).To(HaveLen(len(temps)))
			Expect(s.Ramps()).To(HaveLen(len(temps) - 1))
			for i, d := range s.Dwells() {
				Expect(d.Index).To(Equal(i))
				Expect(d.IsFlat()).To(BeTrue())
				Expect(d.Temp.Start).To(Equal(temps[i]))
			}
		})
	})

	Describe("percent of total", func() {
		It("floors each segment and never sums past 100", func() {
			for trial := 0; trial < 200; trial++ {
				temps, times := randomTimesSchedule(r)
				s, err := FromTimes(temps, times)
				Expect(err).NotTo(HaveOccurred())

				sum := 0
				for _, seg := range s.Segments() {
					p := s.PercentOfTotal(seg.Time.Start, seg.Time.End)
					want := int(math.Floor(100 * math.Abs(seg.Duration()) / s.TotalTime()))
					Expect(p).To(Equal(want))
					sum += p
				}
				Expect(sum).To(BeNumerically("<=", 100))
				Expect(sum).To(BeNumerically(">=", 100-(s.Len()-1)))
			}
		})
	})

	Describe("rate-driven construction", func() {
		It("recovers the input rates on every ramp", func() {
			for trial := 0; trial < 100; trial++ {
				n := 2 + r.Intn(5)
				temps := make([]float64, n)
				for i := range temps {
					temps[i] = float64(20 + r.Intn(1200))
				}
				dwells := make([]float64, n)
				for i := range dwells {
					dwells[i] = r.Float64() * 24
				}
				rates := make([]float64, n-1)
				for i := range rates {
					rates[i] = 1 + r.Float64()*150
				}

				s, err := FromRates(temps, dwells, rates)
				Expect(err).NotTo(HaveOccurred())

				for i, seg := range s.Ramps() {
					if seg.IsFlat() {
						Expect(seg.Duration()).To(BeZero())
						continue
					}
					raw, err := Rate(seg.Temp.Start, seg.Temp.End, seg.Time.Start, seg.Time.End)
					Expect(err).NotTo(HaveOccurred())
					Expect(math.Abs(raw)).To(BeNumerically("~", rates[i], 1e-6))

					got, err := s.RateOf(seg)
					Expect(err).NotTo(HaveOccurred())
					Expect(got).To(Equal(math.Abs(math.Round(raw))))
				}
			}
		})
	})

	Describe("degenerate input", func() {
		It("rejects an all-zero schedule instead of dividing by zero", func() {
			s, err := FromTimes([]float64{25, 1200}, []float64{0, 0, 0})
			Expect(err).To(MatchError(ErrDivisionByZero))
			Expect(s).To(BeNil())
		})

		It("builds a single dwell as three flat segments", func() {
			s, err := FromTimes([]float64{850}, []float64{12})
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Segments()).To(HaveLen(3))
			for _, seg := range s.Segments() {
				Expect(seg.Temp).To(Equal(Span{Start: 850, End: 850}))
			}
		})
	})

	Describe("queries", func() {
		It("return identical results when repeated", func() {
			temps, times := randomTimesSchedule(r)
			s, err := FromTimes(temps, times)
			Expect(err).NotTo(HaveOccurred())

			first, err := s.SegmentVectors(nil)
			Expect(err).NotTo(HaveOccurred())
			second, err := s.SegmentVectors(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
			Expect(s.Summary()).To(Equal(s.Summary()))
		})
	})
})
