// Package thermal models thermal schedules for reaction coordinate diagrams.
//
// A schedule alternates dwell segments (constant temperature) and ramp
// segments (linear change between two dwell temperatures):
//
//   - [Schedule]: immutable model built by [FromTimes] or [FromRates]
//   - [Segment]: one tagged piece of the schedule with its time and temperature span
//   - [Vector]: sampled (time, temperature) points for one segment
//   - [SamplePolicy]: decides how many points each segment gets
//
// # Example
//
//	s, err := thermal.FromTimes([]float64{25, 1200, 25}, []float64{5, 48, 4, 36, 5})
//	if err != nil {
//		return err
//	}
//	vectors, _ := s.SegmentVectors(nil)
//
// # Layout
//
// The canonical schedule is padded with a zero-length lead-in and lead-out
// segment, so a schedule of n dwell temperatures always has 2n+1 segments
// and 2n+2 functional times.
//
// # Thread Safety
//
// A Schedule never changes after construction and every accessor returns a
// copy, so it can be shared between goroutines without locking.
package thermal
