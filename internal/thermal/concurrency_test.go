package thermal

import (
	"reflect"
	"sync"
	"testing"
)

func TestScheduleConcurrentReaders(t *testing.T) {
	s := scenarioA(t)

	wantVectors, err := s.SegmentVectors(nil)
	if err != nil {
		t.Fatal(err)
	}
	wantSummary := s.Summary()
	wantRate, err := s.RateOf(s.Ramps()[0])
	if err != nil {
		t.Fatal(err)
	}

	const readers = 8
	errs := make([]error, readers)
	mismatch := make([]bool, readers)

	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			for n := 0; n < 50; n++ {
				vectors, err := s.SegmentVectors(FixedPolicy(idx + 2))
				if err != nil {
					errs[idx] = err
					return
				}
				if len(vectors) != s.Len() {
					mismatch[idx] = true
				}
				if v, err := s.SegmentVectors(nil); err != nil || !reflect.DeepEqual(v, wantVectors) {
					mismatch[idx] = true
				}
				if !reflect.DeepEqual(s.Summary(), wantSummary) {
					mismatch[idx] = true
				}
				for _, ramp := range s.Ramps() {
					if _, err := s.RateOf(ramp); err != nil {
						errs[idx] = err
						return
					}
				}
				if r, _ := s.RateOf(s.Ramps()[0]); r != wantRate {
					mismatch[idx] = true
				}
			}
		}(i)
	}
	wg.Wait()

	for i := range errs {
		if errs[i] != nil {
			t.Errorf("reader %d: %v", i, errs[i])
		}
		if mismatch[i] {
			t.Errorf("reader %d saw results differing from a serial read", i)
		}
	}
}
