// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package likelihood

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestSampleCounts(t *testing.T) {
	l := Himmelblau{}
	lo, hi := l.SampleRange()
	for _, n := range []int{0, 1, 1000, 5000} {
		s := Sampler{Src: rand.NewSource(uint64(n) + 1)}
		samples, err := s.Sample(l, n)
		if err != nil {
			t.Fatalf("Sample(%d): %v", n, err)
		}
		if len(samples) != n {
			t.Fatalf("Sample(%d): got %d rows", n, len(samples))
		}
		for _, x := range samples {
			if len(x) != l.Dim() {
				t.Fatalf("Sample(%d): row %v has %d columns", n, x, len(x))
			}
			for j, v := range x {
				if v < lo[j] || v > hi[j] {
					t.Errorf("Sample(%d): %v outside range [%v, %v]", n, x, lo[j], hi[j])
				}
			}
		}
	}
}

func TestSampleDistribution(t *testing.T) {
	// Himmelblau's four modes all have height 0 but different
	// curvatures; the (3, 2) mode carries roughly a third of the
	// mass and is the only one in the positive quadrant.
	s := Sampler{Src: rand.NewSource(7)}
	samples, err := s.Sample(Himmelblau{}, 4000)
	if err != nil {
		t.Fatal(err)
	}
	var near int
	for _, x := range samples {
		if x[0] > 0 && x[1] > 0 {
			near++
		}
	}
	frac := float64(near) / float64(len(samples))
	if frac < 0.2 || frac > 0.5 {
		t.Errorf("fraction of samples in positive quadrant: got %v, want roughly 0.34", frac)
	}
}

func TestSampleFailsToConverge(t *testing.T) {
	// A razor-thin shell accepts almost nothing, so a tiny batch
	// budget must hit the cap.
	l := GaussianShell{Dims: 2, R: 2, Sigma: 0.0001}
	s := Sampler{BatchSize: 10, MaxBatches: 2, Src: rand.NewSource(1)}
	if _, err := s.Sample(l, 3); err == nil {
		t.Error("want convergence error, got nil")
	}
}

func TestSampleNegativeCount(t *testing.T) {
	s := Sampler{Src: rand.NewSource(1)}
	if _, err := s.Sample(Himmelblau{}, -1); err == nil {
		t.Error("want error for negative sample count, got nil")
	}
}
