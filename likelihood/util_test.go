// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package likelihood

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

type pointCase struct {
	x    []float64
	want float64
}

func testLogLike(t *testing.T, name string, l Likelihood, cases []pointCase) {
	t.Helper()
	for _, c := range cases {
		if got := l.LogLike(c.x); !aeq(c.want, got) {
			t.Errorf("%s.LogLike(%v): want %v, got %v", name, c.x, c.want, got)
		}
	}
}

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	f()
}

// uniformPoints draws n points uniformly from l's sample range.
func uniformPoints(t *testing.T, l Likelihood, n int, seed uint64) [][]float64 {
	t.Helper()
	rnd := rand.New(rand.NewSource(seed))
	lo, hi := l.SampleRange()
	pts := make([][]float64, n)
	for i := range pts {
		x := make([]float64, l.Dim())
		for j := range x {
			x[j] = lo[j] + rnd.Float64()*(hi[j]-lo[j])
		}
		pts[i] = x
	}
	return pts
}
