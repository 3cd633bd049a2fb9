// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package likelihood

import "math"

// Eggbox is the two-dimensional "egg box" log-density
//
//	log ƒ(x) = (2 + cos(x₀/2)·cos(x₁/2))⁵
//
// a periodic grid of well-separated modes. The maximum is at the
// origin.
type Eggbox struct{}

func (Eggbox) Dim() int { return 2 }

func (e Eggbox) LogLike(x []float64) float64 {
	checkDim("Eggbox", x, 2)
	chi := math.Cos(x[0]/2) * math.Cos(x[1]/2)
	return math.Pow(2+chi, 5)
}

func (e Eggbox) LogLikeEach(xs [][]float64) []float64 {
	return logLikeEach(e.LogLike, xs)
}

func (e Eggbox) MaxLogLike() float64 {
	return e.LogLike([]float64{0, 0})
}

func (Eggbox) SampleRange() (lo, hi []float64) {
	return constRange(2, -15, 15)
}
