// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package likelihood

// Himmelblau is the negated Himmelblau function interpreted as an
// unnormalized log-density over two dimensions,
//
//	log ƒ(x) = -(x₀² + x₁ - 11)² - (x₀ + x₁² - 7)²
//
// It has four separated modes of equal height 0; (3, 2) is the
// declared maximizer.
type Himmelblau struct{}

func (Himmelblau) Dim() int { return 2 }

func (h Himmelblau) LogLike(x []float64) float64 {
	checkDim("Himmelblau", x, 2)
	a := x[0]*x[0] + x[1] - 11
	b := x[0] + x[1]*x[1] - 7
	return -a*a - b*b
}

func (h Himmelblau) LogLikeEach(xs [][]float64) []float64 {
	return logLikeEach(h.LogLike, xs)
}

func (h Himmelblau) MaxLogLike() float64 {
	return h.LogLike([]float64{3, 2})
}

func (Himmelblau) SampleRange() (lo, hi []float64) {
	return constRange(2, -5, 5)
}
