package index

import "math"

const normEpsilon = 1e-10

// l2Normalize scales the vector to unit length in place.
// Near-zero vectors are left untouched apart from the epsilon guard.
func l2Normalize(v []float32) {
	var sumSquares float64
	for _, x := range v {
		sumSquares += float64(x) * float64(x)
	}
	norm := math.Sqrt(sumSquares) + normEpsilon
	for i := range v {
		v[i] = float32(float64(v[i]) / norm)
	}
}

func dotProduct(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
