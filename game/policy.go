package game

import "golang.org/x/exp/rand"

// FirstCapture always removes the lowest-indexed candidate.
func FirstCapture(candidates []Point) Point {
	return candidates[0]
}

// RandomCapture removes a uniformly chosen candidate.
func RandomCapture(rng *rand.Rand) CapturePolicy {
	return func(candidates []Point) Point {
		return candidates[rng.Intn(len(candidates))]
	}
}
