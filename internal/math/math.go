package math

import (
	"math"
	"strconv"
)

// sigmoidClamp bounds the logistic input to avoid floating point overflow.
const sigmoidClamp = 35.0

// phi is the fractional part of the golden ratio, used for the deterministic permutation.
const phi = 0.6180339887498949

// Format formats a float based on the given precision
// TODO : format based on the value
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// Sigmoid squashes z into (0,1), saturating to exactly 0 or 1
// outside the clamp range.
func Sigmoid(z float64) float64 {
	if z < -sigmoidClamp {
		return 0.0
	}
	if z > sigmoidClamp {
		return 1.0
	}
	return 1.0 / (1.0 + math.Exp(-z))
}

// Permute applies one deterministic Fisher-Yates pass to the given index slice,
// drawing the swap target from the golden ratio instead of a random source.
// Repeated calls keep evolving the same slice, so training epochs see
// different but fully reproducible orderings.
func Permute(idx []int) {
	for i := len(idx) - 1; i > 0; i-- {
		j := int(float64(i+1)*phi) % (i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}
}
