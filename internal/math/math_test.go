package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSigmoid(t *testing.T) {

	type test struct {
		z float64
		p float64
	}

	tests := map[string]test{
		"zero":          {z: 0, p: 0.5},
		"saturates-low": {z: -100, p: 0.0},
		"saturates-top": {z: 100, p: 1.0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tt.p, Sigmoid(tt.z), 1e-9)
		})
	}

	// monotonic in between
	assert.True(t, Sigmoid(-1) < Sigmoid(0))
	assert.True(t, Sigmoid(0) < Sigmoid(1))
}

func TestPermute_Deterministic(t *testing.T) {

	a := make([]int, 100)
	b := make([]int, 100)
	for i := 0; i < 100; i++ {
		a[i] = i
		b[i] = i
	}

	Permute(a)
	Permute(b)
	assert.Equal(t, a, b)

	// every index still present exactly once
	seen := make(map[int]bool)
	for _, i := range a {
		assert.False(t, seen[i])
		seen[i] = true
	}
	assert.Equal(t, 100, len(seen))

	// a second pass changes the order further, again reproducibly
	Permute(a)
	Permute(b)
	assert.Equal(t, a, b)
}
