package net

import (
	coinmath "github.com/sardelis/coin-ml/internal/math"
)

const (
	// DefaultLearningRate is the fallback learning rate for the linear model.
	DefaultLearningRate = 0.05
	// DefaultL2 is the fallback L2 penalty for the linear model.
	DefaultL2 = 1e-4
	// defaultEpochs is the number of passes over the training set.
	defaultEpochs = 10
)

// LogisticModel is a linear classifier trained by online gradient descent
// with L2 regularization on the weights. Training is bit-reproducible:
// example order is permuted with the deterministic golden-ratio pass
// instead of a seeded random shuffle.
type LogisticModel struct {
	Weights []float64
	Bias    float64
	LR      float64
	L2      float64
	Epochs  int
	Shuffle bool
}

// NewLogistic creates a linear model with the default hyperparameters.
func NewLogistic(features int) *LogisticModel {
	return &LogisticModel{
		Weights: make([]float64, features),
		LR:      DefaultLearningRate,
		L2:      DefaultL2,
		Epochs:  defaultEpochs,
		Shuffle: true,
	}
}

// Type returns the serialization tag of the model.
func (m *LogisticModel) Type() Type {
	return Logistic
}

// Predict returns the sigmoid-squashed linear score for the given vector.
func (m *LogisticModel) Predict(x []float64) float64 {
	z := m.Bias
	for k, w := range m.Weights {
		if k >= len(x) {
			break
		}
		z += w * x[k]
	}
	return coinmath.Sigmoid(z)
}

// Fit trains the model from scratch on the given examples.
// Weights and bias restart at zero on every call. The index permutation
// carries over between epochs, so each epoch sees a different ordering,
// all of them fully determined by the example count.
func (m *LogisticModel) Fit(x [][]float64, y []int) {
	n := len(x)
	if n == 0 {
		return
	}

	m.Weights = make([]float64, len(x[0]))
	m.Bias = 0.0

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	for e := 0; e < m.Epochs; e++ {
		if m.Shuffle {
			coinmath.Permute(idx)
		}
		for _, i := range idx {
			xi := x[i]
			p := m.Predict(xi)
			err := p - float64(y[i])
			for k := range m.Weights {
				grad := err*xi[k] + m.L2*m.Weights[k]
				m.Weights[k] -= m.LR * grad
			}
			m.Bias -= m.LR * err
		}
	}
}
