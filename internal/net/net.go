package net

import (
	"github.com/sardelis/coin-ml/internal/feature"
	"github.com/sardelis/coin-ml/internal/model"
)

// Type tags a network variant in its serialized record.
type Type string

const (
	// NoType defines a missing network type.
	NoType Type = ""
	// Logistic tags the linear model trained by online gradient descent.
	Logistic Type = "logistic"
	// AdaBoostStumps tags the boosted ensemble of decision stumps.
	AdaBoostStumps Type = "adaboost_stumps"
)

// Network defines the common contract of the classifier variants.
// Fit consumes parallel feature vectors and binary labels in time order,
// Predict returns the probability of the positive label for one vector.
// A network is immutable after training except through a new Fit call.
type Network interface {
	Fit(x [][]float64, y []int)
	Predict(x []float64) float64
	Type() Type
}

// Score computes the probability for the latest candle window.
// This is the single value the downstream decision logic consumes.
func Score(n Network, candles []model.Candle, window int) float64 {
	if window > len(candles) {
		window = len(candles)
	}
	snap := feature.Extract(candles, window)
	return n.Predict(snap.Vector())
}
