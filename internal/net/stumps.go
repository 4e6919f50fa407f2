package net

import (
	"math"
	"sort"

	coinmath "github.com/sardelis/coin-ml/internal/math"
)

const (
	// defaultRounds is the number of boosting rounds.
	defaultRounds = 60
	// maxThresholds caps the candidate split values tried per feature.
	maxThresholds = 50
	// minErr and maxErr clamp the weighted error to keep alpha finite.
	minErr = 1e-9
	maxErr = 0.499999
)

// Stump is a one-feature, one-threshold decision rule with a signed
// contribution weight. Polarity +1 votes positive when the feature value
// is at or above the threshold, polarity -1 negates the comparison.
type Stump struct {
	Feature   int     `json:"feature_idx"`
	Threshold float64 `json:"threshold"`
	Polarity  int     `json:"polarity"`
	Alpha     float64 `json:"alpha"`
}

// predict votes +1 or -1 for the given vector.
func (s Stump) predict(x []float64) int {
	if x[s.Feature] >= s.Threshold {
		return s.Polarity
	}
	return -s.Polarity
}

// AdaBoostModel is a boosted ensemble of decision stumps.
type AdaBoostModel struct {
	Rounds int
	Stumps []Stump
}

// NewAdaBoost creates a boosted stumps model for the given number of rounds.
func NewAdaBoost(rounds int) *AdaBoostModel {
	if rounds <= 0 {
		rounds = defaultRounds
	}
	return &AdaBoostModel{
		Rounds: rounds,
		Stumps: make([]Stump, 0),
	}
}

// Type returns the serialization tag of the model.
func (m *AdaBoostModel) Type() Type {
	return AdaBoostStumps
}

// Decision returns the raw weighted vote of the ensemble.
func (m *AdaBoostModel) Decision(x []float64) float64 {
	d := 0.0
	for _, s := range m.Stumps {
		d += s.Alpha * float64(s.predict(x))
	}
	return d
}

// Predict squashes the decision function into a probability.
// The sigmoid saturates on large ensembles the same way as the linear model.
func (m *AdaBoostModel) Predict(x []float64) float64 {
	return coinmath.Sigmoid(m.Decision(x))
}

// Fit trains the ensemble from scratch. Each round picks the stump with the
// least weighted error over the current example weights, then reweights the
// examples towards the ones it got wrong. Training stops early when no stump
// can be constructed.
func (m *AdaBoostModel) Fit(x [][]float64, y []int) {
	m.Stumps = make([]Stump, 0, m.Rounds)

	n := len(x)
	if n == 0 {
		return
	}

	// labels in {-1,+1}
	yy := make([]int, n)
	for i, v := range y {
		if v == 1 {
			yy[i] = 1
		} else {
			yy[i] = -1
		}
	}

	w := make([]float64, n)
	for i := range w {
		w[i] = 1.0 / float64(n)
	}

	for round := 0; round < m.Rounds; round++ {
		stump, err, ok := searchStump(x, yy, w)
		if !ok {
			break
		}
		if err < minErr {
			err = minErr
		} else if err > maxErr {
			err = maxErr
		}
		stump.Alpha = 0.5 * math.Log((1-err)/err)
		m.Stumps = append(m.Stumps, stump)
		reweight(w, x, yy, stump)
	}
}

// searchStump scans every feature, candidate threshold and polarity for the
// stump with the least weighted error. Ties keep the first candidate in scan
// order: feature ascending, threshold ascending, polarity +1 before -1.
func searchStump(x [][]float64, yy []int, w []float64) (Stump, float64, bool) {
	if len(x) == 0 || len(x[0]) == 0 {
		return Stump{}, 0, false
	}

	best := Stump{}
	bestErr := math.MaxFloat64
	found := false

	for f := 0; f < len(x[0]); f++ {
		for _, threshold := range thresholds(x, f) {
			for _, polarity := range []int{1, -1} {
				s := Stump{Feature: f, Threshold: threshold, Polarity: polarity}
				err := 0.0
				for i, xi := range x {
					if s.predict(xi) != yy[i] {
						err += w[i]
					}
				}
				if err < bestErr {
					bestErr = err
					best = s
					found = true
				}
			}
		}
	}
	return best, bestErr, found
}

// thresholds returns the unique observed values of the given feature in
// ascending order, downsampled to at most maxThresholds evenly spaced
// candidates for high-cardinality features.
func thresholds(x [][]float64, f int) []float64 {
	seen := make(map[float64]struct{}, len(x))
	unique := make([]float64, 0, len(x))
	for _, xi := range x {
		if _, ok := seen[xi[f]]; !ok {
			seen[xi[f]] = struct{}{}
			unique = append(unique, xi[f])
		}
	}
	sort.Float64s(unique)

	if len(unique) <= maxThresholds {
		return unique
	}
	out := make([]float64, maxThresholds)
	for i := 0; i < maxThresholds; i++ {
		out[i] = unique[i*(len(unique)-1)/(maxThresholds-1)]
	}
	return out
}

// reweight scales every example weight by the exponential loss of the given
// stump and renormalizes the weights to sum to one.
func reweight(w []float64, x [][]float64, yy []int, s Stump) {
	total := 0.0
	for i := range w {
		w[i] *= math.Exp(-s.Alpha * float64(yy[i]) * float64(s.predict(x[i])))
		total += w[i]
	}
	if total == 0 {
		return
	}
	for i := range w {
		w[i] /= total
	}
}
