package dataset

import (
	"github.com/sardelis/coin-ml/internal/feature"
	"github.com/sardelis/coin-ml/internal/model"
)

// Dataset holds parallel feature vectors and labels in time order,
// together with the entry close aligned to each vector.
// The time ordering is load-bearing: the chronological train/test split
// relies on it, and shuffling at this level would leak the future into training.
type Dataset struct {
	Names   []string
	Vectors [][]float64
	Labels  []int
	Closes  []float64
}

// Len returns the number of examples.
func (d Dataset) Len() int {
	return len(d.Vectors)
}

// Split cuts the dataset chronologically at the given ratio.
func (d Dataset) Split(ratio float64) (Dataset, Dataset) {
	n := int(ratio * float64(d.Len()))
	train := Dataset{
		Names:   d.Names,
		Vectors: d.Vectors[:n],
		Labels:  d.Labels[:n],
		Closes:  d.Closes[:n],
	}
	test := Dataset{
		Names:   d.Names,
		Vectors: d.Vectors[n:],
		Labels:  d.Labels[n:],
		Closes:  d.Closes[n:],
	}
	return train, test
}

// Build slides the feature extractor over the candle history.
// For each index i the vector is computed on the history truncated at i,
// and the label marks whether the close horizon candles later is at least
// thresholdPct percent above the close at i. Histories too short to produce
// a single labeled example yield an empty dataset, not an error.
func Build(candles []model.Candle, window, horizon int, thresholdPct float64) Dataset {
	ds := Dataset{
		Names:   feature.Names(),
		Vectors: make([][]float64, 0),
		Labels:  make([]int, 0),
		Closes:  make([]float64, 0),
	}

	n := len(candles)
	if n < window+horizon+1 {
		return ds
	}

	closes := model.Closes(candles)
	threshold := thresholdPct / 100.0

	for i := window; i < n-horizon; i++ {
		snap := feature.Extract(candles[:i], window)
		label := 0
		if closes[i+horizon]/closes[i]-1.0 >= threshold {
			label = 1
		}
		ds.Vectors = append(ds.Vectors, snap.Vector())
		ds.Labels = append(ds.Labels, label)
		ds.Closes = append(ds.Closes, closes[i])
	}
	return ds
}

// Merge concatenates the given datasets in order.
func Merge(dd ...Dataset) Dataset {
	out := Dataset{
		Names:   feature.Names(),
		Vectors: make([][]float64, 0),
		Labels:  make([]int, 0),
		Closes:  make([]float64, 0),
	}
	for _, d := range dd {
		out.Vectors = append(out.Vectors, d.Vectors...)
		out.Labels = append(out.Labels, d.Labels...)
		out.Closes = append(out.Closes, d.Closes...)
	}
	return out
}
