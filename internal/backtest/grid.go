package backtest

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sardelis/coin-ml/internal/dataset"
	"github.com/sardelis/coin-ml/internal/metrics"
	"github.com/sardelis/coin-ml/internal/model"
	"github.com/sardelis/coin-ml/internal/net"
)

// splitRatio is the chronological train share of the combined dataset.
const splitRatio = 0.7

// Series couples a coin with its candle history.
type Series struct {
	Coin    model.Coin
	Candles []model.Candle
}

// Result is one grid cell: the settings tried and the metrics they produced.
type Result struct {
	Settings Settings `json:"settings"`
	Report   Report   `json:"report"`
}

// Outcome is a full grid search run.
type Outcome struct {
	ID      string   `json:"id"`
	Best    Result   `json:"best"`
	Results []Result `json:"results"`
}

// Combine builds the per-coin datasets and concatenates them in the given
// order. Concatenation, not interleaving: the chronological split downstream
// cuts each coin history at most once.
func Combine(series []Series, window, horizon int, thresholdPct float64) dataset.Dataset {
	sets := make([]dataset.Dataset, len(series))
	for i, s := range series {
		sets[i] = dataset.Build(s.Candles, window, horizon, thresholdPct)
		log.Info().
			Str("coin", string(s.Coin)).
			Int("candles", len(s.Candles)).
			Int("examples", sets[i].Len()).
			Msg("built dataset")
	}
	return dataset.Merge(sets...)
}

// Grid trains the network on the chronological 70% prefix of the dataset,
// scores the 30% suffix and simulates every (threshold, risk) pair of the
// grids against it. The pair with the strictly greatest sharpe-like score
// wins, first found on ties. An empty dataset is a configuration error.
func Grid(ds dataset.Dataset, network net.Network, thresholds, risks []float64, horizon int, base Settings) (*Outcome, error) {
	if ds.Len() == 0 {
		return nil, fmt.Errorf("no examples in combined dataset")
	}
	if len(thresholds) == 0 || len(risks) == 0 {
		return nil, fmt.Errorf("empty parameter grid: %d thresholds, %d risks", len(thresholds), len(risks))
	}

	train, test := ds.Split(splitRatio)

	network.Fit(train.Vectors, train.Labels)
	metrics.Observer.IncrementModels(string(network.Type()))

	probs := make([]float64, test.Len())
	for i, v := range test.Vectors {
		probs[i] = network.Predict(v)
	}

	outcome := &Outcome{
		ID:      uuid.New().String(),
		Results: make([]Result, 0, len(thresholds)*len(risks)),
	}

	var best *Result
	for _, threshold := range thresholds {
		for _, risk := range risks {
			s := base
			s.Threshold = threshold
			s.Risk = risk
			report := Run(probs, test.Closes, horizon, s)
			result := Result{Settings: s, Report: report}
			outcome.Results = append(outcome.Results, result)
			if best == nil || report.Sharpe > best.Report.Sharpe {
				r := result
				best = &r
			}
		}
	}
	outcome.Best = *best

	metrics.Observer.IncrementRuns("backtest")
	metrics.Observer.AddTrades(best.Report.Trades, "combined", "backtest")

	log.Info().
		Str("id", outcome.ID).
		Str("type", string(network.Type())).
		Int("train", train.Len()).
		Int("test", test.Len()).
		Float64("threshold", best.Settings.Threshold).
		Float64("risk", best.Settings.Risk).
		Int("trades", best.Report.Trades).
		Float64("sharpe", best.Report.Sharpe).
		Float64("pnl", best.Report.TotalPnL).
		Msg("grid search done")

	return outcome, nil
}
