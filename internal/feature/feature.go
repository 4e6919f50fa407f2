package feature

import (
	"gonum.org/v1/gonum/stat"

	"github.com/sardelis/coin-ml/internal/model"
)

// emaLookback caps the number of closes fed into the ema recurrence.
const emaLookback = 50

// Snapshot holds the indicator values computed over one trailing candle window.
// The struct fields are the single source of truth for the feature set;
// Vector defines their canonical ordering. Models address features by vector
// position, so reordering Vector without retraining invalidates every stored model.
type Snapshot struct {
	LastClose float64
	SMA10     float64
	SMA20     float64
	EMA10     float64
	EMA20     float64
	RSI14     float64
	Vol20     float64
	Pos       float64
	VolRatio  float64
	Mom1      float64
	Mom5      float64
}

// Vector returns the snapshot as a fixed-length feature vector,
// in the canonical order matched by Names.
func (s Snapshot) Vector() []float64 {
	return []float64{
		s.LastClose,
		s.SMA10,
		s.SMA20,
		s.EMA10,
		s.EMA20,
		s.RSI14,
		s.Vol20,
		s.Pos,
		s.VolRatio,
		s.Mom1,
		s.Mom5,
	}
}

// Names returns the feature names in the same order as Vector.
func Names() []string {
	return []string{
		"last_close",
		"sma_10",
		"sma_20",
		"ema_10",
		"ema_20",
		"rsi_14",
		"vol_20",
		"pos",
		"vol_ratio",
		"mom_1",
		"mom_5",
	}
}

// Size is the fixed feature vector length.
func Size() int {
	return len(Names())
}

// Extract computes the indicator snapshot over the last window candles.
// A window larger than the available history silently shrinks to the history
// length, so early-history inference degrades instead of failing.
// A non-positive window spans the full history.
func Extract(candles []model.Candle, window int) Snapshot {
	if len(candles) == 0 {
		return Snapshot{Pos: 0.5, RSI14: 50.0, VolRatio: 1.0}
	}
	if window <= 0 || window > len(candles) {
		window = len(candles)
	}

	closes := make([]float64, 0, window)
	highs := make([]float64, 0, window)
	lows := make([]float64, 0, window)
	volumes := make([]float64, 0, window)
	for _, c := range candles[len(candles)-window:] {
		closes = append(closes, c.Close)
		highs = append(highs, c.High)
		lows = append(lows, c.Low)
		volumes = append(volumes, c.Volume)
	}

	rsiPeriod := 14
	if window > 1 {
		rsiPeriod = min(14, window-1)
	}

	s := Snapshot{
		LastClose: closes[window-1],
		SMA10:     sma(closes, min(10, window)),
		SMA20:     sma(closes, min(20, window)),
		EMA10:     ema(tail(closes, min(emaLookback, window)), min(10, window)),
		EMA20:     ema(tail(closes, min(emaLookback, window)), min(20, window)),
		RSI14:     rsi(closes, rsiPeriod),
		Vol20:     volatility(closes, min(20, window)),
	}

	// position of the last close inside the window range
	high := highs[0]
	low := lows[0]
	for i := 1; i < window; i++ {
		if highs[i] > high {
			high = highs[i]
		}
		if lows[i] < low {
			low = lows[i]
		}
	}
	if high == low {
		s.Pos = 0.5
	} else {
		s.Pos = (s.LastClose - low) / (high - low)
	}

	// last volume relative to the window mean
	volMean := stat.Mean(volumes, nil)
	if volMean == 0 {
		s.VolRatio = 1.0
	} else {
		s.VolRatio = volumes[window-1] / volMean
	}

	s.Mom1 = momentum(closes, 1)
	s.Mom5 = momentum(closes, 5)

	return s
}

// sma is the arithmetic mean of the last period values,
// falling back to the full slice when it is too short.
func sma(values []float64, period int) float64 {
	if len(values) == 0 {
		return 0.0
	}
	if len(values) < period || period <= 0 {
		return stat.Mean(values, nil)
	}
	return stat.Mean(values[len(values)-period:], nil)
}

// ema seeds with the first value and applies the usual smoothing recurrence.
func ema(values []float64, period int) float64 {
	if len(values) == 0 {
		return 0.0
	}
	if period <= 1 {
		return values[len(values)-1]
	}
	k := 2.0 / float64(period+1)
	e := values[0]
	for _, v := range values[1:] {
		e = v*k + e*(1-k)
	}
	return e
}

// rsi computes the relative strength index over the last period deltas.
// Too little history yields the neutral 50, zero losses yield 100.
func rsi(values []float64, period int) float64 {
	if len(values) < period+1 {
		return 50.0
	}
	gains := 0.0
	losses := 0.0
	for i := len(values) - period; i < len(values); i++ {
		change := values[i] - values[i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}
	if losses == 0 {
		if gains == 0 {
			// flat window carries no directional information
			return 50.0
		}
		return 100.0
	}
	rs := (gains / float64(period)) / (losses / float64(period))
	return 100.0 - (100.0 / (1.0 + rs))
}

// volatility is the coefficient of variation of the last period values.
func volatility(values []float64, period int) float64 {
	if len(values) < period {
		period = len(values)
	}
	if period <= 1 {
		return 0.0
	}
	window := values[len(values)-period:]
	mean := stat.Mean(window, nil)
	if mean == 0 {
		return 0.0
	}
	return stat.PopStdDev(window, nil) / mean
}

// momentum is the relative change of the last close against the close lag bars back.
func momentum(closes []float64, lag int) float64 {
	if len(closes) < lag+1 {
		return 0.0
	}
	prev := closes[len(closes)-1-lag]
	if prev == 0 {
		return 0.0
	}
	return closes[len(closes)-1]/prev - 1.0
}

func tail(values []float64, n int) []float64 {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
