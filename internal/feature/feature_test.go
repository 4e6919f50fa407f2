package feature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sardelis/coin-ml/internal/model"
)

func candles(closes ...float64) []model.Candle {
	cc := make([]model.Candle, len(closes))
	for i, c := range closes {
		cc[i] = model.Candle{
			TS:     int64(i + 1),
			Open:   c,
			High:   c * 1.01,
			Low:    c * 0.99,
			Close:  c,
			Volume: 100,
		}
	}
	return cc
}

func rising(n int) []model.Candle {
	closes := make([]float64, n)
	for i := 0; i < n; i++ {
		closes[i] = 100 + float64(i)
	}
	return candles(closes...)
}

func TestExtract_FixedLength(t *testing.T) {

	type test struct {
		candles int
		window  int
	}

	tests := map[string]test{
		"full-window":    {candles: 100, window: 50},
		"exact-window":   {candles: 50, window: 50},
		"short-history":  {candles: 10, window: 50},
		"single-candle":  {candles: 1, window: 50},
		"tiny-window":    {candles: 100, window: 2},
		"window-of-one":  {candles: 100, window: 1},
		"empty-history":  {candles: 0, window: 50},
		"degraded-early": {candles: 5, window: 20},
		"zero-window":    {candles: 5, window: 0},
		"negative":       {candles: 5, window: -3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := Extract(rising(tt.candles), tt.window)
			v := s.Vector()
			assert.Equal(t, Size(), len(v))
			assert.Equal(t, Size(), len(Names()))
		})
	}
}

func TestExtract_WindowClamp(t *testing.T) {

	cc := rising(5)

	// a non-positive window spans the full history
	assert.Equal(t, Extract(cc, 5), Extract(cc, 0))
	assert.Equal(t, Extract(cc, 5), Extract(cc, -3))
}

func TestExtract_Bounds(t *testing.T) {

	series := map[string][]model.Candle{
		"rising":  rising(100),
		"falling": candles(200, 190, 180, 170, 160, 150, 140, 130, 120, 110, 100, 90, 80, 70, 60, 50, 40, 30, 20, 10),
		"choppy":  candles(100, 105, 95, 110, 90, 108, 97, 103, 99, 101, 100, 104, 96, 102, 98, 100, 107, 93, 100, 100),
	}

	for name, cc := range series {
		t.Run(name, func(t *testing.T) {
			s := Extract(cc, 20)
			assert.True(t, s.RSI14 >= 0 && s.RSI14 <= 100, "rsi out of range: %f", s.RSI14)
			assert.True(t, s.Pos >= 0 && s.Pos <= 1, "pos out of range: %f", s.Pos)
			assert.True(t, s.Vol20 >= 0, "volatility negative: %f", s.Vol20)
		})
	}
}

func TestExtract_FlatSeries(t *testing.T) {

	flat := make([]model.Candle, 100)
	for i := range flat {
		flat[i] = model.Candle{TS: int64(i + 1), Open: 100, High: 100, Low: 100, Close: 100, Volume: 50}
	}

	s := Extract(flat, 50)

	assert.Equal(t, 100.0, s.LastClose)
	assert.Equal(t, 100.0, s.SMA10)
	assert.Equal(t, 100.0, s.SMA20)
	assert.InDelta(t, 100.0, s.EMA10, 1e-9)
	assert.InDelta(t, 100.0, s.EMA20, 1e-9)
	assert.Equal(t, 50.0, s.RSI14)
	assert.Equal(t, 0.0, s.Vol20)
	assert.Equal(t, 0.5, s.Pos)
	assert.Equal(t, 1.0, s.VolRatio)
	assert.Equal(t, 0.0, s.Mom1)
	assert.Equal(t, 0.0, s.Mom5)
}

func TestExtract_Rising(t *testing.T) {

	s := Extract(rising(100), 50)

	// consistently rising closes sit at the top of the range and show full strength
	assert.Equal(t, 100.0, s.RSI14)
	assert.True(t, s.Mom1 > 0)
	assert.True(t, s.Mom5 > s.Mom1)
	assert.True(t, s.Pos > 0.9)
	assert.True(t, s.LastClose > s.SMA10)
	assert.True(t, s.SMA10 > s.SMA20)
}

func TestExtract_Momentum(t *testing.T) {

	cc := candles(100, 100, 100, 100, 100, 100, 110)
	s := Extract(cc, 7)

	assert.InDelta(t, 0.10, s.Mom1, 1e-9)
	assert.InDelta(t, 0.10, s.Mom5, 1e-9)
}

func TestExtract_ZeroVolume(t *testing.T) {

	cc := rising(30)
	for i := range cc {
		cc[i].Volume = 0
	}
	s := Extract(cc, 20)
	assert.Equal(t, 1.0, s.VolRatio)
}

func TestExtract_ShortHistoryNeutralRSI(t *testing.T) {

	// a single candle cannot produce a delta, rsi stays neutral
	s := Extract(candles(100), 50)
	assert.Equal(t, 50.0, s.RSI14)
	assert.Equal(t, 0.0, s.Vol20)
	assert.Equal(t, 0.0, s.Mom1)
	assert.False(t, math.IsNaN(s.Pos))
}
