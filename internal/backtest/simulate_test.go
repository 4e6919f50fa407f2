package backtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_SingleWinningTrade(t *testing.T) {

	probs := []float64{0.9, 0.0}
	closes := []float64{100, 110}

	report := Run(probs, closes, 1, Settings{
		Threshold: 0.5,
		Risk:      10,
		Mode:      FixedRisk,
		Leverage:  1,
		Balance:   1000,
	})

	assert.Equal(t, 1, report.Trades)
	assert.Equal(t, 1.0, report.WinRate)
	assert.InDelta(t, 1.0, report.TotalPnL, 1e-9)
	assert.InDelta(t, 1001.0, report.FinalEquity, 1e-9)
	assert.InDelta(t, 0.1, report.ReturnPct, 1e-9)
	assert.Equal(t, report.Best, report.Worst)
	assert.Equal(t, 0.0, report.Sharpe)
}

func TestRun_DrawdownStop(t *testing.T) {

	// ten eligible signals on a steady 2% decline, 1000 staked per trade:
	// each trade loses 20, the 5% stop triggers on trade three
	probs := make([]float64, 10)
	closes := make([]float64, 11)
	price := 100.0
	for i := range closes {
		closes[i] = price
		price *= 0.98
	}
	for i := range probs {
		probs[i] = 0.9
	}

	report := Run(probs, closes, 1, Settings{
		Threshold: 0.5,
		Risk:      1000,
		Mode:      FixedRisk,
		Leverage:  1,
		Balance:   1000,
		DDStopPct: 5,
	})

	assert.Equal(t, 3, report.Trades)
	assert.InDelta(t, 940.0, report.FinalEquity, 1e-9)
	assert.InDelta(t, 60.0, report.MaxDrawdown, 1e-9)
	assert.InDelta(t, 6.0, report.MaxDrawdownPct, 1e-9)
	assert.Equal(t, 0.0, report.WinRate)
}

func TestRun_Idempotent(t *testing.T) {

	probs := []float64{0.9, 0.2, 0.7, 0.9, 0.1, 0.8, 0.6}
	closes := []float64{100, 103, 99, 105, 101, 98, 104, 102}
	s := Settings{
		Threshold:   0.6,
		Risk:        5,
		Mode:        EquityPctRisk,
		Leverage:    3,
		Balance:     500,
		FeeBps:      6,
		SlippageBps: 2,
	}

	a := Run(probs, closes, 1, s)
	b := Run(probs, closes, 1, s)

	assert.Equal(t, a, b)
}

func TestRun_TruncatesAtHorizon(t *testing.T) {

	// five signals but only two forward windows fit inside the prices
	probs := []float64{0.9, 0.9, 0.9, 0.9, 0.9}
	closes := []float64{100, 101, 102}

	report := Run(probs, closes, 1, Settings{Threshold: 0.5, Risk: 10, Leverage: 1, Balance: 100})
	assert.Equal(t, 2, report.Trades)
}

func TestRun_NoTrades(t *testing.T) {

	probs := []float64{0.1, 0.2, 0.3}
	closes := []float64{100, 101, 102, 103}

	report := Run(probs, closes, 1, Settings{Threshold: 0.9, Risk: 10, Leverage: 1, Balance: 100})

	assert.Equal(t, 0, report.Trades)
	assert.Equal(t, 0.0, report.WinRate)
	assert.Equal(t, 0.0, report.TotalPnL)
	assert.Equal(t, 100.0, report.FinalEquity)
	assert.Equal(t, 0.0, report.Sharpe)
}

func TestRun_MaxTradesCap(t *testing.T) {

	probs := make([]float64, 20)
	closes := make([]float64, 21)
	for i := range probs {
		probs[i] = 0.9
	}
	for i := range closes {
		closes[i] = 100 + float64(i)
	}

	report := Run(probs, closes, 1, Settings{Threshold: 0.5, Risk: 10, Leverage: 1, Balance: 100, MaxTrades: 4})
	assert.Equal(t, 4, report.Trades)
}

func TestRun_EquityPctCompounds(t *testing.T) {

	// two 10% winners at 10% of equity: the second stake grows with equity
	probs := []float64{0.9, 0.9, 0.0}
	closes := []float64{100, 110, 121}

	report := Run(probs, closes, 1, Settings{
		Threshold: 0.5,
		Risk:      10,
		Mode:      EquityPctRisk,
		Leverage:  1,
		Balance:   1000,
	})

	assert.Equal(t, 2, report.Trades)
	assert.InDelta(t, 1020.1, report.FinalEquity, 1e-9)
	assert.InDelta(t, 10.0, report.Log[0].PnL, 1e-9)
	assert.InDelta(t, 10.1, report.Log[1].PnL, 1e-9)
}

func TestRun_FeesAndSlippage(t *testing.T) {

	probs := []float64{0.9, 0.0}
	closes := []float64{100, 110}

	report := Run(probs, closes, 1, Settings{
		Threshold:   0.5,
		Risk:        100,
		Mode:        FixedRisk,
		Leverage:    2,
		Balance:     1000,
		FeeBps:      10,
		SlippageBps: 100,
	})

	// slippage: entry 101, exit 108.9; fees: 200 * 0.001 * 2
	entry := 100 * 1.01
	exit := 110 * 0.99
	expected := 200*(exit/entry-1) - 0.4

	assert.Equal(t, 1, report.Trades)
	assert.InDelta(t, entry, report.Log[0].Entry, 1e-9)
	assert.InDelta(t, exit, report.Log[0].Exit, 1e-9)
	assert.InDelta(t, expected, report.TotalPnL, 1e-9)
}

func TestRun_SharpeDegenerateCases(t *testing.T) {

	// the same entry and exit prices repeat, so every trade pnl is exactly
	// 10.0 and the population deviation is exactly zero
	probs := []float64{0.9, 0.0, 0.9, 0.0, 0.9, 0.0}
	closes := []float64{100, 200, 100, 200, 100, 200}

	report := Run(probs, closes, 1, Settings{Threshold: 0.5, Risk: 10, Leverage: 1, Balance: 100})
	assert.Equal(t, 3, report.Trades)
	for _, trade := range report.Log {
		assert.Equal(t, 10.0, trade.PnL)
	}
	assert.Equal(t, 0.0, report.Sharpe)

	// a single trade is below the minimum count
	report = Run([]float64{0.9, 0.0}, []float64{100, 105}, 1, Settings{Threshold: 0.5, Risk: 10, Leverage: 1, Balance: 100})
	assert.Equal(t, 1, report.Trades)
	assert.Equal(t, 0.0, report.Sharpe)

	assert.Equal(t, 0.0, sharpe([]float64{5, 5, 5}))
	assert.Equal(t, 0.0, sharpe([]float64{5}))
	assert.Equal(t, 0.0, sharpe(nil))
}

func TestRun_BestAndWorst(t *testing.T) {

	probs := []float64{0.9, 0.9, 0.9, 0.0}
	closes := []float64{100, 110, 99, 104}

	report := Run(probs, closes, 1, Settings{Threshold: 0.5, Risk: 100, Leverage: 1, Balance: 1000})

	// returns: +10%, -10%, +5.05%
	assert.Equal(t, 3, report.Trades)
	assert.InDelta(t, 10.0, report.Best, 1e-9)
	assert.InDelta(t, -10.0, report.Worst, 1e-9)
	assert.InDelta(t, 2.0/3.0, report.WinRate, 1e-9)
}
