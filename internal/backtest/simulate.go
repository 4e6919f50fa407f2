package backtest

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// RiskMode selects how the per-trade risk amount is derived.
type RiskMode byte

const (
	// FixedRisk stakes a fixed currency amount per trade.
	FixedRisk RiskMode = iota
	// EquityPctRisk stakes a percentage of the running equity.
	// The amount is recomputed from current equity on every trade,
	// so sizing compounds with the equity curve.
	EquityPctRisk
)

func (m RiskMode) String() string {
	if m == EquityPctRisk {
		return "equity-pct"
	}
	return "fixed"
}

// Settings carries the decision rule and execution frictions of one simulation.
type Settings struct {
	Threshold   float64  `json:"threshold"`
	Risk        float64  `json:"risk"`
	Mode        RiskMode `json:"mode"`
	Leverage    float64  `json:"leverage"`
	Balance     float64  `json:"balance"`
	FeeBps      float64  `json:"fee_bps"`
	SlippageBps float64  `json:"slippage_bps"`
	DDStopPct   float64  `json:"dd_stop_pct"`
	MaxTrades   int      `json:"max_trades"`
}

// Trade is one simulated fill with slippage applied on both sides.
type Trade struct {
	Index    int     `json:"index"`
	Entry    float64 `json:"entry"`
	Exit     float64 `json:"exit"`
	PnL      float64 `json:"pnl"`
	Equity   float64 `json:"equity"`
	Drawdown float64 `json:"drawdown"`
}

// Report holds the metrics of one completed simulation run.
type Report struct {
	Trades         int     `json:"trades"`
	WinRate        float64 `json:"win_rate"`
	TotalPnL       float64 `json:"total_pnl"`
	FinalEquity    float64 `json:"final_equity"`
	ReturnPct      float64 `json:"return_pct"`
	MaxDrawdown    float64 `json:"max_drawdown"`
	MaxDrawdownPct float64 `json:"max_drawdown_pct"`
	Best           float64 `json:"best"`
	Worst          float64 `json:"worst"`
	Sharpe         float64 `json:"sharpe_like"`
	Log            []Trade `json:"-"`
}

// Run replays the classifier probabilities against the aligned close prices.
// An index trades when its probability clears the threshold and the horizon
// still fits inside the price series. The run truncates, never fails, when
// the horizon outruns the prices, the trade cap is hit, or the drawdown stop
// is breached.
func Run(probs, closes []float64, horizon int, s Settings) Report {

	equity := s.Balance
	peak := equity
	wins := 0
	maxDD := 0.0
	maxDDPct := 0.0
	trades := make([]Trade, 0)

	slip := s.SlippageBps / 10000.0
	feeRate := s.FeeBps / 10000.0

	for i, p := range probs {
		if s.MaxTrades > 0 && len(trades) >= s.MaxTrades {
			break
		}
		if p < s.Threshold {
			continue
		}
		if i+horizon >= len(closes) {
			break
		}

		// buy side friction raises the entry, sell side friction lowers the exit
		entry := closes[i] * (1 + slip)
		exit := closes[i+horizon] * (1 - slip)
		ret := exit/entry - 1.0

		risk := s.Risk
		if s.Mode == EquityPctRisk {
			risk = equity * s.Risk / 100.0
		}
		stake := risk * s.Leverage
		fees := stake * feeRate * 2

		pnl := stake*ret - fees
		equity += pnl
		if pnl > 0 {
			wins++
		}
		if equity > peak {
			peak = equity
		}

		dd := peak - equity
		ddPct := 0.0
		if peak != 0 {
			ddPct = dd / peak * 100.0
		}
		if dd > maxDD {
			maxDD = dd
		}
		if ddPct > maxDDPct {
			maxDDPct = ddPct
		}

		trades = append(trades, Trade{
			Index:    i,
			Entry:    entry,
			Exit:     exit,
			PnL:      pnl,
			Equity:   equity,
			Drawdown: dd,
		})

		if s.DDStopPct > 0 && ddPct >= s.DDStopPct {
			break
		}
	}

	report := Report{
		Trades:         len(trades),
		FinalEquity:    equity,
		TotalPnL:       equity - s.Balance,
		MaxDrawdown:    maxDD,
		MaxDrawdownPct: maxDDPct,
		Log:            trades,
	}

	if len(trades) == 0 {
		return report
	}

	report.WinRate = float64(wins) / float64(len(trades))
	if s.Balance != 0 {
		report.ReturnPct = report.TotalPnL / s.Balance * 100.0
	}

	pnls := make([]float64, len(trades))
	report.Best = trades[0].PnL
	report.Worst = trades[0].PnL
	for i, t := range trades {
		pnls[i] = t.PnL
		if t.PnL > report.Best {
			report.Best = t.PnL
		}
		if t.PnL < report.Worst {
			report.Worst = t.PnL
		}
	}
	report.Sharpe = sharpe(pnls)

	return report
}

// sharpe is the mean trade pnl over its population standard deviation,
// scaled by the square root of the trade count. Fewer than two trades or a
// zero deviation yield 0.
func sharpe(pnls []float64) float64 {
	if len(pnls) < 2 {
		return 0.0
	}
	std := stat.PopStdDev(pnls, nil)
	if std == 0 {
		return 0.0
	}
	return stat.Mean(pnls, nil) / std * math.Sqrt(float64(len(pnls)))
}
