package model

// Candle is one OHLCV sample for a fixed time interval.
type Candle struct {
	TS     int64   `json:"ts"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// Closes extracts the close prices of the given candles in series order.
func Closes(candles []Candle) []float64 {
	cc := make([]float64, len(candles))
	for i, c := range candles {
		cc[i] = c.Close
	}
	return cc
}

// Ascending checks that the candle timestamps are strictly increasing.
// Gaps are tolerated, out of order samples are not.
func Ascending(candles []Candle) bool {
	for i := 1; i < len(candles); i++ {
		if candles[i].TS <= candles[i-1].TS {
			return false
		}
	}
	return true
}
