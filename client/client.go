package client

import (
	"context"

	"github.com/sardelis/coin-ml/internal/model"
)

// Source supplies candle history for a coin, ascending by timestamp.
// A deterministic, time-ordered series is the entire obligation of the
// market data layer towards the pipeline.
type Source interface {
	Candles(ctx context.Context, coin model.Coin, interval string, limit int) ([]model.Candle, error)
}
