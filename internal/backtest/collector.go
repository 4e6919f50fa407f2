package backtest

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/sardelis/coin-ml/client"
	"github.com/sardelis/coin-ml/internal/model"
)

// Collect pulls the candle history for every coin through the source,
// keeping the requested coin order so dataset concatenation stays deterministic.
func Collect(ctx context.Context, source client.Source, coins []model.Coin, interval string, limit int) ([]Series, error) {
	series := make([]Series, 0, len(coins))
	for _, coin := range coins {
		candles, err := source.Candles(ctx, coin, interval, limit)
		if err != nil {
			return nil, err
		}
		log.Info().
			Str("coin", string(coin)).
			Str("interval", interval).
			Int("candles", len(candles)).
			Msg("collected candles")
		series = append(series, Series{Coin: coin, Candles: candles})
	}
	return series, nil
}
