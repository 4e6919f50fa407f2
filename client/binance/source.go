package binance

import (
	"context"
	"fmt"
	"strconv"

	"github.com/adshao/go-binance/v2"

	coinmodel "github.com/sardelis/coin-ml/internal/model"
)

// quote is the quote asset the coin symbols are paired with.
const quote = "USDT"

// Source fetches candle history from the public binance market data api.
type Source struct {
	api *binance.Client
}

// New creates a new binance candle source.
// Public market data needs no credentials.
func New() *Source {
	return &Source{api: binance.NewClient("", "")}
}

// Candles returns up to limit candles for the coin at the given interval,
// ascending by open time.
func (s *Source) Candles(ctx context.Context, coin coinmodel.Coin, interval string, limit int) ([]coinmodel.Candle, error) {
	kk, err := s.api.NewKlinesService().
		Symbol(fmt.Sprintf("%s%s", coin, quote)).
		Interval(interval).
		Limit(limit).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get klines for %s: %w", coin, err)
	}

	candles := make([]coinmodel.Candle, 0, len(kk))
	for _, k := range kk {
		c, err := parse(k)
		if err != nil {
			return nil, fmt.Errorf("could not parse kline for %s: %w", coin, err)
		}
		candles = append(candles, c)
	}

	if !coinmodel.Ascending(candles) {
		return nil, fmt.Errorf("klines for %s are not in time order", coin)
	}
	return candles, nil
}

func parse(k *binance.Kline) (coinmodel.Candle, error) {
	c := coinmodel.Candle{TS: k.OpenTime}
	var err error
	if c.Open, err = strconv.ParseFloat(k.Open, 64); err != nil {
		return c, fmt.Errorf("open: %w", err)
	}
	if c.High, err = strconv.ParseFloat(k.High, 64); err != nil {
		return c, fmt.Errorf("high: %w", err)
	}
	if c.Low, err = strconv.ParseFloat(k.Low, 64); err != nil {
		return c, fmt.Errorf("low: %w", err)
	}
	if c.Close, err = strconv.ParseFloat(k.Close, 64); err != nil {
		return c, fmt.Errorf("close: %w", err)
	}
	if c.Volume, err = strconv.ParseFloat(k.Volume, 64); err != nil {
		return c, fmt.Errorf("volume: %w", err)
	}
	return c, nil
}
