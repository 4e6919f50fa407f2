package local

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/sardelis/coin-ml/client"
	"github.com/sardelis/coin-ml/internal/model"
	"github.com/sardelis/coin-ml/internal/storage"
)

// Source replays candle history stored in a registry,
// letting the pipeline run offline on previously fetched data.
type Source struct {
	registry storage.Registry
}

// NewSource creates a source reading from the given registry.
func NewSource(registry storage.Registry) *Source {
	return &Source{registry: registry}
}

// Candles returns the last limit stored candles for the coin and interval.
func (s *Source) Candles(ctx context.Context, coin model.Coin, interval string, limit int) ([]model.Candle, error) {
	candles := make([]model.Candle, 0)
	if err := s.registry.Get(key(coin, interval), &candles); err != nil {
		return nil, fmt.Errorf("could not load candles for %s %s: %w", coin, interval, err)
	}
	if limit > 0 && len(candles) > limit {
		candles = candles[len(candles)-limit:]
	}
	if !model.Ascending(candles) {
		return nil, fmt.Errorf("stored candles for %s are not in time order", coin)
	}
	return candles, nil
}

// Cache intercepts another source and stores every fetched series,
// so later runs can replay it through Source.
type Cache struct {
	source   client.Source
	registry storage.Registry
}

// NewCache decorates the given source with write-through candle storage.
func NewCache(source client.Source, registry storage.Registry) *Cache {
	return &Cache{
		source:   source,
		registry: registry,
	}
}

// Candles delegates to the underlying source and stores the result.
func (c *Cache) Candles(ctx context.Context, coin model.Coin, interval string, limit int) ([]model.Candle, error) {
	candles, err := c.source.Candles(ctx, coin, interval, limit)
	if err != nil {
		return nil, err
	}
	if err := c.registry.Put(key(coin, interval), candles); err != nil {
		// storage is best effort here, the fetched series is still usable
		log.Warn().Err(err).Str("coin", string(coin)).Msg("could not store candles")
	}
	return candles, nil
}

func key(coin model.Coin, interval string) storage.K {
	return storage.K{Pair: string(coin), Label: interval}
}
