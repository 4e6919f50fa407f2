package main

import (
	"context"
	"flag"
	"path"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sardelis/coin-ml/client"
	"github.com/sardelis/coin-ml/client/binance"
	"github.com/sardelis/coin-ml/client/local"
	"github.com/sardelis/coin-ml/infra/config"
	"github.com/sardelis/coin-ml/internal/backtest"
	"github.com/sardelis/coin-ml/internal/feature"
	"github.com/sardelis/coin-ml/internal/metrics"
	"github.com/sardelis/coin-ml/internal/net"
	"github.com/sardelis/coin-ml/internal/storage"
	jsonstore "github.com/sardelis/coin-ml/internal/storage/file/json"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {

	cfgFile := flag.String("config", "", "pipeline config file")
	offline := flag.Bool("offline", false, "replay stored candles instead of fetching")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}

	series, err := collect(cfg, cfg.Offline || *offline)
	if err != nil {
		log.Fatal().Err(err).Msg("could not collect candles")
	}

	ds := backtest.Combine(series, cfg.Window, cfg.Horizon, cfg.ThresholdPct)
	if ds.Len() == 0 {
		log.Fatal().Msg("no training data constructed, increase the candle limit or check the candle source")
	}

	network, err := cfg.Network(feature.Size())
	if err != nil {
		log.Fatal().Err(err).Msg("could not build network")
	}

	network.Fit(ds.Vectors, ds.Labels)
	metrics.Observer.IncrementModels(string(network.Type()))

	if err := net.Save(cfg.ModelPath, network); err != nil {
		log.Fatal().Err(err).Msg("could not save model")
	}

	log.Info().
		Str("type", string(network.Type())).
		Int("examples", ds.Len()).
		Str("path", cfg.ModelPath).
		Msg("model trained")
}

// collect fetches the candle history for every configured coin, in config order.
func collect(cfg config.Config, offline bool) ([]backtest.Series, error) {

	coins, err := cfg.CoinList()
	if err != nil {
		return nil, err
	}

	registry := jsonstore.NewRegistry(path.Join(storage.DefaultDir, storage.HistoryDir))
	var source client.Source
	if offline {
		source = local.NewSource(registry)
	} else {
		source = local.NewCache(binance.New(), registry)
	}

	limit := cfg.Limit
	if floor := cfg.Window + cfg.Horizon + 200; limit < floor {
		limit = floor
	}

	return backtest.Collect(context.Background(), source, coins, cfg.Interval, limit)
}
