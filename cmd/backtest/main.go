package main

import (
	"context"
	"flag"
	"fmt"
	"path"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sardelis/coin-ml/client"
	"github.com/sardelis/coin-ml/client/binance"
	"github.com/sardelis/coin-ml/client/local"
	"github.com/sardelis/coin-ml/infra/config"
	"github.com/sardelis/coin-ml/internal/backtest"
	"github.com/sardelis/coin-ml/internal/feature"
	coinmath "github.com/sardelis/coin-ml/internal/math"
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

	coins, err := cfg.CoinList()
	if err != nil {
		log.Fatal().Err(err).Msg("could not resolve coins")
	}

	registry := jsonstore.NewRegistry(path.Join(storage.DefaultDir, storage.HistoryDir))
	var source client.Source
	if cfg.Offline || *offline {
		source = local.NewSource(registry)
	} else {
		source = local.NewCache(binance.New(), registry)
	}

	limit := cfg.Limit
	if floor := cfg.Window + cfg.Horizon + 200; limit < floor {
		limit = floor
	}

	series, err := backtest.Collect(context.Background(), source, coins, cfg.Interval, limit)
	if err != nil {
		log.Fatal().Err(err).Msg("could not collect candles")
	}

	ds := backtest.Combine(series, cfg.Window, cfg.Horizon, cfg.ThresholdPct)

	network, err := cfg.Network(feature.Size())
	if err != nil {
		log.Fatal().Err(err).Msg("could not build network")
	}

	outcome, err := backtest.Grid(ds, network, cfg.Backtest.Thresholds, cfg.Backtest.Risks, cfg.Horizon, cfg.Settings())
	if err != nil {
		log.Fatal().Err(err).Msg("grid search failed")
	}

	for _, result := range outcome.Results {
		fmt.Printf("thr=%.2f risk=%s %s : trades=%d win=%s pnl=%s dd=%s%% sharpe=%s\n",
			result.Settings.Threshold,
			coinmath.Format(result.Settings.Risk),
			result.Settings.Mode,
			result.Report.Trades,
			coinmath.Format(result.Report.WinRate),
			coinmath.Format(result.Report.TotalPnL),
			coinmath.Format(result.Report.MaxDrawdownPct),
			coinmath.Format(result.Report.Sharpe),
		)
	}
	fmt.Printf("best : thr=%.2f risk=%s sharpe=%s equity=%s\n",
		outcome.Best.Settings.Threshold,
		coinmath.Format(outcome.Best.Settings.Risk),
		coinmath.Format(outcome.Best.Report.Sharpe),
		coinmath.Format(outcome.Best.Report.FinalEquity),
	)

	results := jsonstore.NewRegistry(path.Join(storage.DefaultDir, storage.ModelsDir))
	if err := results.Put(storage.K{Pair: "grid", Label: outcome.ID}, outcome); err != nil {
		log.Warn().Err(err).Msg("could not store grid outcome")
	}
}
