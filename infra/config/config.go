package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/sardelis/coin-ml/internal/backtest"
	"github.com/sardelis/coin-ml/internal/model"
	"github.com/sardelis/coin-ml/internal/net"
)

const (
	path = "infra/config"
	// key names the stock pipeline config file picked up when no explicit
	// config is given.
	key = "pipeline"
)

// Config wires the whole pipeline: which coins to pull, how to build the
// dataset, which classifier to train and which policies to grid search.
type Config struct {
	Coins        []string `json:"coins"`
	Interval     string   `json:"interval"`
	Limit        int      `json:"limit"`
	Window       int      `json:"window"`
	Horizon      int      `json:"horizon"`
	ThresholdPct float64  `json:"threshold_pct"`
	ModelPath    string   `json:"model_path"`
	Offline      bool     `json:"offline"`
	Model        Model    `json:"model"`
	Backtest     Backtest `json:"backtest"`
}

// Model selects and parameterizes the classifier variant.
type Model struct {
	Type   string  `json:"type"`
	Rounds int     `json:"rounds"`
	Epochs int     `json:"epochs"`
	LR     float64 `json:"lr"`
	L2     float64 `json:"l2"`
}

// Backtest carries the grid and the execution frictions.
type Backtest struct {
	Thresholds  []float64 `json:"thresholds"`
	Risks       []float64 `json:"risks"`
	RiskMode    string    `json:"risk_mode"`
	Leverage    float64   `json:"leverage"`
	Balance     float64   `json:"balance"`
	FeeBps      float64   `json:"fee_bps"`
	SlippageBps float64   `json:"slippage_bps"`
	DDStopPct   float64   `json:"dd_stop_pct"`
	MaxTrades   int       `json:"max_trades"`
}

// Default mirrors the stock pipeline setup.
func Default() Config {
	return Config{
		Coins:        []string{"BTC", "ETH"},
		Interval:     "15m",
		Limit:        2000,
		Window:       50,
		Horizon:      12,
		ThresholdPct: 0.5,
		ModelPath:    "ai_model.json",
		Model: Model{
			Type:   string(net.AdaBoostStumps),
			Rounds: 60,
		},
		Backtest: Backtest{
			Thresholds: []float64{0.5, 0.6, 0.7, 0.8},
			Risks:      []float64{2, 4, 6, 8, 10},
			RiskMode:   "fixed",
			Leverage:   10,
			Balance:    1000,
		},
	}
}

// MustLoad loads the config for the given key
func MustLoad(key string, v interface{}) []byte {
	b, err := os.ReadFile(fmt.Sprintf("%s/%s.json", path, key))
	if err != nil {
		panic(fmt.Sprintf("could not load config for %s: %s", key, err.Error()))
	}

	err = json.Unmarshal(b, v)
	if err != nil {
		panic(fmt.Sprintf("could not unmarshal the config for %s: %s", key, err.Error()))
	}

	log.Info().Str("config", key).Msg("loaded config")
	return b
}

// Load reads the config from an explicit file on top of the defaults.
// An empty file path falls back to the stock file under infra/config when
// one is present, keeping the plain defaults otherwise.
func Load(file string) (Config, error) {
	cfg := Default()
	if file == "" {
		if _, err := os.Stat(fmt.Sprintf("%s/%s.json", path, key)); err == nil {
			MustLoad(key, &cfg)
		}
		return cfg, nil
	}

	b, err := os.ReadFile(file)
	if err != nil {
		return cfg, fmt.Errorf("could not load config from '%s': %w", file, err)
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("could not unmarshal config from '%s': %w", file, err)
	}
	return cfg, nil
}

// CoinList resolves the configured symbols against the known coins.
func (c Config) CoinList() ([]model.Coin, error) {
	coins := make([]model.Coin, 0, len(c.Coins))
	for _, symbol := range c.Coins {
		coin, ok := model.Coins[symbol]
		if !ok {
			return nil, fmt.Errorf("unknown coin: '%s', known coins: %v", symbol, model.KnownCoins())
		}
		coins = append(coins, coin)
	}
	return coins, nil
}

// Network constructs the configured classifier variant.
func (c Config) Network(features int) (net.Network, error) {
	switch net.Type(c.Model.Type) {
	case net.Logistic:
		m := net.NewLogistic(features)
		if c.Model.LR > 0 {
			m.LR = c.Model.LR
		}
		if c.Model.L2 > 0 {
			m.L2 = c.Model.L2
		}
		if c.Model.Epochs > 0 {
			m.Epochs = c.Model.Epochs
		}
		return m, nil
	case net.AdaBoostStumps:
		return net.NewAdaBoost(c.Model.Rounds), nil
	default:
		return nil, fmt.Errorf("unknown model type: '%s'", c.Model.Type)
	}
}

// Settings maps the backtest section to simulation settings,
// leaving threshold and risk to the grid.
func (c Config) Settings() backtest.Settings {
	mode := backtest.FixedRisk
	if c.Backtest.RiskMode == "equity-pct" {
		mode = backtest.EquityPctRisk
	}
	return backtest.Settings{
		Mode:        mode,
		Leverage:    c.Backtest.Leverage,
		Balance:     c.Backtest.Balance,
		FeeBps:      c.Backtest.FeeBps,
		SlippageBps: c.Backtest.SlippageBps,
		DDStopPct:   c.Backtest.DDStopPct,
		MaxTrades:   c.Backtest.MaxTrades,
	}
}
