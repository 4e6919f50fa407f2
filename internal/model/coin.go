package model

import "sort"

// Coin defines a custom coin type
type Coin string

const (
	// NoCoin is a undefined coin
	NoCoin Coin = ""
	// BTC represents bitcoin
	BTC Coin = "BTC"
	// ETH represents the ethereum token
	ETH Coin = "ETH"
	// SOL represents the solana token
	SOL Coin = "SOL"
	// XRP represents the xrp token
	XRP Coin = "XRP"
)

// Coins maps the known coin symbols to their coin type.
var Coins = map[string]Coin{
	"BTC": BTC,
	"ETH": ETH,
	"SOL": SOL,
	"XRP": XRP,
}

// KnownCoins returns the symbols of all known coins, sorted.
func KnownCoins() []string {
	cc := make([]string, 0, len(Coins))
	for c := range Coins {
		cc = append(cc, c)
	}
	sort.Strings(cc)
	return cc
}

// Key identifies a candle series for a coin at a sampling interval.
type Key struct {
	Coin     Coin   `json:"coin"`
	Interval string `json:"interval"`
}
