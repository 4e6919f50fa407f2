package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownCoins(t *testing.T) {

	known := KnownCoins()

	assert.Equal(t, []string{"BTC", "ETH", "SOL", "XRP"}, known)
	for _, symbol := range known {
		assert.Equal(t, Coin(symbol), Coins[symbol])
	}
}
