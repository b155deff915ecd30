package gateway

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kdarko/sikaflow/internal/pkg/httpclient"
)

// MarketSourceGW fetches market rates from the external exchange-rate API.
// The endpoint shape is GET <base-url>/<BASE> returning {"rates": {"CAD": 0.104, ...}}.
type MarketSourceGW struct {
	client *httpclient.Client
}

// NewMarketSourceGW creates a market-rate gateway
func NewMarketSourceGW(client *httpclient.Client) *MarketSourceGW {
	return &MarketSourceGW{client: client}
}

type marketResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// FetchRates returns the market rates for a base currency.
func (g *MarketSourceGW) FetchRates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	var resp marketResponse
	if err := g.client.GetJSON(ctx, "/"+base, &resp); err != nil {
		return nil, fmt.Errorf("market rate fetch failed: %w", err)
	}

	if len(resp.Rates) == 0 {
		return nil, fmt.Errorf("market rate response for %s contained no rates", base)
	}

	rates := make(map[string]decimal.Decimal, len(resp.Rates))
	for currency, value := range resp.Rates {
		rates[currency] = decimal.NewFromFloat(value)
	}

	return rates, nil
}
