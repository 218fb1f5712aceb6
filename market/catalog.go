// Package market generates the simulated market data behind the trading
// dashboard: a fixed asset catalog, random-walk price series and candles,
// and randomized order execution. Everything here is client-side fiction;
// the only requirement is a plausible numeric series.
package market

// AssetClass groups catalog entries by instrument type.
type AssetClass string

const (
	ClassStock  AssetClass = "stock"
	ClassCrypto AssetClass = "crypto"
	ClassFuture AssetClass = "future"
	ClassOption AssetClass = "option"
)

// Asset is a tradable instrument with its seed price.
type Asset struct {
	Symbol string
	Name   string
	Class  AssetClass
	Price  float64
}

var catalog = []Asset{
	{Symbol: "AAPL", Name: "Apple Inc.", Class: ClassStock, Price: 172.45},
	{Symbol: "MSFT", Name: "Microsoft Corp.", Class: ClassStock, Price: 425.22},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Class: ClassStock, Price: 152.50},
	{Symbol: "BTC", Name: "Bitcoin", Class: ClassCrypto, Price: 62737.20},
	{Symbol: "ETH", Name: "Ethereum", Class: ClassCrypto, Price: 3284.15},
	{Symbol: "SOL", Name: "Solana", Class: ClassCrypto, Price: 128.45},
	{Symbol: "ES", Name: "E-mini S&P 500", Class: ClassFuture, Price: 4825.50},
	{Symbol: "NQ", Name: "E-mini NASDAQ", Class: ClassFuture, Price: 17235.25},
	{Symbol: "CL", Name: "Crude Oil", Class: ClassFuture, Price: 82.45},
	{Symbol: "AAPL240621C180", Name: "AAPL $180 Call Jun-21", Class: ClassOption, Price: 5.45},
	{Symbol: "SPY240621P470", Name: "SPY $470 Put Jun-21", Class: ClassOption, Price: 3.25},
	{Symbol: "TSLA240621C300", Name: "TSLA $300 Call Jun-21", Class: ClassOption, Price: 8.75},
}

// Catalog returns the tradable assets with their seed prices.
func Catalog() []Asset {
	out := make([]Asset, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds an asset by symbol.
func Lookup(symbol string) (Asset, bool) {
	for _, a := range catalog {
		if a.Symbol == symbol {
			return a, true
		}
	}
	return Asset{}, false
}
