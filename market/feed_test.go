package market_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tradesage/tradesage-client/market"
)

func TestCatalog(t *testing.T) {
	assets := market.Catalog()
	require.NotEmpty(t, assets)

	classes := map[market.AssetClass]bool{}
	for _, a := range assets {
		require.NotEmpty(t, a.Symbol)
		require.Greater(t, a.Price, 0.0)
		classes[a.Class] = true
	}
	require.True(t, classes[market.ClassStock])
	require.True(t, classes[market.ClassCrypto])
	require.True(t, classes[market.ClassFuture])
	require.True(t, classes[market.ClassOption])
}

func TestLookup(t *testing.T) {
	asset, ok := market.Lookup("BTC")
	require.True(t, ok)
	require.Equal(t, "Bitcoin", asset.Name)

	_, ok = market.Lookup("NOPE")
	require.False(t, ok)
}

func TestSeriesIsPlausible(t *testing.T) {
	feed := market.NewFeed(market.WithSeed(42), market.WithVolatility(0.02))

	series := feed.Series(100.0, 50, time.Minute)
	require.Len(t, series, 50)

	for i, p := range series {
		require.Greater(t, p.Value, 0.0)
		// Each step moves at most volatility/2 in either direction.
		if i > 0 {
			require.InEpsilon(t, series[i-1].Value, p.Value, 0.011)
			require.True(t, p.Time.After(series[i-1].Time))
		}
	}
}

func TestSeriesDeterministicWithSeed(t *testing.T) {
	now := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)
	nowFunc := func() time.Time { return now }

	a := market.NewFeed(market.WithSeed(7), market.WithNowTime(nowFunc)).Series(50, 10, time.Second)
	b := market.NewFeed(market.WithSeed(7), market.WithNowTime(nowFunc)).Series(50, 10, time.Second)
	require.Equal(t, a, b)
}

func TestCandlesBracketed(t *testing.T) {
	feed := market.NewFeed(market.WithSeed(42))

	candles := feed.Candles(4825.50, 30, time.Hour)
	require.Len(t, candles, 30)

	for _, c := range candles {
		require.GreaterOrEqual(t, c.High, c.Open)
		require.GreaterOrEqual(t, c.High, c.Close)
		require.LessOrEqual(t, c.Low, c.Open)
		require.LessOrEqual(t, c.Low, c.Close)
	}
}

func TestPlaceAndExecute(t *testing.T) {
	feed := market.NewFeed(market.WithSeed(1))
	sim := market.NewSimulator(feed)

	order, err := sim.Place("AAPL", market.SideBuy, 10)
	require.NoError(t, err)
	require.Equal(t, market.OrderPending, order.Status)
	require.NotEmpty(t, order.ID)
	require.InDelta(t, 1724.5, order.Total(), 0.001)

	executed := sim.Execute(order)
	require.Contains(t, []market.OrderStatus{market.OrderFilled, market.OrderRejected}, executed.Status)

	// Executing a settled order is a no-op.
	require.Equal(t, executed, sim.Execute(executed))
}

func TestPlaceRejectsBadInput(t *testing.T) {
	sim := market.NewSimulator(market.NewFeed(market.WithSeed(1)))

	_, err := sim.Place("NOPE", market.SideBuy, 1)
	require.Error(t, err)

	_, err = sim.Place("AAPL", market.SideSell, 0)
	require.Error(t, err)
}

func TestFillRateRoughlyEighty(t *testing.T) {
	feed := market.NewFeed(market.WithSeed(99))
	sim := market.NewSimulator(feed)

	filled := 0
	for i := 0; i < 1000; i++ {
		order, err := sim.Place("ETH", market.SideBuy, 1)
		require.NoError(t, err)
		if sim.Execute(order).Status == market.OrderFilled {
			filled++
		}
	}
	require.InDelta(t, 800, filled, 60)
}
