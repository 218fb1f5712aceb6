package market

import (
	"math"
	"math/rand"
	"time"
)

const defaultVolatility = 0.02

// Point is one sample of a price series.
type Point struct {
	Time  time.Time
	Value float64
}

// Candle is one OHLC sample of a price series.
type Candle struct {
	Time  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// Feed produces synthetic price movements as a bounded random walk:
// each step multiplies the price by 1 + (rand-0.5)*volatility.
type Feed struct {
	rnd        *rand.Rand
	volatility float64
	nowTime    func() time.Time
}

// FeedOption defines a function type to modify the Feed instance.
type FeedOption func(*Feed)

// WithSeed makes the feed deterministic (for tests).
func WithSeed(seed int64) FeedOption {
	return func(f *Feed) {
		f.rnd = rand.New(rand.NewSource(seed))
	}
}

// WithVolatility overrides the per-step volatility.
func WithVolatility(volatility float64) FeedOption {
	return func(f *Feed) {
		f.volatility = volatility
	}
}

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) FeedOption {
	return func(f *Feed) {
		f.nowTime = nowFunc
	}
}

// NewFeed creates a synthetic price feed.
func NewFeed(options ...FeedOption) *Feed {
	feed := &Feed{
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
		volatility: defaultVolatility,
		nowTime:    time.Now,
	}
	for _, opt := range options {
		opt(feed)
	}
	return feed
}

// Next advances a price by one random-walk step.
func (f *Feed) Next(price float64) float64 {
	return price * (1 + (f.rnd.Float64()-0.5)*f.volatility)
}

// Series generates points leading up to now, one per step, starting from the
// given price.
func (f *Feed) Series(start float64, points int, step time.Duration) []Point {
	now := f.nowTime()
	out := make([]Point, 0, points)
	value := start
	for i := 0; i < points; i++ {
		value = f.Next(value)
		out = append(out, Point{
			Time:  now.Add(-time.Duration(points-i) * step),
			Value: value,
		})
	}
	return out
}

// Candles generates OHLC samples leading up to now. High and low always
// bracket open and close.
func (f *Feed) Candles(start float64, count int, step time.Duration) []Candle {
	now := f.nowTime()
	out := make([]Candle, 0, count)
	value := start
	for i := 0; i < count; i++ {
		open := value * (1 + (f.rnd.Float64()-0.5)*f.volatility)
		close := value * (1 + (f.rnd.Float64()-0.5)*f.volatility)
		high := math.Max(open, close) * (1 + f.rnd.Float64()*f.volatility)
		low := math.Min(open, close) * (1 - f.rnd.Float64()*f.volatility)
		out = append(out, Candle{
			Time:  now.Add(-time.Duration(count-i) * step),
			Open:  open,
			High:  high,
			Low:   low,
			Close: close,
		})
		value = close
	}
	return out
}
