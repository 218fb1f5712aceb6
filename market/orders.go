package market

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Side of an order.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// OrderStatus tracks a simulated order through its lifecycle.
type OrderStatus string

const (
	OrderPending  OrderStatus = "pending"
	OrderFilled   OrderStatus = "filled"
	OrderRejected OrderStatus = "rejected"
)

// Order is a simulated trade ticket.
type Order struct {
	ID       string
	Symbol   string
	Side     Side
	Quantity float64
	Price    float64
	Status   OrderStatus
	PlacedAt time.Time
}

// Total is the notional value of the order.
func (o Order) Total() float64 {
	return o.Quantity * o.Price
}

const defaultFillRate = 0.8

// Simulator executes orders with a randomized outcome. Roughly fillRate of
// orders fill; the rest are rejected.
type Simulator struct {
	feed     *Feed
	fillRate float64
}

// NewSimulator creates an order simulator drawing randomness from the feed.
func NewSimulator(feed *Feed) *Simulator {
	return &Simulator{feed: feed, fillRate: defaultFillRate}
}

// Place creates a pending order for the given symbol at its current catalog
// price.
func (s *Simulator) Place(symbol string, side Side, quantity float64) (Order, error) {
	asset, ok := Lookup(symbol)
	if !ok {
		return Order{}, errors.Errorf("[Simulator.Place] unknown symbol %q", symbol)
	}
	if quantity <= 0 {
		return Order{}, errors.New("[Simulator.Place] quantity must be positive")
	}
	return Order{
		ID:       uuid.New().String(),
		Symbol:   asset.Symbol,
		Side:     side,
		Quantity: quantity,
		Price:    asset.Price,
		Status:   OrderPending,
		PlacedAt: s.feed.nowTime(),
	}, nil
}

// Execute resolves a pending order to filled or rejected.
func (s *Simulator) Execute(order Order) Order {
	if order.Status != OrderPending {
		return order
	}
	if s.feed.rnd.Float64() < s.fillRate {
		order.Status = OrderFilled
	} else {
		order.Status = OrderRejected
	}
	return order
}
