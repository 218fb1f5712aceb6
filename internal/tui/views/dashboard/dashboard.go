// Package dashboard renders the simulated trading screen: the asset board,
// a sparkline for the selected instrument, and the order blotter.
package dashboard

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tradesage/tradesage-client/internal/tui/theme"
	"github.com/tradesage/tradesage-client/market"
)

const (
	tickInterval   = 2 * time.Second
	historyLen     = 40
	maxOrdersShown = 6
)

// TickMsg drives the simulated price feed.
type TickMsg time.Time

// Tick schedules the next price update.
func Tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the trading dashboard.
type Model struct {
	feed    *market.Feed
	sim     *market.Simulator
	assets  []market.Asset
	prices  map[string]float64
	opens   map[string]float64
	history map[string][]float64

	selected int
	orders   []market.Order
	errText  string

	Width  int
	Height int
}

// New creates the dashboard with seeded prices from the catalog.
func New(feed *market.Feed) Model {
	assets := market.Catalog()
	prices := make(map[string]float64, len(assets))
	opens := make(map[string]float64, len(assets))
	history := make(map[string][]float64, len(assets))
	for _, a := range assets {
		prices[a.Symbol] = a.Price
		opens[a.Symbol] = a.Price
		history[a.Symbol] = []float64{a.Price}
	}
	return Model{
		feed:    feed,
		sim:     market.NewSimulator(feed),
		assets:  assets,
		prices:  prices,
		opens:   opens,
		history: history,
	}
}

func (m Model) Init() tea.Cmd {
	return Tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		for symbol, price := range m.prices {
			next := m.feed.Next(price)
			m.prices[symbol] = next
			series := append(m.history[symbol], next)
			if len(series) > historyLen {
				series = series[len(series)-historyLen:]
			}
			m.history[symbol] = series
		}
		return m, Tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "down", "j":
			m.selected = (m.selected + 1) % len(m.assets)
			return m, nil
		case "up", "k":
			m.selected = (m.selected - 1 + len(m.assets)) % len(m.assets)
			return m, nil
		case "b":
			return m.placeOrder(market.SideBuy), nil
		case "s":
			return m.placeOrder(market.SideSell), nil
		}
	}
	return m, nil
}

func (m Model) placeOrder(side market.Side) Model {
	asset := m.assets[m.selected]
	order, err := m.sim.Place(asset.Symbol, side, 1)
	if err != nil {
		m.errText = err.Error()
		return m
	}
	order.Price = m.prices[asset.Symbol]
	order = m.sim.Execute(order)
	m.orders = append(m.orders, order)
	if len(m.orders) > maxOrdersShown {
		m.orders = m.orders[len(m.orders)-maxOrdersShown:]
	}
	m.errText = ""
	return m
}

func (m Model) View() string {
	sections := []string{
		m.renderBoard(),
		m.renderChart(),
		m.renderOrders(),
		theme.StyleDimmed.Render("  j/k:select  b:buy  s:sell  m:marketing  l:logout  q:quit"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderBoard() string {
	lines := []string{theme.StyleHeader.Render("=== MARKETS ===========================================")}
	for i, a := range m.assets {
		prefix := "  "
		if i == m.selected {
			prefix = "> "
		}
		price := m.prices[a.Symbol]
		change := 0.0
		if open := m.opens[a.Symbol]; open != 0 {
			change = (price - open) / open * 100
		}
		changeStyle := lipgloss.NewStyle().Foreground(theme.ColorUp)
		if change < 0 {
			changeStyle = lipgloss.NewStyle().Foreground(theme.ColorDown)
		}
		symbol := lipgloss.NewStyle().Foreground(theme.ClassColor(string(a.Class))).Render(fmt.Sprintf("%-16s", a.Symbol))
		line := fmt.Sprintf("%s%s %12.2f  %s", prefix, symbol, price, changeStyle.Render(fmt.Sprintf("%+.2f%%", change)))
		if i == m.selected {
			line = theme.StyleSelected.Render(line)
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderChart() string {
	asset := m.assets[m.selected]
	series := m.history[asset.Symbol]
	title := theme.StyleDimmed.Render(fmt.Sprintf("--- %s %s ", asset.Symbol, asset.Name))
	return lipgloss.JoinVertical(lipgloss.Left, title, "  "+sparkline(series, historyLen))
}

func (m Model) renderOrders() string {
	lines := []string{theme.StyleDimmed.Render("--- ORDERS ----")}
	if len(m.orders) == 0 {
		lines = append(lines, theme.StyleDimmed.Render("  No orders yet"))
	}
	for _, o := range m.orders {
		status := theme.StyleSuccess.Render(string(o.Status))
		if o.Status == market.OrderRejected {
			status = theme.StyleError.Render(string(o.Status))
		}
		lines = append(lines, fmt.Sprintf("  %s %-5s %-16s %10.2f  %s",
			o.PlacedAt.Format("15:04:05"), o.Side, o.Symbol, o.Total(), status))
	}
	if m.errText != "" {
		lines = append(lines, theme.StyleError.Render("  "+m.errText))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// sparkline scales the series into block characters, most recent last.
func sparkline(series []float64, width int) string {
	if len(series) == 0 {
		return ""
	}
	if len(series) > width {
		series = series[len(series)-width:]
	}
	min, max := series[0], series[0]
	for _, v := range series {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	out := make([]rune, len(series))
	for i, v := range series {
		idx := 0
		if max > min {
			idx = int((v - min) / (max - min) * float64(len(sparkRunes)-1))
		}
		out[i] = sparkRunes[idx]
	}
	return string(out)
}
