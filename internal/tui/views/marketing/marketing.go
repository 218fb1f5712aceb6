// Package marketing renders the landing copy with Glamour.
package marketing

import (
	"github.com/charmbracelet/glamour"

	"github.com/tradesage/tradesage-client/internal/tui/theme"
)

const copyMarkdown = `# TradeSage

Trade smarter, not harder.

* **Multi-asset** — stocks, crypto, futures and options on one screen
* **Live dashboard** — streaming prices with instant order tickets
* **Paper trading** — a full demo mode that works even offline

> Markets are simulated. No real money changes hands.

Press **ctrl+l** to sign in or **ctrl+r** to create an account.
`

// Model is the marketing/landing view. The markdown is rendered once and
// cached; a render failure falls back to the raw copy.
type Model struct {
	rendered string

	Width int
}

// New creates the landing view.
func New() Model {
	rendered, err := glamour.Render(copyMarkdown, "dark")
	if err != nil {
		rendered = copyMarkdown
	}
	return Model{rendered: rendered}
}

func (m Model) View() string {
	return m.rendered + theme.StyleDimmed.Render("  ctrl+l:sign in  ctrl+r:register  q:quit")
}
