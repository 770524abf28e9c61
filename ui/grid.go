package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/Wthomas48/smart-deals-iq-sub002/inspect"
	"github.com/Wthomas48/smart-deals-iq-sub002/viewport"
)

// Deal is a sample listing rendered in the grid preview. The inspector ships
// fixtures instead of live listings; the layout is what is under test.
type Deal struct {
	Title    string
	Vendor   string
	Discount int
	Price    string
	Accent   lipgloss.AdaptiveColor
	Icon     string
}

var sampleDeals = []Deal{
	{Title: "Espresso machine with grinder", Vendor: "KitchenHub", Discount: 37, Price: "$189", Accent: DealHot, Icon: IconHot},
	{Title: "Noise cancelling headphones", Vendor: "AudioPort", Discount: 25, Price: "$149", Accent: DealTrending, Icon: IconTrending},
	{Title: "Robot vacuum, self-emptying", Vendor: "HomeTech", Discount: 42, Price: "$299", Accent: DealHot, Icon: IconHot},
	{Title: "4K streaming stick", Vendor: "StreamBay", Discount: 18, Price: "$29", Accent: DealFresh, Icon: IconFresh},
	{Title: "Cast iron dutch oven 7qt", Vendor: "KitchenHub", Discount: 31, Price: "$59", Accent: DealTrending, Icon: IconTrending},
	{Title: "Mechanical keyboard, hot-swap", Vendor: "KeyWorks", Discount: 22, Price: "$79", Accent: DealFresh, Icon: IconFresh},
	{Title: "Weighted blanket, queen", Vendor: "SleepCo", Discount: 45, Price: "$49", Accent: DealExpiring, Icon: IconExpiring},
	{Title: "Air fryer family size", Vendor: "HomeTech", Discount: 28, Price: "$89", Accent: DealTrending, Icon: IconTrending},
}

// DealGrid renders the deal cards in the column count the current width
// calls for, with the vendor sidebar alongside at desktop sizes. It shows
// the classification driving a real screen rather than just reporting it.
type DealGrid struct {
	info  viewport.Info
	deals []Deal

	width, height int
}

func NewDealGrid() *DealGrid {
	return &DealGrid{deals: sampleDeals}
}

// SetInfo replaces the classification record the layout derives from.
func (g *DealGrid) SetInfo(info viewport.Info) {
	g.info = info
}

func (g *DealGrid) SetSize(width, height int) {
	g.width = width
	g.height = height
}

// gridLayout is the derived geometry both String and InspectNode use.
type gridLayout struct {
	columns      int
	gap          int
	sidebarWidth int
	cardWidth    int
	contentWidth int
}

func (g *DealGrid) layout() gridLayout {
	bp := g.info.Breakpoints()

	l := gridLayout{
		columns: viewport.GridColumns(g.info.Width),
		// One cell of gutter per 8px of spacing unit.
		gap: int(viewport.SpacingUnit(bp) / 8),
	}

	gridWidth := g.width
	if viewport.ShowSidebar(bp) {
		l.sidebarWidth = g.width / 4
		if l.sidebarWidth > 24 {
			l.sidebarWidth = 24
		}
		gridWidth -= l.sidebarWidth + l.gap
	}

	l.cardWidth = (gridWidth - l.gap*(l.columns-1)) / l.columns
	// Border and padding cost four cells of content width.
	l.contentWidth = l.cardWidth - 4
	return l
}

// visibleDeals caps the preview at two rows of cards.
func (g *DealGrid) visibleDeals(columns int) []Deal {
	limit := columns * 2
	if limit > len(g.deals) {
		limit = len(g.deals)
	}
	return g.deals[:limit]
}

func (g *DealGrid) String() string {
	l := g.layout()
	if g.width <= 0 || l.contentWidth < 4 {
		return TextStyles.Muted.Render("viewport too small for the deal grid")
	}

	deals := g.visibleDeals(l.columns)
	gutter := strings.Repeat(" ", l.gap)

	var rows []string
	for start := 0; start < len(deals); start += l.columns {
		end := start + l.columns
		if end > len(deals) {
			end = len(deals)
		}

		cards := make([]string, 0, l.columns*2)
		for i, deal := range deals[start:end] {
			if i > 0 {
				cards = append(cards, gutter)
			}
			cards = append(cards, g.renderCard(deal, l.contentWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	grid := strings.Join(rows, "\n")

	if l.sidebarWidth > 0 {
		sidebar := g.renderSidebar(l.sidebarWidth)
		return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, gutter, grid)
	}
	return grid
}

func (g *DealGrid) renderCard(deal Deal, contentWidth int) string {
	title, _ := truncateTitle(deal.Title, contentWidth)

	badge := DealBadge(fmt.Sprintf("%s -%d%%", deal.Icon, deal.Discount), deal.Accent)
	body := wordwrap.String(fmt.Sprintf("%s · %s", deal.Vendor, deal.Price), contentWidth)

	content := strings.Join([]string{
		ValueStyle.Render(title),
		badge,
		TextStyles.Secondary.Render(body),
	}, "\n")

	return CardStyle().Width(contentWidth + 2).Render(content)
}

// renderSidebar lists the distinct vendors, the way the deals screen filters
// by vendor at desktop sizes.
func (g *DealGrid) renderSidebar(width int) string {
	seen := make(map[string]bool)
	lines := []string{TitleStyle.Render("Vendors")}
	for _, deal := range g.deals {
		if seen[deal.Vendor] {
			continue
		}
		seen[deal.Vendor] = true
		lines = append(lines, TextStyles.Secondary.Render(runewidth.Truncate(deal.Vendor, width-4, "...")))
	}
	return SidebarStyle().Width(width - 2).Render(strings.Join(lines, "\n"))
}

// truncateTitle cuts a title to the content width, reporting whether it was
// shortened.
func truncateTitle(title string, width int) (string, bool) {
	if runewidth.StringWidth(title) <= width {
		return title, false
	}
	return runewidth.Truncate(title, width, "..."), true
}

// InspectNode implements inspect.Introspectable. Cards report their
// truncation so tooling can detect layouts that cut titles.
func (g *DealGrid) InspectNode() *inspect.Node {
	l := g.layout()

	node := inspect.NewNode("DealGrid").
		WithBounds(0, 0, g.width, g.height).
		WithState("columns", l.columns).
		WithState("gap", l.gap).
		WithState("sidebar", l.sidebarWidth > 0)

	for i, deal := range g.visibleDeals(l.columns) {
		title, truncated := truncateTitle(deal.Title, l.contentWidth)
		card := inspect.NewNode("DealCard").
			WithID(fmt.Sprintf("deal-%d", i+1)).
			WithBounds(0, 0, l.cardWidth, 5).
			WithContent(title).
			WithState("vendor", deal.Vendor).
			WithState("discount", deal.Discount)
		if truncated {
			card.WithTruncation(len([]rune(deal.Title)), len([]rune(title)), true)
		}
		node.AddChild(card)
	}

	return node
}
