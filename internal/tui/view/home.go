package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pizzarten/pizzarten/internal/cart"
	"github.com/pizzarten/pizzarten/internal/catalog"
	"github.com/pizzarten/pizzarten/internal/session"
	"github.com/pizzarten/pizzarten/internal/tui/styles"
)

// HomeState holds the state needed to render the home page.
type HomeState struct {
	// Catalog may be empty but never nil-dereferenced: an absent catalog
	// renders empty-state messaging.
	Catalog *catalog.Catalog
	// Role drives which action hints each card shows.
	Role session.Role
	// Selected is the linear card index (products first, then bundles).
	// Negative means no selection.
	Selected int
	// Columns is the number of cards per grid row.
	Columns int
	// ShowImageRefs displays the image reference path on each card.
	ShowImageRefs bool
	// Width is the available width.
	Width int
}

// ItemCount returns how many selectable cards the home page shows.
func (s HomeState) ItemCount() int {
	if s.Catalog == nil {
		return 0
	}
	return len(s.Catalog.Products) + len(s.Catalog.Bundles)
}

// ItemAt resolves a linear selection index to a catalog item reference.
func (s HomeState) ItemAt(idx int) (catalog.Kind, int64, bool) {
	if s.Catalog == nil || idx < 0 {
		return "", 0, false
	}
	if idx < len(s.Catalog.Products) {
		return catalog.KindProduct, s.Catalog.Products[idx].ID, true
	}
	idx -= len(s.Catalog.Products)
	if idx < len(s.Catalog.Bundles) {
		return catalog.KindBundle, s.Catalog.Bundles[idx].ID, true
	}
	return "", 0, false
}

// HomeView renders the home page: hero banner, product grid, bundle grid,
// and the admin panel hint when the admin role is active.
type HomeView struct{}

// NewHomeView creates a new HomeView instance.
func NewHomeView() *HomeView {
	return &HomeView{}
}

// Render renders the home page for the given state.
func (v *HomeView) Render(s HomeState) string {
	var b strings.Builder

	b.WriteString(v.renderHero(s))
	b.WriteString("\n")

	if s.ItemCount() == 0 {
		b.WriteString(styles.EmptyState.Render("No hay productos en el catálogo."))
		b.WriteString("\n")
	} else {
		b.WriteString(styles.SectionTitle.Render("▸ Menú"))
		b.WriteString("\n")
		b.WriteString(v.renderProductGrid(s))

		b.WriteString(styles.SectionTitle.Render("▸ Combos"))
		b.WriteString("\n")
		b.WriteString(v.renderBundleGrid(s))
	}

	if s.Role == session.RoleAdmin {
		b.WriteString(v.renderAdminPanel())
	}

	return b.String()
}

func (v *HomeView) renderHero(s HomeState) string {
	if s.Catalog == nil || s.Catalog.Hero.Title == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.HeroTitle.Render(s.Catalog.Hero.Title))
	b.WriteString("\n")
	b.WriteString(styles.HeroSubtitle.Render(s.Catalog.Hero.Subtitle))
	if s.Catalog.Hero.CTAButton != "" {
		b.WriteString("\n")
		b.WriteString(styles.HeroCTA.Render(s.Catalog.Hero.CTAButton))
	}
	b.WriteString("\n")
	return b.String()
}

func (v *HomeView) renderProductGrid(s HomeState) string {
	cards := make([]string, 0, len(s.Catalog.Products))
	for i, p := range s.Catalog.Products {
		item := catalog.Item{ID: p.ID, Kind: catalog.KindProduct, Name: p.Name, Desc: p.Desc, Price: p.Price, Img: p.Img}
		cards = append(cards, v.renderCard(s, item, i == s.Selected))
	}
	return renderGrid(cards, s.Columns)
}

func (v *HomeView) renderBundleGrid(s HomeState) string {
	offset := len(s.Catalog.Products)
	cards := make([]string, 0, len(s.Catalog.Bundles))
	for i, c := range s.Catalog.Bundles {
		item := catalog.Item{ID: c.ID, Kind: catalog.KindBundle, Name: c.Title, Desc: c.Desc, Price: c.Price, Img: c.Img, Badge: c.Badge}
		cards = append(cards, v.renderCard(s, item, offset+i == s.Selected))
	}
	return renderGrid(cards, s.Columns)
}

func (v *HomeView) renderCard(s HomeState, item catalog.Item, selected bool) string {
	cardWidth := cardWidth(s.Width, s.Columns)

	var b strings.Builder
	if item.Badge != "" {
		b.WriteString(styles.ComboBadge.Render(item.Badge))
		b.WriteString("\n")
	}
	b.WriteString(styles.CardTitle.Render(item.Name))
	b.WriteString("\n")
	b.WriteString(styles.CardDesc.Render(truncate(item.Desc, 50)))
	b.WriteString("\n")
	if s.ShowImageRefs && item.Img != "" {
		b.WriteString(styles.Muted.Render(item.Img))
		b.WriteString("\n")
	}
	b.WriteString(styles.CardPrice.Render(cart.FormatPrice(item.Price)))
	b.WriteString("\n")
	b.WriteString(v.renderCardActions(s, item))

	style := styles.Card
	if selected {
		style = styles.CardSelected
	}
	return style.Width(cardWidth).Render(b.String())
}

// renderCardActions derives the role-gated action hints. Visitors see a
// login prompt instead of add-to-cart; admins additionally see delete on
// products (bundles have no admin mutation).
func (v *HomeView) renderCardActions(s HomeState, item catalog.Item) string {
	var parts []string

	if s.Role == session.RoleVisitor {
		parts = append(parts, styles.ActionSecondary.Render("Pedir [a]"))
	} else {
		parts = append(parts, styles.ActionPrimary.Render("Agregar [a]"))
	}

	if s.Role == session.RoleAdmin && item.Kind == catalog.KindProduct {
		parts = append(parts, styles.ActionDelete.Render("Eliminar [d]"))
	}

	return strings.Join(parts, " ")
}

func (v *HomeView) renderAdminPanel() string {
	hint := styles.HelpKey.Render("[n]") + styles.Muted.Render(" nueva pizza  ") +
		styles.HelpKey.Render("[F]") + styles.Muted.Render(" restaurar fábrica")
	return styles.AdminPanel.Render(styles.Warning.Render("Panel Admin  ") + hint)
}

// renderGrid lays cards out in rows of the given column count.
func renderGrid(cards []string, columns int) string {
	if len(cards) == 0 {
		return styles.EmptyState.Render("Nada por aquí todavía.") + "\n"
	}
	if columns < 1 {
		columns = 1
	}

	var b strings.Builder
	for start := 0; start < len(cards); start += columns {
		end := min(start+columns, len(cards))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
		b.WriteString("\n")
	}
	return b.String()
}

// cardWidth splits the available width across grid columns.
func cardWidth(width, columns int) int {
	if columns < 1 {
		columns = 1
	}
	w := width/columns - 4
	if w < 20 {
		w = 20
	}
	return w
}

// truncate shortens a string to at most n runes, appending an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
