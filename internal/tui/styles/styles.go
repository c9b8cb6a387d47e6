// Package styles centralizes the lipgloss palette and styles for the
// storefront TUI. The palette carries over the Pizzarten dark theme.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#FF5E00") // Pizzarten orange
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	DangerColor    = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1A1A1A") // Dark surface
	TextColor      = lipgloss.Color("#F4F4F9") // Light text
	BorderColor    = lipgloss.Color("#333333") // Dark gray
	BlueColor      = lipgloss.Color("#60A5FA") // Blue

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Danger    = lipgloss.NewStyle().Foreground(DangerColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	// Brand logo, "PIZZ" plain + "ARTEN" highlighted
	Logo = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor)

	LogoHighlight = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// Navbar
	NavBar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor).
		PaddingBottom(0)

	NavLink = lipgloss.NewStyle().
		Foreground(MutedColor).
		Padding(0, 2)

	NavLinkActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 2)

	CartBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 1)

	RoleDisplay = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// Hero banner
	HeroTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	HeroSubtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	HeroCTA = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor).
		Background(PrimaryColor).
		Padding(0, 2).
		MarginTop(1)

	// Section headers ("Menú", "Combos")
	SectionTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginTop(1).
			MarginBottom(1)

	// Product / bundle cards
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1).
		MarginRight(1)

	CardSelected = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 1).
			MarginRight(1)

	CardTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	CardDesc = lipgloss.NewStyle().
			Foreground(MutedColor)

	CardPrice = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	ComboBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(SurfaceColor).
			Background(WarningColor).
			Padding(0, 1)

	// Action hints on cards and detail view
	ActionPrimary = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 1)

	ActionSecondary = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(BorderColor).
			Padding(0, 1)

	ActionDelete = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(DangerColor).
			Padding(0, 1)

	// Cart rows
	CartRow = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor)

	CartRowSelected = lipgloss.NewStyle().
			Bold(true).
			Background(SurfaceColor)

	CartQty = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor).
		Padding(0, 1)

	TotalsLabel = lipgloss.NewStyle().
			Foreground(MutedColor)

	TotalsValue = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// Modal dialogs
	Modal = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(1, 3)

	ModalTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			MarginBottom(1)

	ModalText = lipgloss.NewStyle().
			Foreground(MutedColor).
			MarginBottom(1)

	// Toast notification
	ToastBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	// Footer
	Footer = lipgloss.NewStyle().
		Foreground(MutedColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(BorderColor).
		MarginTop(1)

	// Empty-state messaging
	EmptyState = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true).
			Padding(1, 2)

	// Admin panel hint
	AdminPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(WarningColor).
			Padding(0, 1).
			MarginTop(1)
)

// KindColor returns the accent color for a dialog/toast kind string.
func KindColor(kind string) lipgloss.Color {
	switch kind {
	case "success":
		return SecondaryColor
	case "warning":
		return WarningColor
	case "danger":
		return DangerColor
	case "info":
		return BlueColor
	default:
		return MutedColor
	}
}

// KindIcon returns an icon for a dialog/toast kind string.
func KindIcon(kind string) string {
	switch kind {
	case "success":
		return "✓"
	case "warning":
		return "!"
	case "danger":
		return "✗"
	case "info":
		return "i"
	default:
		return "•"
	}
}
