package view

import "github.com/pizzarten/pizzarten/internal/tui/styles"

// FooterView renders the global footer with the company footer text.
type FooterView struct{}

// NewFooterView creates a new FooterView instance.
func NewFooterView() *FooterView {
	return &FooterView{}
}

// Render renders the footer. An empty text falls back to nothing so the
// footer tolerates an absent catalog.
func (v *FooterView) Render(text string, width int) string {
	if text == "" {
		return ""
	}
	return styles.Footer.Width(width).Render(text)
}
