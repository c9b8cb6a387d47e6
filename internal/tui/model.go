package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pizzarten/pizzarten/internal/app"
	"github.com/pizzarten/pizzarten/internal/catalog"
	"github.com/pizzarten/pizzarten/internal/config"
	"github.com/pizzarten/pizzarten/internal/dialog"
	"github.com/pizzarten/pizzarten/internal/logging"
	"github.com/pizzarten/pizzarten/internal/tui/view"
)

// modal identifies which overlay, if any, currently captures input.
type modal int

const (
	modalNone modal = iota
	modalRolePicker
	modalConfirm
	modalProductForm
)

// pendingConfirm couples a confirmation dialog with the operation it
// guards. The continuation runs only when the user accepts; cancelling
// discards it, leaving the store untouched.
type pendingConfirm struct {
	dialog dialog.Confirm
	then   func() app.Event
}

// Options configure the initial page, covering the deep-link contract
// (page, type and id).
type Options struct {
	Page string
	Kind catalog.Kind
	ID   int64
}

// Model holds the TUI application state.
type Model struct {
	state *app.State
	cfg   *config.Config
	log   *logging.Logger

	// Page routing
	page       string
	detailKind catalog.Kind
	detailID   int64

	// Terminal state
	width    int
	height   int
	ready    bool
	quitting bool

	// Selections
	homeSel int
	cartSel int

	// Modal state
	modal         modal
	confirm       pendingConfirm
	rolePickerSel int
	nameInput     textinput.Model
	priceInput    textinput.Model
	formFocus     int

	// Toast state. The sequence number ties expiry ticks to the toast
	// that scheduled them, so a stale tick never dismisses a newer toast.
	toast    *dialog.Toast
	toastSeq int

	// Views
	navbar      *view.NavbarView
	home        *view.HomeView
	detail      *view.DetailView
	cartView    *view.CartView
	rolePicker  *view.RolePickerView
	confirmView *view.ConfirmView
	toastView   *view.ToastView
	productForm *view.ProductFormView
	helpBar     *view.HelpBarView
	footer      *view.FooterView
}

// NewModel creates a new TUI model bound to the given application state.
func NewModel(state *app.State, cfg *config.Config, log *logging.Logger, opts Options) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logging.NopLogger()
	}

	nameInput := textinput.New()
	nameInput.Placeholder = "Nombre de la pizza"
	nameInput.CharLimit = 60

	priceInput := textinput.New()
	priceInput.Placeholder = "Precio (ej. 12.99)"
	priceInput.CharLimit = 10

	page := opts.Page
	switch page {
	case view.PageHome, view.PageCart:
	case view.PageDetails:
		// Dangling deep links render the not-found message.
	default:
		page = view.PageHome
	}

	return Model{
		state:      state,
		cfg:        cfg,
		log:        log,
		page:       page,
		detailKind: opts.Kind,
		detailID:   opts.ID,
		nameInput:  nameInput,
		priceInput: priceInput,

		navbar:      view.NewNavbarView(),
		home:        view.NewHomeView(),
		detail:      view.NewDetailView(),
		cartView:    view.NewCartView(),
		rolePicker:  view.NewRolePickerView(),
		confirmView: view.NewConfirmView(),
		toastView:   view.NewToastView(),
		productForm: view.NewProductFormView(),
		helpBar:     view.NewHelpBarView(),
		footer:      view.NewFooterView(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// toastDuration returns how long a toast stays visible.
func (m Model) toastDuration() time.Duration {
	ms := m.cfg.TUI.ToastDurationMs
	if ms <= 0 {
		ms = 3000
	}
	return time.Duration(ms) * time.Millisecond
}

// homeState builds the render state for the home page.
func (m Model) homeState() view.HomeState {
	return view.HomeState{
		Catalog:       m.state.Catalog,
		Role:          m.state.Session.Current(),
		Selected:      m.homeSel,
		Columns:       m.cfg.TUI.GridColumns,
		ShowImageRefs: m.cfg.TUI.ShowImageRefs,
		Width:         m.width,
	}
}

// selectedHomeItem resolves the current home selection.
func (m Model) selectedHomeItem() (catalog.Kind, int64, bool) {
	return m.homeState().ItemAt(m.homeSel)
}

// clampSelections keeps the selection indexes inside the current
// collections after a mutation shrank or grew them.
func (m *Model) clampSelections() {
	if n := m.homeState().ItemCount(); m.homeSel >= n {
		m.homeSel = n - 1
	}
	if m.homeSel < 0 {
		m.homeSel = 0
	}
	if n := m.state.Cart.Len(); m.cartSel >= n {
		m.cartSel = n - 1
	}
	if m.cartSel < 0 {
		m.cartSel = 0
	}
}
