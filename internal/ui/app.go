package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/five82/storefront/internal/catalog"
	"github.com/five82/storefront/internal/prefs"
	"github.com/five82/storefront/internal/state"
)

// screen is the active top-level view.
type screen int

const (
	screenGrid screen = iota
	screenDetail
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Source    catalog.Source
	Store     *state.Store
	Favorites *prefs.Favorites
	Theme     *prefs.Theme
	Prices    catalog.PriceFormatter
	Logger    *zap.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Collaborators
	ctx       context.Context
	source    catalog.Source
	store     *state.Store
	favorites *prefs.Favorites
	themePref *prefs.Theme
	prices    catalog.PriceFormatter
	logger    *zap.Logger
	keys      keyMap

	// UI state
	palette  Theme
	screen   screen
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	snapshot state.Snapshot
	browser  *catalog.Browser

	// Grid state
	cursor int // index into the visible page
	search textinput.Model
	pager  paginator.Model

	// Detail state
	detailID int64
	detail   viewport.Model

	spinner spinner.Model
	help    help.Model
}

// New creates a new Bubble Tea model. Missing collaborators fall back to
// in-memory defaults so the model is usable in tests.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}
	favorites := opts.Favorites
	if favorites == nil {
		favorites = prefs.LoadFavorites(prefs.NewMemoryStorage(nil), logger)
	}
	themePref := opts.Theme
	if themePref == nil {
		themePref = prefs.LoadTheme(prefs.NewMemoryStorage(nil), nil, logger)
	}
	prices := opts.Prices
	if prices.Currency == "" {
		prices = catalog.NewPriceFormatter(catalog.CurrencyINR, catalog.DefaultINRRate)
	}

	search := textinput.New()
	search.Prompt = ""
	search.Placeholder = "Search products..."
	search.CharLimit = 100
	search.Width = 24

	pager := paginator.New(paginator.WithPerPage(catalog.ItemsPerPage))
	pager.Type = paginator.Arabic
	pager.ArabicFormat = "Page %d of %d"

	return Model{
		ctx:       ctx,
		source:    opts.Source,
		store:     store,
		favorites: favorites,
		themePref: themePref,
		prices:    prices,
		logger:    logger.Named("ui"),
		keys:      DefaultKeyMap(),
		palette:   ThemeFor(themePref.Mode()),
		snapshot:  store.Snapshot(),
		browser:   catalog.NewBrowser(nil),
		search:    search,
		pager:     pager,
		detail:    viewport.New(0, 0),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:      help.New(),
	}
}

// Init implements tea.Model. It enters loading on the store only; Update
// reads the status back from the store.
func (m Model) Init() tea.Cmd {
	var fetch tea.Cmd
	if m.store.Begin() {
		fetch = fetchCatalogCmd(m.ctx, m.source)
	}
	return tea.Batch(
		tea.EnterAltScreen,
		m.spinner.Tick,
		fetch,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.snapshot = m.store.Snapshot()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.resizeDetail()
		return m, nil

	case spinner.TickMsg:
		if m.snapshot.Status != state.StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case catalogLoadedMsg:
		m.store.Resolve(msg.catalog)
		m.snapshot = m.store.Snapshot()
		m.browser.SetCatalog(m.snapshot.Catalog)
		m.cursor = 0
		m.logger.Info("Catalog loaded",
			zap.Int("products", len(m.snapshot.Catalog)),
			zap.Int("attempt", m.snapshot.Attempts),
		)
		return m, nil

	case catalogFailedMsg:
		m.store.Fail(msg.err)
		m.snapshot = m.store.Snapshot()
		m.logger.Warn("Catalog load failed",
			zap.Error(msg.err),
			zap.Int("attempt", m.snapshot.Attempts),
			zap.Int("consecutive_failures", m.snapshot.ConsecutiveFailures),
		)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.ToggleTheme):
		m.palette = ThemeFor(m.themePref.Toggle())
		m.refreshDetail()
		return m, nil
	}

	switch m.snapshot.Status {
	case state.StatusLoading:
		return m, nil
	case state.StatusError:
		if key.Matches(msg, m.keys.Retry) {
			cmd := m.retry()
			return m, cmd
		}
		return m, nil
	}

	if m.screen == screenDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleGridKey(msg)
}

// handleSearchKey feeds keys to the focused search input.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Confirm):
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.search.Reset()
		m.search.Blur()
		m.applySearch()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applySearch()
	return m, cmd
}

// applySearch copies the input value into the browser when it changed.
func (m *Model) applySearch() {
	if m.search.Value() == m.browser.Filter().Search {
		return
	}
	m.browser.SetSearch(m.search.Value())
	m.cursor = 0
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.NextCategory):
		m.browser.CycleCategory(1)
		m.cursor = 0
	case key.Matches(msg, m.keys.PrevCategory):
		m.browser.CycleCategory(-1)
		m.cursor = 0
	case key.Matches(msg, m.keys.CycleSort):
		m.browser.CycleSort()
		m.cursor = 0
	case key.Matches(msg, m.keys.FavoritesOnly):
		m.browser.ToggleFavoritesOnly()
		m.cursor = 0
	case key.Matches(msg, m.keys.ClearFilters):
		m.search.Reset()
		m.browser.SetFilter(catalog.DefaultFilterState())
		m.cursor = 0

	case key.Matches(msg, m.keys.NextPage):
		m.browser.NextPage(m.favorites)
		m.cursor = 0
	case key.Matches(msg, m.keys.PrevPage):
		m.browser.PrevPage(m.favorites)
		m.cursor = 0

	case key.Matches(msg, m.keys.ToggleFavorite):
		if p, ok := m.selected(); ok {
			m.toggleFavorite(p.ID)
		}
	case key.Matches(msg, m.keys.Open):
		if p, ok := m.selected(); ok {
			m.openDetail(p.ID)
		}

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-gridColumns(m.width))
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(gridColumns(m.width))
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = screenGrid
		return m, nil
	case key.Matches(msg, m.keys.ToggleFavorite):
		m.toggleFavorite(m.detailID)
		m.refreshDetail()
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// selected returns the product under the cursor on the visible page.
func (m Model) selected() (catalog.Product, bool) {
	items := m.browser.View(m.favorites).Page.Items
	if m.cursor < 0 || m.cursor >= len(items) {
		return catalog.Product{}, false
	}
	return items[m.cursor], true
}

// moveCursor moves the selection by delta cards, staying on the page.
func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.browser.View(m.favorites).Page.Items) {
		return
	}
	m.cursor = next
}

// toggleFavorite flips id and keeps the cursor on the (possibly shorter) page.
func (m *Model) toggleFavorite(id int64) {
	set := m.favorites.Toggle(id)
	m.logger.Debug("Favorite toggled",
		zap.Int64("product_id", id),
		zap.Bool("favorite", set.IsFavorite(id)),
		zap.Int("favorites", len(set)),
	)
	if n := len(m.browser.View(m.favorites).Page.Items); m.cursor >= n {
		m.cursor = max(0, n-1)
	}
}

func (m *Model) openDetail(id int64) {
	m.detailID = id
	m.screen = screenDetail
	m.refreshDetail()
	m.detail.GotoTop()
}

// retry starts a fresh fetch after a failure.
func (m *Model) retry() tea.Cmd {
	cmd := m.loadCatalog()
	if cmd == nil {
		return nil
	}
	m.logger.Info("Retrying catalog load", zap.Int("attempt", m.snapshot.Attempts))
	return tea.Batch(cmd, m.spinner.Tick)
}

// loadCatalog enters the loading state and returns the fetch command. It
// returns nil while another fetch is in flight.
func (m *Model) loadCatalog() tea.Cmd {
	if !m.store.Begin() {
		return nil
	}
	m.snapshot = m.store.Snapshot()
	return fetchCatalogCmd(m.ctx, m.source)
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.screen == screenDetail && m.snapshot.Status == state.StatusSuccess {
		b.WriteString(m.renderDetail())
	} else {
		b.WriteString(m.renderFilterBar())
		b.WriteString("\n\n")
		b.WriteString(m.renderContent())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderContent renders the main area for the current load status.
func (m Model) renderContent() string {
	switch m.snapshot.Status {
	case state.StatusLoading:
		return m.renderSkeletons()
	case state.StatusError:
		return m.renderError()
	default:
		return m.renderGrid(m.browser.View(m.favorites))
	}
}

// Messages

type catalogLoadedMsg struct {
	catalog catalog.Catalog
}

type catalogFailedMsg struct {
	err error
}

// Commands

func fetchCatalogCmd(ctx context.Context, source catalog.Source) tea.Cmd {
	return func() tea.Msg {
		if source == nil {
			return catalogFailedMsg{err: errors.New("no product source configured")}
		}
		c, err := source.FetchCatalog(ctx)
		if err != nil {
			return catalogFailedMsg{err: err}
		}
		return catalogLoadedMsg{catalog: c}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
