package app

import (
	"context"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/five82/storefront/internal/config"
	"github.com/five82/storefront/internal/fakestore"
	"github.com/five82/storefront/internal/logging"
	"github.com/five82/storefront/internal/prefs"
	"github.com/five82/storefront/internal/state"
	"github.com/five82/storefront/internal/ui"
)

// Options configure the storefront application.
type Options struct {
	ConfigPath string
	Overrides  config.Overrides

	// DetectDark reports the host's colour preference and is consulted only
	// when no theme is saved. Nil uses the terminal background.
	DetectDark func() bool
}

// Session holds the collaborators for one run of the program.
type Session struct {
	Config    config.Config
	Logger    *zap.Logger
	Client    *fakestore.Client
	Storage   *prefs.FileStorage
	Favorites *prefs.Favorites
	Theme     *prefs.Theme
	Store     *state.Store

	closeLog func() error
}

// Open loads configuration and builds the session. The caller must Close it.
func Open(opts Options) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.Apply(opts.Overrides)

	logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "init logging")
	}

	client, err := fakestore.NewClient(cfg.APIURL,
		fakestore.WithTimeout(cfg.RequestTimeout),
		fakestore.WithLogger(logger.Named("fetcher")),
	)
	if err != nil {
		_ = closeLog()
		return nil, errors.Wrap(err, "init product client")
	}

	prefsLogger := logger.Named("prefs")
	storage, err := prefs.OpenFile(cfg.StoragePath, prefsLogger)
	if err != nil {
		_ = closeLog()
		return nil, errors.Wrap(err, "open local storage")
	}

	detect := opts.DetectDark
	if detect == nil {
		detect = lipgloss.HasDarkBackground
	}

	logger.Debug("Session opened",
		zap.String("api_url", client.BaseURL()),
		zap.String("storage", storage.Path()),
		zap.String("currency", string(cfg.Currency)),
	)

	return &Session{
		Config:    cfg,
		Logger:    logger,
		Client:    client,
		Storage:   storage,
		Favorites: prefs.LoadFavorites(storage, prefsLogger),
		Theme:     prefs.LoadTheme(storage, detect, prefsLogger),
		Store:     &state.Store{},
		closeLog:  closeLog,
	}, nil
}

// Close flushes and closes the log file.
func (s *Session) Close() error {
	if s.closeLog == nil {
		return nil
	}
	err := s.closeLog()
	s.closeLog = nil
	return err
}

// Browse starts the TUI and blocks until the user quits or ctx is cancelled.
func (s *Session) Browse(ctx context.Context) error {
	return ui.Run(ui.Options{
		Context:   ctx,
		Source:    s.Client,
		Store:     s.Store,
		Favorites: s.Favorites,
		Theme:     s.Theme,
		Prices:    s.Config.PriceFormatter(),
		Logger:    s.Logger,
	})
}

// Run boots the storefront TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	session, err := Open(opts)
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()
	return session.Browse(ctx)
}
