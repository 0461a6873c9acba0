package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/logilink/logilink-client/internal/adapter"
	"github.com/logilink/logilink-client/internal/config"
	"github.com/logilink/logilink-client/internal/logger"
	"github.com/logilink/logilink-client/internal/service"
	"github.com/logilink/logilink-client/internal/session"
	"github.com/logilink/logilink-client/internal/store"
	"github.com/logilink/logilink-client/internal/tui"
	"github.com/logilink/logilink-client/models"
)

type App struct {
	cfg      *config.ClientConfig
	logger   *logger.Logger
	storages *store.ClientStorages
	adapter  adapter.BackendAdapter
	sessions *session.Store
	themes   *session.ThemeStore
	services *service.ClientServices
	ui       UI
}

// NewApp assembles the full client stack from the merged configuration:
// transport adapter, local SQLite storage, session and theme stores, the
// service layer and the terminal UI.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	backendAdapter, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create backend adapter: %w", err)
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	sessions := session.NewStore()
	themes := session.NewThemeStore()
	services := service.NewClientServices(storages, backendAdapter, sessions, cfg.App.DeviceType)

	return &App{
		cfg:      cfg,
		logger:   log,
		storages: storages,
		adapter:  backendAdapter,
		sessions: sessions,
		themes:   themes,
		services: services,
		ui:       tui.New(services, sessions, themes, cfg.App, log),
	}, nil
}

// Run rehydrates the durable state slices, starts the reference-data
// refresh job and hands control to the terminal UI. It blocks until the
// user exits.
func (a *App) Run(ctx context.Context) error {
	if err := a.restoreState(ctx); err != nil {
		return fmt.Errorf("restore state: %w", err)
	}

	// every change of the display preference is written through immediately
	a.themes.Subscribe(func(t session.ThemeState) {
		if err := a.storages.StateRepository.SaveTheme(ctx, store.PersistedTheme{IsDark: t.IsDark}); err != nil {
			a.logger.Err(err).Msg("save theme preference")
		}
	})

	a.services.ReferenceJob.Start(ctx, a.cfg.Workers.RefreshInterval)
	defer a.services.ReferenceJob.Stop()

	return a.ui.Run(ctx)
}

// restoreState loads the persisted session and theme slices before any
// screen is shown. Nothing persisted and an unreadable payload both fall
// back to the empty state; only an unreachable store is an error.
func (a *App) restoreState(ctx context.Context) error {
	persisted, err := a.storages.StateRepository.LoadSession(ctx)
	switch {
	case err == nil:
		identity := models.Identity{
			User:         persisted.User,
			AccessToken:  persisted.AccessToken,
			RefreshToken: persisted.RefreshToken,
		}
		a.sessions.Apply(func(s session.State) session.State {
			return session.WithIdentity(s, identity)
		})
		a.adapter.SetToken(persisted.AccessToken)
		a.logger.Info().Str("mobileNumber", persisted.User.MobileNumber).Msg("session rehydrated")
	case errors.Is(err, store.ErrNothingPersisted):
		// first run, start anonymous
	case errors.Is(err, store.ErrCorruptPayload):
		a.logger.Warn().Err(err).Msg("stored session unreadable, starting anonymous")
	default:
		return fmt.Errorf("load session: %w", err)
	}

	theme, err := a.storages.StateRepository.LoadTheme(ctx)
	switch {
	case err == nil:
		a.themes.SetDark(theme.IsDark)
	case errors.Is(err, store.ErrNothingPersisted), errors.Is(err, store.ErrCorruptPayload):
		// light theme default
	default:
		return fmt.Errorf("load theme: %w", err)
	}

	return nil
}
