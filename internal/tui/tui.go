// Package tui is the terminal frontend of the logilink client: a Bubble
// Tea application with one router model and a sub-model per screen. All
// I/O happens in async commands that call into the service layer; screens
// never touch the adapter or the stores directly.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/logilink/logilink-client/internal/config"
	"github.com/logilink/logilink-client/internal/logger"
	"github.com/logilink/logilink-client/internal/service"
	"github.com/logilink/logilink-client/internal/session"
)

type TUI struct {
	services *service.ClientServices
	sessions *session.Store
	themes   *session.ThemeStore
	appCfg   config.ClientApp
	logger   *logger.Logger
}

func New(services *service.ClientServices, sessions *session.Store, themes *session.ThemeStore, appCfg config.ClientApp, log *logger.Logger) *TUI {
	return &TUI{
		services: services,
		sessions: sessions,
		themes:   themes,
		appCfg:   appCfg,
		logger:   log,
	}
}

// Run blocks until the user quits. A logged-in session lands on the main
// menu; an anonymous one starts at the phone entry screen.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.sessions, t.themes, t.appCfg)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
