package devserver

import (
	"context"
	"net/http"
)

// Run starts the stub on the configured address and blocks until the
// listener fails or Shutdown is called.
func (s *Server) Run() error {
	s.httpServer = &http.Server{
		Addr:    s.cfg.HTTPAddress,
		Handler: s.Router(),
	}

	s.logger.Info().Str("address", s.cfg.HTTPAddress).Msg("dev server listening")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the listener gracefully. Safe to call when Run was never
// started.
func (s *Server) Shutdown(ctx context.Context) {
	if s.httpServer == nil {
		return
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Err(err).Msg("dev server shutdown")
	}
}
