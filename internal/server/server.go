package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rgehrsitz/salairenet/internal/calculation"
	"github.com/rgehrsitz/salairenet/internal/config"
)

// Server is the HTTP front of the salary calculator
type Server struct {
	Settings config.ServerSettings
	Logger   *slog.Logger
	Router   http.Handler
}

// New wires middleware and routes around engine
func New(settings config.ServerSettings, engine *calculation.SalaryEngine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	engine.SetLogger(NewEngineLogger(logger))
	engine.Debug = engine.Debug || settings.Debug

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recoverer(logger))
	r.Use(SecureHeaders(settings.Environment == "production"))
	r.Use(BodyLimit(settings.MaxBodyBytes))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	handler := NewHandler(engine)
	r.Route("/api/v1", func(api chi.Router) {
		handler.RegisterRoutes(api)
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		Fail(w, http.StatusNotFound, "NOT_FOUND", "route not found", GetRequestID(req.Context()))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		Fail(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", GetRequestID(req.Context()))
	})

	return &Server{Settings: settings, Logger: logger, Router: r}
}

// Run serves until ctx is cancelled, then drains in-flight requests
func (s *Server) Run(ctx context.Context) error {
	if err := s.Settings.Validate(); err != nil {
		return fmt.Errorf("invalid server settings: %w", err)
	}

	srv := &http.Server{
		Addr:              s.Settings.Addr,
		Handler:           s.Router,
		ReadHeaderTimeout: s.Settings.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("listening", "addr", s.Settings.Addr, "env", s.Settings.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.Settings.ShutdownTimeout)
	defer cancel()
	s.Logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

type engineLogger struct {
	l *slog.Logger
}

// NewEngineLogger routes calculation debug output to a slog logger
func NewEngineLogger(l *slog.Logger) calculation.Logger {
	return engineLogger{l: l}
}

func (e engineLogger) Debugf(format string, args ...any) { e.l.Debug(fmt.Sprintf(format, args...)) }
func (e engineLogger) Infof(format string, args ...any)  { e.l.Info(fmt.Sprintf(format, args...)) }
func (e engineLogger) Warnf(format string, args ...any)  { e.l.Warn(fmt.Sprintf(format, args...)) }
func (e engineLogger) Errorf(format string, args ...any) { e.l.Error(fmt.Sprintf(format, args...)) }
