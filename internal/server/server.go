// Package server exposes the hydraulics engine over a small in-process HTTP
// boundary: one-shot analysis plus reference table listings. It holds no
// user, project, or result state; persistence and presentation belong to the
// hosting application.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Server is the HTTP boundary adapter for the analysis engine.
type Server struct {
	ctx    context.Context
	wg     *sync.WaitGroup
	srv    http.Server
	logger *zap.SugaredLogger
}

// New creates a new analysis server listening on addr.
func New(ctx context.Context, wg *sync.WaitGroup, addr string, logger *zap.SugaredLogger) *Server {
	s := &Server{
		ctx:    ctx,
		wg:     wg,
		logger: logger,
	}

	h := newHandlers(logger)

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/analyze", h.analyze).Methods(http.MethodPost)
	api.HandleFunc("/materials", h.materials).Methods(http.MethodGet)
	api.HandleFunc("/fittings", h.fittings).Methods(http.MethodGet)
	api.HandleFunc("/health", h.health).Methods(http.MethodGet)

	chain := handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{logger}))(
		handlers.CORS(
			handlers.AllowedOrigins([]string{"*"}),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
			handlers.AllowedHeaders([]string{"Content-Type"}),
		)(router))

	s.srv = http.Server{
		Addr:         addr,
		Handler:      chain,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Start begins serving and spawns a watcher that shuts the listener down
// when the server's context is cancelled.
func (s *Server) Start() error {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		<-s.ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Errorf("error shutting down analysis server: %v", err)
		}
	}()

	s.logger.Infof("analysis server listening on %s", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("analysis server error: %w", err)
	}
	return nil
}

// recoveryLogger adapts the zap logger to gorilla's recovery middleware.
type recoveryLogger struct {
	logger *zap.SugaredLogger
}

func (r recoveryLogger) Println(args ...interface{}) {
	r.logger.Error(args...)
}
