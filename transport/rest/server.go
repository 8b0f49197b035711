package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type sessionUseCase interface {
	NewSession(ctx context.Context) (*entity.Session, error)
	GetSession(ctx context.Context, id string) (*entity.Session, error)
	PlayMove(ctx context.Context, id string, cell int) (*entity.Session, error)
	JumpTo(ctx context.Context, id string, step int) (*entity.Session, error)
	ToggleDisplayOrder(ctx context.Context, id string) (*entity.Session, error)
	EndSession(ctx context.Context, id string) error
}

type Server struct {
	logger   *slog.Logger
	sessions sessionUseCase
}

func New(logger *slog.Logger, sessions sessionUseCase) *Server {
	return &Server{
		logger:   logger.With("component", "rest"),
		sessions: sessions,
	}
}

// Router - builds the HTTP routes.
func (that *Server) Router() http.Handler {
	router := mux.NewRouter()
	router.Use(recovery(that.logger), logging(that.logger))

	ping := NewPingHandler()
	router.HandleFunc("/ping", ping.PingHandler).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api/sessions").Subrouter()
	api.HandleFunc("", that.createSession).Methods(http.MethodPost)
	api.HandleFunc("/{id}", that.getSession).Methods(http.MethodGet)
	api.HandleFunc("/{id}", that.endSession).Methods(http.MethodDelete)
	api.HandleFunc("/{id}/moves", that.playMove).Methods(http.MethodPost)
	api.HandleFunc("/{id}/jump", that.jumpTo).Methods(http.MethodPost)
	api.HandleFunc("/{id}/toggle", that.toggleDisplayOrder).Methods(http.MethodPost)

	return router
}

// Start - starts HTTP server, stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown HTTP server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
