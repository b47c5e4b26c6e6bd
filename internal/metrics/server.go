package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Server serves the metrics over HTTP
type Server struct {
	httpServer *http.Server
	listener   net.Listener
	address    string
}

type Config struct {
	Address string
	Port    int
	Metrics *Metrics
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Port <= 0 {
		errGrp = append(errGrp, errors.New("port required"))
	}
	if c.Metrics == nil {
		errGrp = append(errGrp, errors.New("metrics required"))
	}
	return errors.Join(errGrp...)
}

// NewServer creates a new metrics server
func NewServer(cfg *Config) (*Server, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(cfg.Metrics))
	mux.HandleFunc("/health", healthHandler)

	addr := fmt.Sprintf("%s:%d", cfg.Address, cfg.Port)
	return &Server{
		address: addr,
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}, nil
}

// Handler serves the registry of m in the Prometheus exposition format.
func Handler(m *Metrics) http.Handler {
	return promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{})
}

func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.address, err)
	}
	s.listener = lis
	log.Info().Msgf("metrics server listening at %s", lis.Addr())

	go func() {
		if err := s.httpServer.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
	return nil
}

func (s *Server) Stop() error {
	log.Info().Msg("Stopping metrics server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("metrics server shutdown failed: %w", err)
	}
	return nil
}

func (s *Server) Name() string {
	return "Metrics Server"
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, `{"status":"healthy","timestamp":"%s"}`, time.Now().Format(time.RFC3339))
}
