package grpc

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/litetable/litetable-go/internal/metrics"
	"github.com/litetable/litetable-go/internal/rpc"
	"github.com/rs/zerolog/log"
	grpc2 "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

//go:generate mockgen -destination=grpc_mock.go -package=grpc -source=grpc.go

type grpcServer interface {
	Serve(lis net.Listener) error
	GracefulStop()
}

// Server implements the app.Dependency interface for a gRPC server
type Server struct {
	address  string
	server   grpcServer
	port     int
	listener net.Listener
}

type Config struct {
	Address string
	Port    int
	// Listener replaces Address and Port, mostly for in-memory tests.
	Listener net.Listener
	Backend  backend
	// Metrics records every call by method and status code. Optional.
	Metrics *metrics.Metrics
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Listener == nil {
		if c.Address == "" {
			errGrp = append(errGrp, fmt.Errorf("address required"))
		}
		if c.Port == 0 {
			errGrp = append(errGrp, fmt.Errorf("port required"))
		}
	}
	if c.Backend == nil {
		errGrp = append(errGrp, fmt.Errorf("backend required"))
	}

	return errors.Join(errGrp...)
}

// NewServer creates a new gRPC server instance
func NewServer(cfg *Config) (*Server, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Create a new gRPC server
	srv := grpc2.NewServer()

	rpc.RegisterStoreServer(srv, &lt{
		backend: cfg.Backend,
		metrics: cfg.Metrics,
	})
	reflection.Register(srv)

	lis := cfg.Listener
	if lis == nil {
		var err error
		lis, err = net.Listen("tcp", fmt.Sprintf("%s:%d", cfg.Address, cfg.Port))
		if err != nil {
			return nil, fmt.Errorf("failed to create listener on port %d: %w", cfg.Port, err)
		}
	}

	return &Server{
		address:  cfg.Address,
		server:   srv,
		port:     cfg.Port,
		listener: lis,
	}, nil
}

// Addr returns the address the server accepts connections on.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *Server) Start() error {
	log.Info().Msgf("gRPC server listening at %s", s.listener.Addr())

	errCh := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		if err := s.server.Serve(s.listener); err != nil {
			errCh <- err
			log.Error().Err(err).Msg("gRPC server failed")
			return
		}
		errCh <- nil
	}()

	// Block briefly for error or nil return
	select {
	case err := <-errCh:
		return err
	case <-time.After(500 * time.Millisecond):
		// Assume server started successfully
		return nil
	}
}

func (s *Server) Stop() error {
	log.Info().Msg("Stopping gRPC server")
	s.server.GracefulStop()
	return nil
}

func (s *Server) Name() string {
	return "gRPC Server"
}
