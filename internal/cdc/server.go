package cdc

import (
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/google/uuid"
	v1 "github.com/litetable/litetable-cdc/go/v1"
	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
)

const (
	defaultBuffer      = 1000
	defaultReplayLimit = 1000
	subscriberBuffer   = 256
)

// Server streams every change applied by the engine to gRPC subscribers. Events are
// dispatched asynchronously; a subscriber that cannot keep up loses events instead of
// slowing down writes.
type Server struct {
	v1.UnimplementedCDCServiceServer
	address  string
	port     int
	listener net.Listener

	mu          sync.Mutex
	subscribers map[string]*subscriber
	history     []*v1.CDCEvent
	replayLimit int

	server *grpc.Server
	events chan litetable.ChangeEvent
	done   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

type subscriber struct {
	id     string
	events chan *v1.CDCEvent
}

type Config struct {
	Address string
	Port    int
	// Listener overrides Address and Port.
	Listener net.Listener
	// Buffer is the number of events queued for dispatch.
	Buffer int
	// ReplayLimit is the number of recent events kept for subscribers asking for a replay.
	ReplayLimit int
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Listener == nil {
		if c.Address == "" {
			errGrp = append(errGrp, errors.New("address required"))
		}
		if c.Port <= 0 {
			errGrp = append(errGrp, errors.New("port required"))
		}
	}
	if c.Buffer < 0 {
		errGrp = append(errGrp, errors.New("buffer cannot be negative"))
	}
	if c.ReplayLimit < 0 {
		errGrp = append(errGrp, errors.New("replay limit cannot be negative"))
	}
	return errors.Join(errGrp...)
}

func New(cfg *Config) (*Server, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	buffer := cfg.Buffer
	if buffer == 0 {
		buffer = defaultBuffer
	}
	replayLimit := cfg.ReplayLimit
	if replayLimit == 0 {
		replayLimit = defaultReplayLimit
	}

	cdcServer := &Server{
		address:     cfg.Address,
		port:        cfg.Port,
		listener:    cfg.Listener,
		subscribers: make(map[string]*subscriber),
		replayLimit: replayLimit,
		events:      make(chan litetable.ChangeEvent, buffer),
		done:        make(chan struct{}),
	}

	// Create a new gRPC server
	srv := grpc.NewServer()

	// Register the CDC service
	v1.RegisterCDCServiceServer(srv, cdcServer)

	cdcServer.server = srv
	return cdcServer, nil
}

// Emit queues an event for dispatch. It never blocks: when the queue is full the event is
// dropped.
func (s *Server) Emit(event litetable.ChangeEvent) {
	select {
	case <-s.done:
	case s.events <- event:
	default:
		log.Warn().Msgf("CDC queue full, dropping %s event for row %s", event.Operation, event.Row)
	}
}

// CDCStream registers the caller for live events until its stream ends. With replay the
// retained history is sent first.
func (s *Server) CDCStream(req *v1.CDCSubscriptionRequest, stream v1.CDCService_CDCStreamServer) error {
	id := req.GetClientId()
	if id == "" {
		id = uuid.NewString()
	}
	sub := &subscriber{id: id, events: make(chan *v1.CDCEvent, subscriberBuffer)}

	// register before replaying so nothing falls between the two
	replay := s.register(sub, req.GetReplay())
	defer s.unregister(sub)
	log.Info().Str("client", id).Bool("replay", req.GetReplay()).Msg("CDC subscriber connected")

	for _, event := range replay {
		if err := stream.Send(event); err != nil {
			return err
		}
	}

	for {
		select {
		case <-stream.Context().Done():
			log.Info().Str("client", id).Msg("CDC subscriber disconnected")
			return nil
		case <-s.done:
			return nil
		case event := <-sub.events:
			if err := stream.Send(event); err != nil {
				log.Warn().Err(err).Str("client", id).Msg("removing gRPC stream due to send error")
				return err
			}
		}
	}
}

func (s *Server) register(sub *subscriber, replay bool) []*v1.CDCEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.subscribers[sub.id]; ok {
		log.Warn().Str("client", sub.id).Msg("replacing existing CDC subscriber")
		delete(s.subscribers, prev.id)
	}
	s.subscribers[sub.id] = sub
	if !replay {
		return nil
	}
	return append([]*v1.CDCEvent(nil), s.history...)
}

func (s *Server) unregister(sub *subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.subscribers[sub.id]; ok && cur == sub {
		delete(s.subscribers, sub.id)
	}
}

// Subscribers returns the number of connected subscribers.
func (s *Server) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscribers)
}

func (s *Server) Start() error {
	lis := s.listener
	if lis == nil {
		var err error
		lis, err = net.Listen("tcp", fmt.Sprintf("%s:%d", s.address, s.port))
		if err != nil {
			return fmt.Errorf("failed to listen on port %d: %w", s.port, err)
		}
		s.listener = lis
	}

	log.Info().Msgf("CDC gRPC server listening at %s", lis.Addr())

	// Start fan-out dispatcher
	s.wg.Add(1)
	go s.dispatchLoop()

	// Start gRPC server
	go func() {
		if err := s.server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			log.Error().Err(err).Msg("CDC gRPC server failed")
		}
	}()

	return nil
}

// Stop ends every stream and the dispatcher. Events emitted afterwards are discarded.
func (s *Server) Stop() error {
	s.once.Do(func() {
		close(s.done)
		s.server.Stop()
		s.wg.Wait()
	})
	return nil
}

func (s *Server) Name() string {
	return "CDC Stream"
}

func (s *Server) dispatchLoop() {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			return
		case evt := <-s.events:
			s.dispatch(toProto(evt))
		}
	}
}

func (s *Server) dispatch(event *v1.CDCEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, event)
	if over := len(s.history) - s.replayLimit; over > 0 {
		s.history = append(s.history[:0:0], s.history[over:]...)
	}

	for id, sub := range s.subscribers {
		select {
		case sub.events <- event:
		default:
			log.Warn().Str("client", id).Msg("CDC subscriber too slow, dropping event")
		}
	}
}

func toProto(evt litetable.ChangeEvent) *v1.CDCEvent {
	event := &v1.CDCEvent{
		RowKey:        litetable.String(evt.Row),
		Family:        litetable.String(evt.Family),
		Qualifier:     litetable.String(evt.Qualifier),
		Value:         evt.Value,
		TimestampUnix: evt.Timestamp,
		Tombstone:     evt.Tombstone,
		ExpiresAtUnix: evt.ExpiresAt,
	}

	switch evt.Operation {
	case litetable.OperationRead:
		event.Operation = v1.LitetableOperation_READ
	case litetable.OperationWrite:
		event.Operation = v1.LitetableOperation_WRITE
	case litetable.OperationDelete:
		event.Operation = v1.LitetableOperation_DELETE
	}
	return event
}
