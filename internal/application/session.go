package application

import (
	"context"
	"math"
	"sync"
	"time"

	"twitchwire/internal/adapters/logging"
	"twitchwire/internal/irc"
	"twitchwire/internal/ports"
)

// Conn is the slice of the connector the service drives. Satisfied by
// *irc.Connector; tests substitute fakes.
type Conn interface {
	SendCommand(kind irc.CommandKind, arg string) error
	ReadLoop(ctx context.Context, handler func(irc.Event)) error
	Close() error
}

type connectFunc func(ctx context.Context, cfg ports.SessionConfig, oauth string) (Conn, error)

// SessionService runs one chat session end to end: connect, pump the
// read loop, answer keepalives, dispatch events to the application
// callback, and account for traffic.
type SessionService struct {
	config  ports.ConfigReader
	logger  *logging.Logger
	connect connectFunc

	mu            sync.Mutex
	conn          Conn
	startTime     time.Time
	status        string
	messagesRecv  int
	messagesSent  int
	pingsAnswered int

	onEvent func(irc.Event)
}

func NewSessionService(config ports.ConfigReader, dialer ports.Dialer, logger *logging.Logger) *SessionService {
	s := &SessionService{
		config: config,
		logger: logger,
		status: "connecting",
	}
	s.connect = func(ctx context.Context, cfg ports.SessionConfig, oauth string) (Conn, error) {
		return irc.Connect(ctx, cfg, oauth,
			irc.WithDialer(dialer),
			irc.WithLogger(logger),
		)
	}
	return s
}

// OnEvent registers the per-event callback. Must be called before
// Start; events arriving with no callback are counted but dropped.
func (s *SessionService) OnEvent(handler func(irc.Event)) {
	s.onEvent = handler
}

// Start connects and blocks pumping the read loop until the stream
// closes or ctx is canceled. A dropped connection is reported as the
// loop's return; reconnection is the caller's decision, via a fresh
// Start.
func (s *SessionService) Start(ctx context.Context) error {
	s.mu.Lock()
	s.startTime = time.Now()
	s.mu.Unlock()

	appCfg := s.config.GetConfig()
	conn, err := s.connect(ctx, appCfg.Session, s.config.GetOAuth())
	if err != nil {
		s.setStatus("error")
		return err
	}

	s.mu.Lock()
	s.conn = conn
	s.status = "ok"
	s.mu.Unlock()

	return conn.ReadLoop(ctx, s.handleEvent)
}

func (s *SessionService) handleEvent(ev irc.Event) {
	s.mu.Lock()
	s.messagesRecv++
	conn := s.conn
	s.mu.Unlock()

	if ev.Kind == irc.EventPing && conn != nil {
		// The server drops sessions that leave PINGs unanswered.
		if err := conn.SendCommand(irc.CmdPong, ""); err != nil {
			s.logger.Warnf(context.Background(), "answering ping: %v", err)
		} else {
			s.mu.Lock()
			s.pingsAnswered++
			s.mu.Unlock()
		}
	}

	if s.onEvent != nil {
		s.onEvent(ev)
	}
}

// Say sends a chat message to the configured channel.
func (s *SessionService) Say(message string) error {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()

	if conn == nil {
		return irc.ErrDisconnected
	}
	if err := conn.SendCommand(irc.CmdPrivmsg, message); err != nil {
		return err
	}

	s.mu.Lock()
	s.messagesSent++
	s.mu.Unlock()
	return nil
}

// Stop closes the connector, which also unblocks a running read loop.
func (s *SessionService) Stop() {
	s.mu.Lock()
	conn := s.conn
	s.conn = nil
	s.status = "stopped"
	s.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
}

func (s *SessionService) setStatus(status string) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

func (s *SessionService) GetStats() ports.SessionStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.config.GetConfig()
	uptime := time.Since(s.startTime).Truncate(time.Second)

	return ports.SessionStats{
		Status:        s.status,
		Uptime:        uptime.String(),
		UptimeSeconds: math.Floor(uptime.Seconds()),
		MessagesRecv:  s.messagesRecv,
		MessagesSent:  s.messagesSent,
		PingsAnswered: s.pingsAnswered,
		Channel:       cfg.Session.Channel,
		Nickname:      cfg.Session.Nickname,
	}
}
