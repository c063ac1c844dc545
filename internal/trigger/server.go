package trigger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/averill/deckd/internal/logging"
)

const (
	writeWait = 10 * time.Second

	// readLimit bounds a press event message; anything larger is abuse.
	readLimit = 1024
)

// Presser is the part of the navigator the trigger server drives.
type Presser interface {
	Press(ctx context.Context, row, col int)
	Path() []string
}

// PressEvent is a remote press request, addressed by grid position.
type PressEvent struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Ack is sent back after each press with the resulting menu path.
type Ack struct {
	OK    bool     `json:"ok"`
	Error string   `json:"error,omitempty"`
	Path  []string `json:"path,omitempty"`
}

// Config holds the trigger server configuration.
type Config struct {
	Host string
	Port int
	// Advertise registers the server over mDNS when true.
	Advertise bool
}

// Server accepts press events over websocket and forwards them to the
// navigator, letting hardware pads or phone apps drive the deck remotely.
type Server struct {
	config   Config
	presser  Presser
	rows     int
	cols     int
	upgrader websocket.Upgrader

	mu          sync.Mutex
	activeConns map[string]*websocket.Conn

	httpServer *http.Server
	wg         sync.WaitGroup
}

// New creates a trigger server driving the given presser on a rows x cols grid.
func New(config Config, presser Presser, rows, cols int) *Server {
	return &Server{
		config:  config,
		presser: presser,
		rows:    rows,
		cols:    cols,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  256,
			WriteBufferSize: 256,
			// Local-network control surface, same trust model as the keyboard.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		activeConns: make(map[string]*websocket.Conn),
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.httpServer = &http.Server{Handler: mux}

	logging.Info("Trigger server listening", zap.String("addr", listener.Addr().String()))

	var announcer *Announcer
	if s.config.Advertise {
		port := listener.Addr().(*net.TCPAddr).Port
		announcer, err = Announce(port)
		if err != nil {
			logging.Warn("mDNS advertisement failed, continuing without", zap.Error(err))
		}
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		s.shutdown(announcer)
		return nil
	case err := <-errChan:
		if announcer != nil {
			announcer.Shutdown()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) shutdown(announcer *Announcer) {
	logging.Info("Trigger server shutting down")
	if announcer != nil {
		announcer.Shutdown()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Warn("Trigger server shutdown error", zap.Error(err))
	}

	s.mu.Lock()
	for addr, conn := range s.activeConns {
		logging.Debug("Closing trigger connection", zap.String("remote_addr", addr))
		_ = conn.Close()
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("Websocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	remoteAddr := conn.RemoteAddr().String()
	conn.SetReadLimit(readLimit)

	s.mu.Lock()
	s.activeConns[remoteAddr] = conn
	s.mu.Unlock()

	logging.Info("Trigger client connected", zap.String("remote_addr", remoteAddr))

	s.wg.Add(1)
	defer s.wg.Done()
	defer func() {
		_ = conn.Close()
		s.mu.Lock()
		delete(s.activeConns, remoteAddr)
		s.mu.Unlock()
		logging.Info("Trigger client disconnected", zap.String("remote_addr", remoteAddr))
	}()

	s.readLoop(r.Context(), conn, remoteAddr)
}

func (s *Server) readLoop(ctx context.Context, conn *websocket.Conn, remoteAddr string) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Warn("Trigger read error",
					zap.String("remote_addr", remoteAddr),
					zap.Error(err),
				)
			}
			return
		}

		var ev PressEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			s.writeAck(conn, Ack{OK: false, Error: "malformed press event"})
			continue
		}
		if ev.Row < 0 || ev.Row >= s.rows || ev.Col < 0 || ev.Col >= s.cols {
			s.writeAck(conn, Ack{OK: false, Error: fmt.Sprintf("position %d,%d outside %dx%d grid", ev.Row, ev.Col, s.rows, s.cols)})
			continue
		}

		logging.LogPress("trigger", ev.Row, ev.Col, "")
		s.presser.Press(ctx, ev.Row, ev.Col)
		s.writeAck(conn, Ack{OK: true, Path: s.presser.Path()})
	}
}

func (s *Server) writeAck(conn *websocket.Conn, ack Ack) {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(ack); err != nil {
		logging.Debug("Failed to write ack", zap.Error(err))
	}
}

// ActiveConnections returns the number of connected trigger clients.
func (s *Server) ActiveConnections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.activeConns)
}
