package vty

import (
	"bufio"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/xdg/zrpcd/internal/clog"
)

// Request is one command line sent over the vty socket.
type Request struct {
	Line string `json:"line"`
}

// Response is the outcome of one Request.
type Response struct {
	Status string   `json:"status"`
	Output []string `json:"output,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// Handler executes one command line. The daemon's handler forwards the
// line to its control loop so every command runs on that one goroutine.
type Handler func(line string) Result

// Server listens on a unix socket. A connection is a session: newline
// delimited JSON requests are answered in order until the client closes.
type Server struct {
	socketPath string
	handler    Handler

	listener net.Listener
	wg       sync.WaitGroup
	shutdown chan struct{}
	mu       sync.Mutex // protects listener, conns and shutdown state
	conns    map[net.Conn]struct{}
}

// NewServer creates a Server for socketPath.
func NewServer(socketPath string, handler Handler) *Server {
	return &Server{
		socketPath: socketPath,
		handler:    handler,
		shutdown:   make(chan struct{}),
		conns:      make(map[net.Conn]struct{}),
	}
}

// Start begins listening on the unix socket.
// It creates the parent directory if needed and sets socket permissions to 0600.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.socketPath), 0o700); err != nil {
		return err
	}

	// Remove a stale socket left by a previous run
	if err := os.Remove(s.socketPath); err != nil && !os.IsNotExist(err) {
		return err
	}

	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return err
	}

	if err := os.Chmod(s.socketPath, 0o600); err != nil {
		listener.Close()
		return err
	}

	s.listener = listener

	s.wg.Add(1)
	go s.acceptLoop(listener)

	return nil
}

// Stop closes the listener and every open session, then waits for the
// session goroutines to finish.
func (s *Server) Stop() error {
	s.mu.Lock()
	if s.listener == nil {
		s.mu.Unlock()
		return nil
	}

	close(s.shutdown)
	err := s.listener.Close()
	s.listener = nil
	for conn := range s.conns {
		conn.Close()
	}
	s.mu.Unlock()

	s.wg.Wait()

	os.Remove(s.socketPath)

	return err
}

// SocketPath returns the path to the unix socket.
func (s *Server) SocketPath() string {
	return s.socketPath
}

// Accept failures such as EMFILE are retried after a delay that doubles
// from minAcceptDelay up to maxAcceptDelay.
const (
	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = time.Second
)

func nextAcceptDelay(d time.Duration) time.Duration {
	if d == 0 {
		return minAcceptDelay
	}
	return min(2*d, maxAcceptDelay)
}

func (s *Server) acceptLoop(listener net.Listener) {
	defer s.wg.Done()

	var delay time.Duration
	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-s.shutdown:
				return
			default:
			}
			delay = nextAcceptDelay(delay)
			clog.Warn("vty accept: %v; retrying in %v", err, delay)
			select {
			case <-s.shutdown:
				return
			case <-time.After(delay):
			}
			continue
		}
		delay = 0

		s.mu.Lock()
		select {
		case <-s.shutdown:
			s.mu.Unlock()
			conn.Close()
			return
		default:
		}
		s.conns[conn] = struct{}{}
		s.mu.Unlock()

		s.wg.Add(1)
		go s.handleConnection(conn)
	}
}

// handleConnection serves one vtysh session.
func (s *Server) handleConnection(conn net.Conn) {
	defer s.wg.Done()
	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			return
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			s.writeResponse(conn, Response{Status: StatusError.String(), Error: "invalid JSON: " + err.Error()})
			continue
		}

		select {
		case <-s.shutdown:
			s.writeResponse(conn, Response{Status: StatusError.String(), Error: "server shutting down"})
			return
		default:
		}

		if clog.DebugEnabled(clog.DebugNetwork) {
			clog.Debug("vty: %s", req.Line)
		}
		s.writeResponse(conn, toResponse(s.handler(req.Line)))
	}
}

func toResponse(res Result) Response {
	resp := Response{Status: res.Status.String(), Output: res.Output}
	if res.Err != nil {
		resp.Error = res.Err.Error()
	}
	return resp
}

// writeResponse writes a JSON response to the connection.
func (s *Server) writeResponse(conn net.Conn, resp Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		_, _ = conn.Write([]byte(`{"status":"error","error":"failed to marshal response"}` + "\n"))
		return
	}
	data = append(data, '\n')
	_, _ = conn.Write(data) // Ignore write error; connection may be closed
}
