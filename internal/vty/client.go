package vty

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
)

// Session is a client connection to the daemon's vty socket.
type Session struct {
	conn   net.Conn
	reader *bufio.Reader
}

// Dial opens a session on socketPath.
func Dial(ctx context.Context, socketPath string) (*Session, error) {
	conn, err := (&net.Dialer{}).DialContext(ctx, "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("connect to zrpcd (%s): %w", socketPath, err)
	}
	return &Session{conn: conn, reader: bufio.NewReader(conn)}, nil
}

// Execute sends one command line and waits for its result.
func (s *Session) Execute(line string) (Result, error) {
	data, err := json.Marshal(Request{Line: line})
	if err != nil {
		return Result{}, fmt.Errorf("marshal request: %w", err)
	}
	data = append(data, '\n')

	if _, err := s.conn.Write(data); err != nil {
		return Result{}, fmt.Errorf("send request: %w", err)
	}

	respLine, err := s.reader.ReadBytes('\n')
	if err != nil {
		return Result{}, fmt.Errorf("read response: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(respLine, &resp); err != nil {
		return Result{}, fmt.Errorf("parse response: %w", err)
	}

	res := Result{Status: ParseStatus(resp.Status), Output: resp.Output}
	if resp.Error != "" {
		res.Err = errors.New(resp.Error)
	}
	return res, nil
}

// Close ends the session.
func (s *Session) Close() error {
	return s.conn.Close()
}
