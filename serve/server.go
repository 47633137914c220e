// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package serve

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	"github.com/bureau-foundation/console"
	"github.com/bureau-foundation/console/lib/netutil"
	"github.com/bureau-foundation/console/menu"
)

// Server exposes one menu tree as a line-oriented network service. Each
// accepted connection gets its own console session over the shared
// tree: menu position, input buffer, and overflow state are per
// connection, while the tree itself is immutable and shared.
type Server struct {
	// Network is the listener network: "tcp" or "unix". Empty means tcp.
	Network string

	// Address is the TCP host:port or Unix socket path to listen on.
	Address string

	// Root is the menu tree served to every connection.
	Root *menu.Menu

	// Banner, when set, is written to each connection before the first
	// prompt.
	Banner string

	// Prompt overrides the session prompt. Nil keeps the default "> ".
	Prompt console.PromptFunc

	// IdleTimeout closes connections that send no input for this long.
	// Zero means no timeout.
	IdleTimeout time.Duration

	// LineCapacity and MaxDepth configure each session's input buffer
	// and menu stack limit. Zero values use the console defaults.
	LineCapacity int
	MaxDepth     int

	// Echo writes input bytes back to the connection as they arrive,
	// for character-mode clients that display nothing on their own.
	Echo bool

	// HandlerContext is an opaque value handed to every handler and
	// hook through the session. The server never inspects it.
	HandlerContext any

	// Logger receives structured log output. If nil, slog.Default() is
	// used. Per-connection events are logged at Info level; dispatch
	// detail at Debug.
	Logger *slog.Logger

	network     string
	listener    net.Listener
	cancel      context.CancelFunc
	done        chan struct{}
	connections sync.WaitGroup
}

// logger returns the configured logger or the default.
func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Start validates the tree, binds the listener, and begins serving
// connections in the background. It returns once the listener is bound
// and accepting, or returns an error if binding fails. The server runs
// until Stop is called or the context is cancelled.
//
// A stale Unix socket file at the configured path is removed before
// listening, and the socket file is removed again on shutdown.
func (s *Server) Start(ctx context.Context) error {
	if s.Root == nil {
		return fmt.Errorf("serve: Root menu is required")
	}
	if s.Address == "" {
		return fmt.Errorf("serve: Address is required")
	}
	if err := s.Root.Validate(); err != nil {
		return fmt.Errorf("serve: invalid menu tree: %w", err)
	}

	s.network = s.Network
	if s.network == "" {
		s.network = "tcp"
	}
	if s.network == "unix" {
		if err := os.Remove(s.Address); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("serve: removing stale socket %s: %w", s.Address, err)
		}
	}

	listener, err := net.Listen(s.network, s.Address)
	if err != nil {
		return fmt.Errorf("serve: failed to listen on %s: %w", s.Address, err)
	}
	s.listener = listener

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	// Cancellation must unblock Accept, or a cancelled server would keep
	// accepting connections until Stop.
	unregister := context.AfterFunc(ctx, func() { listener.Close() })

	go func() {
		defer close(s.done)
		defer unregister()
		s.acceptLoop(ctx)
	}()

	s.logger().Info("console server listening",
		"network", s.network,
		"address", listener.Addr().String(),
	)
	return nil
}

// Addr returns the listener's address, useful when binding to port 0.
// Returns nil if the server has not been started.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Stop shuts down the server: the listener closes, live connections are
// closed, and Stop returns once every session has ended.
func (s *Server) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.listener != nil {
		s.listener.Close()
	}
	if s.done != nil {
		<-s.done
	}
}

// Wait blocks until the server has stopped.
func (s *Server) Wait() {
	if s.done != nil {
		<-s.done
	}
}

// acceptLoop accepts connections and runs one session per connection.
// It waits for all in-flight sessions to finish before returning, so
// that closing the done channel signals full quiescence.
func (s *Server) acceptLoop(ctx context.Context) {
	var connectionCount int64

	for {
		connection, err := s.listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}
			s.logger().Error("accept failed", "error", err)
			continue
		}

		connectionCount++
		connectionID := connectionCount
		s.connections.Add(1)
		go func() {
			defer s.connections.Done()
			s.handleConnection(ctx, connection, connectionID)
		}()
	}

	s.connections.Wait()
	if s.network == "unix" {
		os.Remove(s.Address)
	}
}

// handleConnection runs one console session over the connection until
// the peer disconnects, the session closes, the idle timeout fires, or
// the server shuts down.
func (s *Server) handleConnection(ctx context.Context, connection net.Conn, connectionID int64) {
	defer connection.Close()

	logger := s.logger().With("connection_id", connectionID)
	logger.Info("connection accepted", "remote_addr", connection.RemoteAddr())

	// Unblock the read loop when the server shuts down.
	stop := context.AfterFunc(ctx, func() { connection.Close() })
	defer stop()

	output := console.CRLFWriter(connection)

	options := []console.Option{
		console.WithEcho(s.Echo),
		console.WithRootExit(console.RootExitClose),
		console.WithLogger(logger),
	}
	if s.Prompt != nil {
		options = append(options, console.WithPrompt(s.Prompt))
	}
	if s.LineCapacity > 0 {
		options = append(options, console.WithLineCapacity(s.LineCapacity))
	}
	if s.MaxDepth > 0 {
		options = append(options, console.WithMaxDepth(s.MaxDepth))
	}
	if s.HandlerContext != nil {
		options = append(options, console.WithContext(s.HandlerContext))
	}

	session, err := console.New(s.Root, output, options...)
	if err != nil {
		logger.Error("session setup failed", "error", err)
		return
	}

	if s.Banner != "" {
		if _, err := io.WriteString(output, s.Banner+"\n"); err != nil {
			logger.Debug("banner write failed", "error", err)
			return
		}
	}
	if err := session.Start(); err != nil {
		logger.Debug("session start failed", "error", err)
		return
	}

	reader := bufio.NewReader(connection)
	for {
		if s.IdleTimeout > 0 {
			connection.SetReadDeadline(time.Now().Add(s.IdleTimeout))
		}
		input, err := reader.ReadByte()
		if err != nil {
			var netError net.Error
			switch {
			case errors.As(err, &netError) && netError.Timeout():
				io.WriteString(output, "\nidle timeout, closing connection\n")
				logger.Info("connection idle, closing")
			case netutil.IsExpectedCloseError(err):
				logger.Info("connection closed by peer")
			default:
				logger.Error("read failed", "error", err)
			}
			return
		}

		if err := session.InputByte(input); err != nil {
			if !netutil.IsExpectedCloseError(err) {
				logger.Debug("session write failed", "error", err)
			}
			return
		}
		if session.Closed() {
			logger.Info("session closed")
			return
		}
	}
}
