package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/agentx-labs/devkit/internal/protocol"
)

const maxMessageSize = 10 * 1024 * 1024

// Dispatcher handles capability methods.
type Dispatcher interface {
	Dispatch(ctx context.Context, method string, params json.RawMessage) (interface{}, error)
}

// Info identifies the server in the handshake.
type Info struct {
	Name    string
	Version string
}

// Server is a JSON-RPC server over line-delimited streams.
type Server struct {
	dispatcher Dispatcher
	info       Info
	logger     *zap.Logger
}

// New creates a Server.
func New(d Dispatcher, info Info, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{dispatcher: d, info: info, logger: logger}
}

// Serve reads requests from in and writes responses to out until in is
// exhausted or ctx is cancelled. In-flight requests are allowed to finish
// (their context is cancelled too) before Serve returns. A clean shutdown
// returns nil.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan []byte)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxMessageSize)
		for scanner.Scan() {
			line := append([]byte(nil), scanner.Bytes()...)
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	w := &lineWriter{w: out}
	var g errgroup.Group

	s.logger.Info("server started", zap.String("name", s.info.Name), zap.String("version", s.info.Version))
	for {
		select {
		case <-ctx.Done():
			_ = g.Wait()
			s.logger.Info("server stopped", zap.String("reason", "context cancelled"))
			return nil
		case line, ok := <-lines:
			if !ok {
				_ = g.Wait()
				if err := <-readErr; err != nil {
					return fmt.Errorf("reading requests: %w", err)
				}
				s.logger.Info("server stopped", zap.String("reason", "input closed"))
				return nil
			}
			g.Go(func() error {
				s.handleLine(ctx, line, w)
				return nil
			})
		}
	}
}

func (s *Server) handleLine(ctx context.Context, line []byte, w *lineWriter) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return
	}

	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		code, msg := protocol.CodeInvalidRequest, "Invalid request"
		if !json.Valid(line) {
			code, msg = protocol.CodeParseError, "Parse error"
		}
		s.logger.Warn("rejected message", zap.Int("code", code), zap.Error(err))
		s.write(w, Response{ID: nullID, Error: &protocol.Error{Code: code, Message: msg}})
		return
	}

	if req.JSONRPC != jsonrpcVersion || req.Method == "" {
		if !req.IsNotification() {
			s.write(w, Response{ID: req.ID, Error: &protocol.Error{
				Code:    protocol.CodeInvalidRequest,
				Message: "Invalid request",
			}})
		}
		return
	}

	result, err := s.handle(ctx, &req)
	if req.IsNotification() {
		if err != nil {
			s.logger.Debug("notification failed", zap.String("method", req.Method), zap.Error(err))
		}
		return
	}

	resp := Response{ID: req.ID}
	if err != nil {
		pe, ok := protocol.AsError(err)
		if !ok {
			pe = protocol.Internal(req.Method, err)
		}
		resp.Error = pe
	} else {
		resp.Result = result
	}
	s.write(w, resp)
}

func (s *Server) handle(ctx context.Context, req *Request) (interface{}, error) {
	s.logger.Debug("request", zap.String("method", req.Method), zap.ByteString("id", req.ID))

	switch {
	case req.Method == "initialize":
		return s.initialize(req.Params)
	case req.Method == "ping":
		return struct{}{}, nil
	case strings.HasPrefix(req.Method, "notifications/"):
		return nil, nil
	default:
		return s.dispatcher.Dispatch(ctx, req.Method, req.Params)
	}
}

func (s *Server) initialize(raw json.RawMessage) (interface{}, error) {
	var p initializeParams
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, protocol.InvalidParams("Invalid params: %v", err)
		}
	}
	version := p.ProtocolVersion
	if version == "" {
		version = mcp.LATEST_PROTOCOL_VERSION
	}
	s.logger.Info("client connected",
		zap.String("client", p.ClientInfo.Name),
		zap.String("client_version", p.ClientInfo.Version),
		zap.String("protocol_version", version),
	)
	return initializeResult{
		ProtocolVersion: version,
		Capabilities: map[string]interface{}{
			"tools":     map[string]interface{}{},
			"resources": map[string]interface{}{},
			"prompts":   map[string]interface{}{},
		},
		ServerInfo: serverInfo{Name: s.info.Name, Version: s.info.Version},
	}, nil
}

func (s *Server) write(w *lineWriter, resp Response) {
	resp.JSONRPC = jsonrpcVersion
	if resp.Result == nil && resp.Error == nil {
		resp.Result = struct{}{}
	}
	if err := w.WriteJSON(resp); err != nil {
		s.logger.Error("writing response", zap.Error(err))
	}
}

// lineWriter serializes whole-line writes from concurrent handlers.
type lineWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lineWriter) WriteJSON(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	data = append(data, '\n')

	lw.mu.Lock()
	defer lw.mu.Unlock()
	_, err = lw.w.Write(data)
	return err
}
