// Package server exposes the test-code generators as MCP tools.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/BRIKEV/twd-mcp/internal/config"
	"github.com/BRIKEV/twd-mcp/internal/version"
)

// Name is the server name announced during MCP initialization.
const Name = "twd-mcp"

const shutdownTimeout = 5 * time.Second

// Server wraps the MCP server with a logger.
type Server struct {
	mcp    *mcpserver.MCPServer
	logger *zap.Logger
}

// New creates an MCP server with all twd-mcp tools registered.
func New(logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{logger: logger}
	s.mcp = mcpserver.NewMCPServer(
		Name,
		version.Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
		mcpserver.WithToolHandlerMiddleware(s.logCalls),
	)
	s.registerTools()
	return s
}

// MCP returns the underlying server, e.g. for in-process clients.
func (s *Server) MCP() *mcpserver.MCPServer {
	return s.mcp
}

// Serve runs the configured transport until it fails or ctx is cancelled.
func (s *Server) Serve(ctx context.Context, cfg config.ServeConfig) error {
	switch cfg.Transport {
	case config.TransportStdio:
		s.logger.Info("serving MCP", zap.String("transport", cfg.Transport))
		return mcpserver.ServeStdio(s.mcp, mcpserver.WithErrorLogger(zap.NewStdLog(s.logger)))
	case config.TransportHTTP:
		return s.serveHTTP(ctx, cfg.Addr)
	default:
		return fmt.Errorf("unsupported transport: %s (use %s or %s)", cfg.Transport, config.TransportStdio, config.TransportHTTP)
	}
}

func (s *Server) serveHTTP(ctx context.Context, addr string) error {
	httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving MCP", zap.String("transport", config.TransportHTTP), zap.String("addr", addr))
		errCh <- httpServer.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

type loggerKey struct{}

// logCalls tags every tool call with a call_id and logs its outcome.
func (s *Server) logCalls(next mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := s.logger.With(
			zap.String("call_id", uuid.NewString()),
			zap.String("tool", request.Params.Name),
		)
		start := time.Now()
		logger.Debug("tool call started")

		result, err := next(context.WithValue(ctx, loggerKey{}, logger), request)

		elapsed := zap.Duration("elapsed", time.Since(start))
		switch {
		case err != nil:
			logger.Error("tool call failed", zap.Error(err), elapsed)
		case result != nil && result.IsError:
			logger.Warn("tool call rejected", zap.String("reason", resultText(result)), elapsed)
		default:
			logger.Info("tool call completed", elapsed)
		}
		return result, err
	}
}

// loggerFrom returns the per-call logger installed by logCalls.
func (s *Server) loggerFrom(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
		return l
	}
	return s.logger
}

func resultText(result *mcp.CallToolResult) string {
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}
