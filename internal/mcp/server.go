// Package mcp exposes the repositories as Model Context Protocol tools.
//
// This is the composition root: every tool and resource is registered
// here, backed by exactly one service call each. No business logic
// lives in the handlers beyond argument shaping.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"taskboard/internal/config"
	"taskboard/internal/service"
)

const (
	serverName    = "taskboard"
	serverVersion = "0.1.0"
)

// Server wires the entity services into an MCP server.
type Server struct {
	users    *service.UserService
	projects *service.ProjectService
	tasks    *service.TaskService
	server   *mcp.Server
	addr     string
}

func New(users *service.UserService, projects *service.ProjectService, tasks *service.TaskService, cfg *config.Config) *Server {
	s := &Server{
		users:    users,
		projects: projects,
		tasks:    tasks,
		server:   mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil),
		addr:     cfg.ListenAddr,
	}

	s.registerUserTools()
	s.registerProjectTools()
	s.registerTaskTools()
	s.registerResources()

	return s
}

// Run serves MCP over stdio, or over streamable HTTP when a listen
// address is configured, until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	if s.addr == "" {
		log.Println("[info] mcp server on stdio")
		return s.server.Run(ctx, &mcp.StdioTransport{})
	}
	return s.serveHTTP(ctx)
}

func (s *Server) serveHTTP(ctx context.Context) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return s.server }, nil)
	httpServer := &http.Server{Addr: s.addr, Handler: handler}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()
	log.Printf("[info] mcp server listening on %s", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
