package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	statisticsURI = "taskboard://statistics"
	usersURI      = "taskboard://users"
)

func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         statisticsURI,
		Name:        "statistics",
		Description: "Task counts by status across all projects.",
		MIMEType:    "application/json",
	}, s.handleStatisticsResource)
	s.server.AddResource(&mcp.Resource{
		URI:         usersURI,
		Name:        "users",
		Description: "All registered users.",
		MIMEType:    "application/json",
	}, s.handleUsersResource)
}

func (s *Server) handleStatisticsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	counts, err := s.tasks.Statistics(ctx, nil)
	if err != nil {
		return nil, err
	}
	return jsonResourceResult(statisticsURI, counts)
}

func (s *Server) handleUsersResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResourceResult(usersURI, users)
}

func jsonResourceResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal resource %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{URI: uri, MIMEType: "application/json", Text: string(b)},
		},
	}, nil
}
