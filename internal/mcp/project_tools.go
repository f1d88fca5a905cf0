package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"taskboard/internal/service"
)

type createProjectInput struct {
	UserID      uint   `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type getProjectInput struct {
	ID uint `json:"id"`
}

type listProjectsInput struct {
	UserID uint `json:"user_id,omitempty"`
}

type listUserProjectsInput struct {
	UserID uint `json:"user_id"`
}

type updateProjectInput struct {
	ID          uint    `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type deleteProjectInput struct {
	ID uint `json:"id"`
}

func (s *Server) registerProjectTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_project",
		Description: "Create a project owned by an existing user.",
	}, s.handleCreateProject)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_project",
		Description: "Get a project by id.",
	}, s.handleGetProject)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_projects",
		Description: "List projects ordered by id, optionally filtered by owning user.",
	}, s.handleListProjects)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_user_projects",
		Description: "List every project owned by one user.",
	}, s.handleListUserProjects)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_project",
		Description: "Update a project's title and/or description. Only supplied fields change.",
	}, s.handleUpdateProject)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project. Its tasks are deleted as well.",
	}, s.handleDeleteProject)
}

func (s *Server) handleCreateProject(ctx context.Context, req *mcp.CallToolRequest, input createProjectInput) (*mcp.CallToolResult, any, error) {
	project, err := s.projects.Create(ctx, service.CreateProjectInput{
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
	})
	if err != nil {
		return nil, nil, err
	}
	return textResult("Created project " + formatProject(project)), nil, nil
}

func (s *Server) handleGetProject(ctx context.Context, req *mcp.CallToolRequest, input getProjectInput) (*mcp.CallToolResult, any, error) {
	if input.ID == 0 {
		return nil, nil, errors.New("id is required")
	}
	project, err := s.projects.Get(ctx, input.ID)
	if err != nil {
		return nil, nil, err
	}
	return textResult(formatProject(project)), nil, nil
}

func (s *Server) handleListProjects(ctx context.Context, req *mcp.CallToolRequest, input listProjectsInput) (*mcp.CallToolResult, any, error) {
	var userID *uint
	if input.UserID != 0 {
		userID = &input.UserID
	}
	projects, err := s.projects.List(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return textResult(formatProjectList(projects)), nil, nil
}

func (s *Server) handleListUserProjects(ctx context.Context, req *mcp.CallToolRequest, input listUserProjectsInput) (*mcp.CallToolResult, any, error) {
	if input.UserID == 0 {
		return nil, nil, errors.New("user_id is required")
	}
	projects, err := s.projects.List(ctx, &input.UserID)
	if err != nil {
		return nil, nil, err
	}
	return textResult(formatProjectList(projects)), nil, nil
}

func (s *Server) handleUpdateProject(ctx context.Context, req *mcp.CallToolRequest, input updateProjectInput) (*mcp.CallToolResult, any, error) {
	if input.ID == 0 {
		return nil, nil, errors.New("id is required")
	}
	project, err := s.projects.Update(ctx, input.ID, service.UpdateProjectInput{
		Title:       input.Title,
		Description: input.Description,
	})
	if err != nil {
		return nil, nil, err
	}
	return textResult("Updated project " + formatProject(project)), nil, nil
}

func (s *Server) handleDeleteProject(ctx context.Context, req *mcp.CallToolRequest, input deleteProjectInput) (*mcp.CallToolResult, any, error) {
	if input.ID == 0 {
		return nil, nil, errors.New("id is required")
	}
	if err := s.projects.Delete(ctx, input.ID); err != nil {
		return nil, nil, err
	}
	return textResult(fmt.Sprintf("Deleted project #%d and all of its tasks.", input.ID)), nil, nil
}
