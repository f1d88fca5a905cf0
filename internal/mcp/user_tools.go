package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"taskboard/internal/service"
)

type createUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type getUserInput struct {
	ID uint `json:"id"`
}

type listUsersInput struct{}

type updateUserInput struct {
	ID    uint    `json:"id"`
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

type deleteUserInput struct {
	ID uint `json:"id"`
}

func (s *Server) registerUserTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_user",
		Description: "Create a user. Email must be unique across all users.",
	}, s.handleCreateUser)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_user",
		Description: "Get a user by id.",
	}, s.handleGetUser)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_users",
		Description: "List all users ordered by id.",
	}, s.handleListUsers)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_user",
		Description: "Update a user's name and/or email. Only supplied fields change.",
	}, s.handleUpdateUser)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_user",
		Description: "Delete a user. The user's projects and their tasks are deleted as well.",
	}, s.handleDeleteUser)
}

func (s *Server) handleCreateUser(ctx context.Context, req *mcp.CallToolRequest, input createUserInput) (*mcp.CallToolResult, any, error) {
	user, err := s.users.Create(ctx, service.CreateUserInput{Name: input.Name, Email: input.Email})
	if err != nil {
		return nil, nil, err
	}
	return textResult("Created user " + formatUser(user)), nil, nil
}

func (s *Server) handleGetUser(ctx context.Context, req *mcp.CallToolRequest, input getUserInput) (*mcp.CallToolResult, any, error) {
	if input.ID == 0 {
		return nil, nil, errors.New("id is required")
	}
	user, err := s.users.Get(ctx, input.ID)
	if err != nil {
		return nil, nil, err
	}
	return textResult(formatUser(user)), nil, nil
}

func (s *Server) handleListUsers(ctx context.Context, req *mcp.CallToolRequest, input listUsersInput) (*mcp.CallToolResult, any, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return textResult(formatUserList(users)), nil, nil
}

func (s *Server) handleUpdateUser(ctx context.Context, req *mcp.CallToolRequest, input updateUserInput) (*mcp.CallToolResult, any, error) {
	if input.ID == 0 {
		return nil, nil, errors.New("id is required")
	}
	user, err := s.users.Update(ctx, input.ID, service.UpdateUserInput{Name: input.Name, Email: input.Email})
	if err != nil {
		return nil, nil, err
	}
	return textResult("Updated user " + formatUser(user)), nil, nil
}

func (s *Server) handleDeleteUser(ctx context.Context, req *mcp.CallToolRequest, input deleteUserInput) (*mcp.CallToolResult, any, error) {
	if input.ID == 0 {
		return nil, nil, errors.New("id is required")
	}
	if err := s.users.Delete(ctx, input.ID); err != nil {
		return nil, nil, err
	}
	return textResult(fmt.Sprintf("Deleted user #%d and all of their projects and tasks.", input.ID)), nil, nil
}
