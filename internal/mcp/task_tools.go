package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"taskboard/internal/service"
)

type createTaskInput struct {
	ProjectID uint   `json:"project_id"`
	Title     string `json:"title"`
	Status    string `json:"status,omitempty"`
	Deadline  string `json:"deadline,omitempty"`
}

type getTaskInput struct {
	ID uint `json:"id"`
}

type listTasksInput struct {
	ProjectID uint    `json:"project_id,omitempty"`
	Status    *string `json:"status,omitempty"`
}

type listProjectTasksInput struct {
	ProjectID uint `json:"project_id"`
}

type listTasksByStatusInput struct {
	Status string `json:"status"`
}

type listOverdueTasksInput struct {
	ProjectID uint `json:"project_id,omitempty"`
}

type listUpcomingTasksInput struct {
	ProjectID uint `json:"project_id,omitempty"`
	Days      int  `json:"days,omitempty"`
}

type updateTaskInput struct {
	ID       uint    `json:"id"`
	Title    *string `json:"title,omitempty"`
	Status   *string `json:"status,omitempty"`
	Deadline *string `json:"deadline,omitempty"`
}

type deleteTaskInput struct {
	ID uint `json:"id"`
}

type taskStatisticsInput struct {
	ProjectID uint `json:"project_id,omitempty"`
}

func (s *Server) registerTaskTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_task",
		Description: "Create a task under an existing project. Status is one of todo, in-progress, done (default todo); deadline is an optional YYYY-MM-DD date.",
	}, s.handleCreateTask)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_task",
		Description: "Get a task by id.",
	}, s.handleGetTask)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_tasks",
		Description: "List tasks ordered by id, optionally filtered by project and/or status.",
	}, s.handleListTasks)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_project_tasks",
		Description: "List every task under one project.",
	}, s.handleListProjectTasks)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_tasks_by_status",
		Description: "List every task in a given status across all projects.",
	}, s.handleListTasksByStatus)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_overdue_tasks",
		Description: "List unfinished tasks whose deadline has passed, optionally scoped to one project.",
	}, s.handleListOverdueTasks)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_upcoming_tasks",
		Description: "List unfinished tasks due within the next N days (default 7), optionally scoped to one project.",
	}, s.handleListUpcomingTasks)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_task",
		Description: "Update a task's title, status and/or deadline. Only supplied fields change.",
	}, s.handleUpdateTask)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_task",
		Description: "Delete a task by id.",
	}, s.handleDeleteTask)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_task_statistics",
		Description: "Count tasks grouped by status, optionally scoped to one project. Statuses with no tasks are omitted.",
	}, s.handleTaskStatistics)
}

func (s *Server) handleCreateTask(ctx context.Context, req *mcp.CallToolRequest, input createTaskInput) (*mcp.CallToolResult, any, error) {
	task, err := s.tasks.Create(ctx, service.CreateTaskInput{
		ProjectID: input.ProjectID,
		Title:     input.Title,
		Status:    input.Status,
		Deadline:  input.Deadline,
	})
	if err != nil {
		return nil, nil, err
	}
	return textResult("Created task " + formatTask(task)), nil, nil
}

func (s *Server) handleGetTask(ctx context.Context, req *mcp.CallToolRequest, input getTaskInput) (*mcp.CallToolResult, any, error) {
	if input.ID == 0 {
		return nil, nil, errors.New("id is required")
	}
	task, err := s.tasks.Get(ctx, input.ID)
	if err != nil {
		return nil, nil, err
	}
	return textResult(formatTask(task)), nil, nil
}

func (s *Server) handleListTasks(ctx context.Context, req *mcp.CallToolRequest, input listTasksInput) (*mcp.CallToolResult, any, error) {
	var projectID *uint
	if input.ProjectID != 0 {
		projectID = &input.ProjectID
	}
	tasks, err := s.tasks.List(ctx, projectID, input.Status)
	if err != nil {
		return nil, nil, err
	}
	return textResult(formatTaskList(tasks)), nil, nil
}

func (s *Server) handleListProjectTasks(ctx context.Context, req *mcp.CallToolRequest, input listProjectTasksInput) (*mcp.CallToolResult, any, error) {
	if input.ProjectID == 0 {
		return nil, nil, errors.New("project_id is required")
	}
	tasks, err := s.tasks.List(ctx, &input.ProjectID, nil)
	if err != nil {
		return nil, nil, err
	}
	return textResult(formatTaskList(tasks)), nil, nil
}

func (s *Server) handleListTasksByStatus(ctx context.Context, req *mcp.CallToolRequest, input listTasksByStatusInput) (*mcp.CallToolResult, any, error) {
	if input.Status == "" {
		return nil, nil, errors.New("status is required")
	}
	tasks, err := s.tasks.List(ctx, nil, &input.Status)
	if err != nil {
		return nil, nil, err
	}
	return textResult(formatTaskList(tasks)), nil, nil
}

func (s *Server) handleListOverdueTasks(ctx context.Context, req *mcp.CallToolRequest, input listOverdueTasksInput) (*mcp.CallToolResult, any, error) {
	var projectID *uint
	if input.ProjectID != 0 {
		projectID = &input.ProjectID
	}
	tasks, err := s.tasks.ListOverdue(ctx, projectID, time.Now())
	if err != nil {
		return nil, nil, err
	}
	return textResult(formatTaskList(tasks)), nil, nil
}

func (s *Server) handleListUpcomingTasks(ctx context.Context, req *mcp.CallToolRequest, input listUpcomingTasksInput) (*mcp.CallToolResult, any, error) {
	var projectID *uint
	if input.ProjectID != 0 {
		projectID = &input.ProjectID
	}
	tasks, err := s.tasks.ListUpcoming(ctx, projectID, time.Now(), input.Days)
	if err != nil {
		return nil, nil, err
	}
	return textResult(formatTaskList(tasks)), nil, nil
}

func (s *Server) handleUpdateTask(ctx context.Context, req *mcp.CallToolRequest, input updateTaskInput) (*mcp.CallToolResult, any, error) {
	if input.ID == 0 {
		return nil, nil, errors.New("id is required")
	}
	task, err := s.tasks.Update(ctx, input.ID, service.UpdateTaskInput{
		Title:    input.Title,
		Status:   input.Status,
		Deadline: input.Deadline,
	})
	if err != nil {
		return nil, nil, err
	}
	return textResult("Updated task " + formatTask(task)), nil, nil
}

func (s *Server) handleDeleteTask(ctx context.Context, req *mcp.CallToolRequest, input deleteTaskInput) (*mcp.CallToolResult, any, error) {
	if input.ID == 0 {
		return nil, nil, errors.New("id is required")
	}
	if err := s.tasks.Delete(ctx, input.ID); err != nil {
		return nil, nil, err
	}
	return textResult(fmt.Sprintf("Deleted task #%d.", input.ID)), nil, nil
}

func (s *Server) handleTaskStatistics(ctx context.Context, req *mcp.CallToolRequest, input taskStatisticsInput) (*mcp.CallToolResult, any, error) {
	var projectID *uint
	if input.ProjectID != 0 {
		projectID = &input.ProjectID
	}
	counts, err := s.tasks.Statistics(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	return textResult(formatStatistics(counts)), nil, nil
}
