package mcp

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/config"
	"taskboard/internal/repository"
	"taskboard/internal/service"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := repository.NewDB(dsn)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	return New(
		service.NewUserService(repository.NewUserRepository(db)),
		service.NewProjectService(repository.NewProjectRepository(db)),
		service.NewTaskService(repository.NewTaskRepository(db)),
		&config.Config{},
	)
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestUserToolRoundTrip(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	res, _, err := s.handleCreateUser(ctx, nil, createUserInput{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)
	out := resultText(t, res)
	assert.Contains(t, out, "Created user #1")
	assert.Contains(t, out, "John Doe <john@example.com>")

	res, _, err = s.handleGetUser(ctx, nil, getUserInput{ID: 1})
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "John Doe")

	_, _, err = s.handleGetUser(ctx, nil, getUserInput{})
	require.EqualError(t, err, "id is required")

	_, _, err = s.handleGetUser(ctx, nil, getUserInput{ID: 42})
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, _, err = s.handleCreateUser(ctx, nil, createUserInput{Name: "Impostor", Email: "john@example.com"})
	require.ErrorIs(t, err, repository.ErrConflict)

	res, _, err = s.handleListUsers(ctx, nil, listUsersInput{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resultText(t, res), "1 user(s):"))

	name := "Johnny"
	res, _, err = s.handleUpdateUser(ctx, nil, updateUserInput{ID: 1, Name: &name})
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "Johnny")

	res, _, err = s.handleDeleteUser(ctx, nil, deleteUserInput{ID: 1})
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "Deleted user #1")

	res, _, err = s.handleListUsers(ctx, nil, listUsersInput{})
	require.NoError(t, err)
	assert.Equal(t, "No users found.", resultText(t, res))
}

func TestProjectToolsRequireExistingUser(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, _, err := s.handleCreateProject(ctx, nil, createProjectInput{UserID: 7, Title: "Ghost"})
	require.ErrorIs(t, err, repository.ErrReferential)

	res, _, err := s.handleListProjects(ctx, nil, listProjectsInput{})
	require.NoError(t, err)
	assert.Equal(t, "No projects found.", resultText(t, res))
}

func TestTaskScenario(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, _, err := s.handleCreateUser(ctx, nil, createUserInput{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)
	_, _, err = s.handleCreateProject(ctx, nil, createProjectInput{UserID: 1, Title: "Website Redesign"})
	require.NoError(t, err)

	res, _, err := s.handleCreateTask(ctx, nil, createTaskInput{
		ProjectID: 1,
		Title:     "Design homepage mockup",
		Status:    "todo",
		Deadline:  "2026-01-15",
	})
	require.NoError(t, err)
	out := resultText(t, res)
	assert.Contains(t, out, "[todo]")
	assert.Contains(t, out, "due 2026-01-15")

	_, _, err = s.handleCreateTask(ctx, nil, createTaskInput{ProjectID: 1, Title: "Bad", Status: "bogus"})
	require.ErrorIs(t, err, repository.ErrValidation)

	status := "in-progress"
	res, _, err = s.handleUpdateTask(ctx, nil, updateTaskInput{ID: 1, Status: &status})
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "[in-progress]")

	res, _, err = s.handleTaskStatistics(ctx, nil, taskStatisticsInput{ProjectID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Task counts by status:\nin-progress: 1", resultText(t, res))

	res, _, err = s.handleListTasksByStatus(ctx, nil, listTasksByStatusInput{Status: "done"})
	require.NoError(t, err)
	assert.Equal(t, "No tasks found.", resultText(t, res))

	res, _, err = s.handleDeleteTask(ctx, nil, deleteTaskInput{ID: 1})
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "Deleted task #1")

	res, _, err = s.handleTaskStatistics(ctx, nil, taskStatisticsInput{})
	require.NoError(t, err)
	assert.Equal(t, "No tasks found.", resultText(t, res))
}

func TestResources(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, _, err := s.handleCreateUser(ctx, nil, createUserInput{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)
	_, _, err = s.handleCreateProject(ctx, nil, createProjectInput{UserID: 1, Title: "Website Redesign"})
	require.NoError(t, err)
	_, _, err = s.handleCreateTask(ctx, nil, createTaskInput{ProjectID: 1, Title: "Design homepage mockup"})
	require.NoError(t, err)

	res, err := s.handleStatisticsResource(ctx, nil)
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, statisticsURI, res.Contents[0].URI)
	assert.Equal(t, "application/json", res.Contents[0].MIMEType)
	assert.Contains(t, res.Contents[0].Text, `"todo": 1`)

	res, err = s.handleUsersResource(ctx, nil)
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Contains(t, res.Contents[0].Text, "john@example.com")
}
