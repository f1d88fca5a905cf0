package mcp

import (
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"taskboard/internal/model"
)

const dateLayout = "2006-01-02"

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func formatUser(u *model.User) string {
	return fmt.Sprintf("#%d %s <%s> (created %s)", u.ID, u.Name, u.Email, u.CreatedAt.Format(dateLayout))
}

func formatProject(p *model.Project) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "#%d %s (user #%d, created %s)", p.ID, p.Title, p.UserID, p.CreatedAt.Format(dateLayout))
	if p.Description != "" {
		fmt.Fprintf(&sb, "\n   %s", p.Description)
	}
	return sb.String()
}

func formatTask(t *model.Task) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "#%d %s [%s] (project #%d", t.ID, t.Title, t.Status, t.ProjectID)
	if t.Deadline != nil {
		fmt.Fprintf(&sb, ", due %s", t.Deadline.Format(dateLayout))
	}
	sb.WriteString(")")
	return sb.String()
}

func formatUserList(users []model.User) string {
	if len(users) == 0 {
		return "No users found."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d user(s):\n", len(users))
	for i := range users {
		sb.WriteString(formatUser(&users[i]))
		sb.WriteByte('\n')
	}
	return strings.TrimSpace(sb.String())
}

func formatProjectList(projects []model.Project) string {
	if len(projects) == 0 {
		return "No projects found."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d project(s):\n", len(projects))
	for i := range projects {
		sb.WriteString(formatProject(&projects[i]))
		sb.WriteByte('\n')
	}
	return strings.TrimSpace(sb.String())
}

func formatTaskList(tasks []model.Task) string {
	if len(tasks) == 0 {
		return "No tasks found."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d task(s):\n", len(tasks))
	for i := range tasks {
		sb.WriteString(formatTask(&tasks[i]))
		sb.WriteByte('\n')
	}
	return strings.TrimSpace(sb.String())
}

// formatStatistics renders counts in the enum's declared order so the
// output is deterministic; absent statuses are skipped entirely.
func formatStatistics(counts map[model.TaskStatus]int64) string {
	if len(counts) == 0 {
		return "No tasks found."
	}
	var sb strings.Builder
	sb.WriteString("Task counts by status:\n")
	for _, status := range model.Statuses() {
		if n, ok := counts[status]; ok {
			fmt.Fprintf(&sb, "%s: %d\n", status, n)
		}
	}
	return strings.TrimSpace(sb.String())
}
