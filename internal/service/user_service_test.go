package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/repository"
)

func TestUserServiceValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.Create(ctx, CreateUserInput{Email: "john@example.com"})
	require.ErrorIs(t, err, repository.ErrValidation)

	_, err = f.users.Create(ctx, CreateUserInput{Name: "John Doe"})
	require.ErrorIs(t, err, repository.ErrValidation)

	user, err := f.users.Create(ctx, CreateUserInput{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)

	empty := ""
	_, err = f.users.Update(ctx, user.ID, UpdateUserInput{Name: &empty})
	require.ErrorIs(t, err, repository.ErrValidation)

	_, err = f.users.Update(ctx, user.ID, UpdateUserInput{})
	require.ErrorIs(t, err, repository.ErrValidation)

	name := "Johnny"
	updated, err := f.users.Update(ctx, user.ID, UpdateUserInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Johnny", updated.Name)
	assert.Equal(t, "john@example.com", updated.Email)
}

func TestUserServiceDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.Create(ctx, CreateUserInput{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)

	_, err = f.users.Create(ctx, CreateUserInput{Name: "Impostor", Email: "john@example.com"})
	require.ErrorIs(t, err, repository.ErrConflict)
}

func TestProjectServiceValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.projects.Create(ctx, CreateProjectInput{Title: "No owner"})
	require.ErrorIs(t, err, repository.ErrValidation)

	user, err := f.users.Create(ctx, CreateUserInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = f.projects.Create(ctx, CreateProjectInput{UserID: user.ID})
	require.ErrorIs(t, err, repository.ErrValidation)

	_, err = f.projects.Create(ctx, CreateProjectInput{UserID: 9999, Title: "Ghost"})
	require.ErrorIs(t, err, repository.ErrReferential)

	project, err := f.projects.Create(ctx, CreateProjectInput{UserID: user.ID, Title: "Alpha", Description: "first"})
	require.NoError(t, err)
	assert.Equal(t, "first", project.Description)

	_, err = f.projects.Update(ctx, project.ID, UpdateProjectInput{})
	require.ErrorIs(t, err, repository.ErrValidation)

	desc := ""
	updated, err := f.projects.Update(ctx, project.ID, UpdateProjectInput{Description: &desc})
	require.NoError(t, err)
	assert.Empty(t, updated.Description)
}
