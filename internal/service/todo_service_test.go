package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tomlord1122/storefront-backend/internal/apperror"
	"github.com/Tomlord1122/storefront-backend/internal/domain"
	"github.com/Tomlord1122/storefront-backend/internal/repository"
)

func newTodoService() TodoService {
	store := repository.NewMemoryTodoStore(0, domain.DefaultTodoSeed()...)
	return NewTodoService(store, newTestLogger())
}

func TestTodoService_Flow(t *testing.T) {
	svc := newTodoService()
	ctx := context.Background()

	created, err := svc.CreateTodo(ctx, CreateTodoRequest{Text: " X "})
	require.NoError(t, err)
	assert.Equal(t, "X", created.Text)

	done := true
	updated, err := svc.UpdateTodo(ctx, created.ID, UpdateTodoRequest{Completed: &done})
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalTodos)
	assert.Equal(t, 3, stats.CompletedTodos)
	assert.Equal(t, 1, stats.PendingTodos)

	list, err := svc.ListTodos(ctx)
	require.NoError(t, err)
	assert.Len(t, list.Todos, 4)
	assert.Equal(t, int64(1), list.Stats.Views)

	deleted, err := svc.DeleteTodo(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = svc.GetTodo(ctx, created.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestTodoService_CreateValidation(t *testing.T) {
	svc := newTodoService()
	_, err := svc.CreateTodo(context.Background(), CreateTodoRequest{Text: "   "})
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Equal(t, "Todo text is required", err.Error())
}
