package service

import (
	"context"
	"log/slog"

	"github.com/Tomlord1122/storefront-backend/internal/domain"
	"github.com/Tomlord1122/storefront-backend/internal/repository"
)

// CreateTodoRequest is the body of POST /api/todos.
type CreateTodoRequest struct {
	Text string `json:"text"`
}

// UpdateTodoRequest is the body of PUT /api/todos/{id}. Pointers tell an
// omitted field apart from a zero value.
type UpdateTodoRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// TodoList is a page of todos together with the counters at read time.
type TodoList struct {
	Todos []domain.Todo
	Stats domain.TodoStats
}

// TodoService defines the operations of the todo API.
type TodoService interface {
	ListTodos(ctx context.Context) (*TodoList, error)
	GetTodo(ctx context.Context, id uint64) (*domain.Todo, error)
	CreateTodo(ctx context.Context, req CreateTodoRequest) (*domain.Todo, error)
	UpdateTodo(ctx context.Context, id uint64, req UpdateTodoRequest) (*domain.Todo, error)
	DeleteTodo(ctx context.Context, id uint64) (*domain.Todo, error)
	Stats(ctx context.Context) (domain.TodoStats, error)
}

type todoService struct {
	store  repository.TodoStore
	logger *slog.Logger
}

func NewTodoService(store repository.TodoStore, logger *slog.Logger) TodoService {
	return &todoService{store: store, logger: logger}
}

func (s *todoService) ListTodos(ctx context.Context) (*TodoList, error) {
	todos, stats, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return &TodoList{Todos: todos, Stats: stats}, nil
}

func (s *todoService) GetTodo(ctx context.Context, id uint64) (*domain.Todo, error) {
	return s.store.GetByID(ctx, id)
}

func (s *todoService) CreateTodo(ctx context.Context, req CreateTodoRequest) (*domain.Todo, error) {
	todo, err := s.store.Create(ctx, req.Text)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "todo created", slog.Uint64("id", todo.ID))
	return todo, nil
}

func (s *todoService) UpdateTodo(ctx context.Context, id uint64, req UpdateTodoRequest) (*domain.Todo, error) {
	todo, err := s.store.Update(ctx, id, domain.TodoPatch{Text: req.Text, Completed: req.Completed})
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "todo updated", slog.Uint64("id", id), slog.Bool("completed", todo.Completed))
	return todo, nil
}

func (s *todoService) DeleteTodo(ctx context.Context, id uint64) (*domain.Todo, error) {
	todo, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "todo deleted", slog.Uint64("id", id))
	return todo, nil
}

func (s *todoService) Stats(ctx context.Context) (domain.TodoStats, error) {
	return s.store.Stats(ctx)
}
