package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Tomlord1122/storefront-backend/internal/apperror"
	"github.com/Tomlord1122/storefront-backend/internal/domain"
)

// TodoStore defines the operations of the todo list store.
type TodoStore interface {
	// List returns all todos oldest first and counts one view.
	List(ctx context.Context) ([]domain.Todo, domain.TodoStats, error)
	GetByID(ctx context.Context, id uint64) (*domain.Todo, error)
	Create(ctx context.Context, text string) (*domain.Todo, error)
	Update(ctx context.Context, id uint64, patch domain.TodoPatch) (*domain.Todo, error)
	Delete(ctx context.Context, id uint64) (*domain.Todo, error)
	Stats(ctx context.Context) (domain.TodoStats, error)
}

// MemoryTodoStore keeps todos in process memory. The mutex covers the slice,
// the id sequence and every counter, so each method is one atomic step.
type MemoryTodoStore struct {
	mu        sync.Mutex
	todos     []domain.Todo
	nextID    uint64
	total     int
	completed int
	views     int64
	now       func() time.Time
}

// NewMemoryTodoStore creates a store holding seed in the given order. Counters
// are derived from the seed and the next id follows the largest seeded id.
func NewMemoryTodoStore(views int64, seed ...domain.Todo) *MemoryTodoStore {
	s := &MemoryTodoStore{
		todos:  make([]domain.Todo, 0, len(seed)),
		nextID: 1,
		views:  views,
		now:    time.Now,
	}
	for _, t := range seed {
		s.todos = append(s.todos, t)
		s.total++
		if t.Completed {
			s.completed++
		}
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return s
}

func (s *MemoryTodoStore) List(ctx context.Context) ([]domain.Todo, domain.TodoStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.views++
	out := make([]domain.Todo, len(s.todos))
	copy(out, s.todos)
	return out, s.statsLocked(), nil
}

func (s *MemoryTodoStore) GetByID(ctx context.Context, id uint64) (*domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return nil, todoNotFound()
	}
	t := s.todos[i]
	return &t, nil
}

func (s *MemoryTodoStore) Create(ctx context.Context, text string) (*domain.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperror.Validation("Todo text is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := domain.Todo{
		ID:        s.nextID,
		Text:      text,
		Completed: false,
		CreatedAt: s.now().UTC(),
	}
	s.nextID++
	s.todos = append(s.todos, t)
	s.total++

	return &t, nil
}

func (s *MemoryTodoStore) Update(ctx context.Context, id uint64, patch domain.TodoPatch) (*domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return nil, todoNotFound()
	}
	t := &s.todos[i]

	if patch.Text != nil {
		t.Text = *patch.Text
	}
	if patch.Completed != nil && *patch.Completed != t.Completed {
		t.Completed = *patch.Completed
		if t.Completed {
			s.completed++
		} else {
			s.completed--
		}
	}

	out := *t
	return &out, nil
}

func (s *MemoryTodoStore) Delete(ctx context.Context, id uint64) (*domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return nil, todoNotFound()
	}
	removed := s.todos[i]

	s.total--
	if removed.Completed {
		s.completed--
	}
	s.todos = append(s.todos[:i], s.todos[i+1:]...)

	return &removed, nil
}

func (s *MemoryTodoStore) Stats(ctx context.Context) (domain.TodoStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statsLocked(), nil
}

func (s *MemoryTodoStore) statsLocked() domain.TodoStats {
	return domain.TodoStats{
		TotalTodos:     s.total,
		CompletedTodos: s.completed,
		PendingTodos:   s.total - s.completed,
		Views:          s.views,
	}
}

func (s *MemoryTodoStore) indexLocked(id uint64) int {
	for i := range s.todos {
		if s.todos[i].ID == id {
			return i
		}
	}
	return -1
}

func todoNotFound() error {
	return apperror.NotFound("Todo not found")
}
