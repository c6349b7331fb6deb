package domain

import "time"

type Todo struct {
	ID        uint64    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// TodoPatch carries the optional fields of an update. Nil means "leave as is".
type TodoPatch struct {
	Text      *string
	Completed *bool
}

// DefaultTodoSeed returns the sample todos a fresh todo app starts with.
func DefaultTodoSeed() []Todo {
	return []Todo{
		{ID: 1, Text: "Learn Go", Completed: true, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Text: "Build a REST API", Completed: true, CreatedAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{ID: 3, Text: "Deploy to production", Completed: false, CreatedAt: time.Date(2024, 2, 7, 0, 0, 0, 0, time.UTC)},
	}
}
