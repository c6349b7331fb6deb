package server

import (
	_ "embed"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Tomlord1122/storefront-backend/internal/domain"
	"github.com/Tomlord1122/storefront-backend/internal/service"
)

//go:embed static/index.html
var todoIndexHTML []byte

type todoListResponse struct {
	Success   bool             `json:"success"`
	Data      []domain.Todo    `json:"data"`
	Stats     domain.TodoStats `json:"stats"`
	Timestamp string           `json:"timestamp"`
}

func (s *TodoServer) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogging(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(prometheusMetrics("todo"))
	r.Use(permissiveCORS())

	r.NotFound(s.notFoundHandler)
	r.MethodNotAllowed(s.notFoundHandler)

	r.Get("/", s.indexHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.healthHandler)
		r.Get("/stats", s.statsHandler)

		r.Route("/todos", func(r chi.Router) {
			r.Get("/", s.listTodosHandler)
			r.Post("/", s.createTodoHandler)
			r.Get("/{id:[0-9]+}", s.getTodoHandler)
			r.Put("/{id:[0-9]+}", s.updateTodoHandler)
			r.Delete("/{id:[0-9]+}", s.deleteTodoHandler)
		})
	})

	return r
}

func (s *TodoServer) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	msg := "Not found"
	if strings.HasPrefix(r.URL.Path, "/api/") {
		msg = "API endpoint not found"
	}
	s.respondWithError(w, http.StatusNotFound, msg)
}

func (s *TodoServer) indexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(todoIndexHTML)
}

func (s *TodoServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *TodoServer) listTodosHandler(w http.ResponseWriter, r *http.Request) {
	list, err := s.todoService.ListTodos(r.Context())
	if err != nil {
		s.respondWithAppError(w, r, err)
		return
	}
	s.respondWithJSON(w, http.StatusOK, todoListResponse{
		Success:   true,
		Data:      list.Todos,
		Stats:     list.Stats,
		Timestamp: s.now().UTC().Format(time.RFC3339Nano),
	})
}

func (s *TodoServer) createTodoHandler(w http.ResponseWriter, r *http.Request) {
	var req service.CreateTodoRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondWithAppError(w, r, err)
		return
	}

	todo, err := s.todoService.CreateTodo(r.Context(), req)
	if err != nil {
		s.respondWithAppError(w, r, err)
		return
	}
	s.respondWithJSON(w, http.StatusCreated, dataResponse{Success: true, Data: todo, Status: http.StatusCreated})
}

func (s *TodoServer) getTodoHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := s.todoID(w, r)
	if !ok {
		return
	}

	todo, err := s.todoService.GetTodo(r.Context(), id)
	if err != nil {
		s.respondWithAppError(w, r, err)
		return
	}
	s.respondWithData(w, http.StatusOK, todo)
}

func (s *TodoServer) updateTodoHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := s.todoID(w, r)
	if !ok {
		return
	}

	var req service.UpdateTodoRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondWithAppError(w, r, err)
		return
	}

	todo, err := s.todoService.UpdateTodo(r.Context(), id, req)
	if err != nil {
		s.respondWithAppError(w, r, err)
		return
	}
	s.respondWithData(w, http.StatusOK, todo)
}

func (s *TodoServer) deleteTodoHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := s.todoID(w, r)
	if !ok {
		return
	}

	todo, err := s.todoService.DeleteTodo(r.Context(), id)
	if err != nil {
		s.respondWithAppError(w, r, err)
		return
	}
	s.respondWithData(w, http.StatusOK, todo)
}

func (s *TodoServer) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.todoService.Stats(r.Context())
	if err != nil {
		s.respondWithAppError(w, r, err)
		return
	}
	s.respondWithData(w, http.StatusOK, stats)
}

// todoID parses the {id} segment. The route pattern only admits digits, so a
// failure here means the number overflowed; that id cannot exist.
func (s *TodoServer) todoID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.respondWithError(w, http.StatusNotFound, "Todo not found")
		return 0, false
	}
	return id, true
}
