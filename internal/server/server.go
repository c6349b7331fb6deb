package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Tomlord1122/storefront-backend/internal/database"
	"github.com/Tomlord1122/storefront-backend/internal/service"
)

// ShopServer serves the product, cart and order API.
type ShopServer struct {
	shopService service.ShopService
	db          database.Service
	responder
}

// TodoServer serves the todo API and its browser front end.
type TodoServer struct {
	todoService service.TodoService
	responder
	now func() time.Time
}

func NewShopServer(shopService service.ShopService, db database.Service, logger *slog.Logger) *ShopServer {
	return &ShopServer{shopService: shopService, db: db, responder: responder{logger: logger}}
}

func NewTodoServer(todoService service.TodoService, logger *slog.Logger) *TodoServer {
	return &TodoServer{todoService: todoService, responder: responder{logger: logger}, now: time.Now}
}

// NewHTTPServer wraps handler with the timeouts both APIs use.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
