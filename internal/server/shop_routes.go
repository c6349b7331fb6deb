package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Tomlord1122/storefront-backend/internal/apperror"
	"github.com/Tomlord1122/storefront-backend/internal/service"
)

func (s *ShopServer) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogging(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(prometheusMetrics("shop"))
	r.Use(permissiveCORS())

	r.NotFound(s.notFoundHandler)
	r.MethodNotAllowed(s.notFoundHandler)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.healthHandler)
		r.Get("/health/db", s.dbHealthHandler)
		r.Get("/stats", s.statsHandler)

		r.Get("/products", s.listProductsHandler)
		r.Get("/products/{slug}", s.getProductHandler)

		r.Get("/cart", s.getCartHandler)
		r.Post("/cart", s.addToCartHandler)
		r.Delete("/cart/{cartId}", s.removeFromCartHandler)

		r.Post("/orders", s.createOrderHandler)
	})

	return r
}

func (s *ShopServer) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, http.StatusNotFound, errorResponse{Success: false, Error: "Not found", Status: http.StatusNotFound})
}

func (s *ShopServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *ShopServer) dbHealthHandler(w http.ResponseWriter, r *http.Request) {
	healthStats := s.db.Health()
	if status, ok := healthStats["status"]; ok && status == "down" {
		s.respondWithJSON(w, http.StatusServiceUnavailable, healthStats)
		return
	}
	s.respondWithJSON(w, http.StatusOK, healthStats)
}

func (s *ShopServer) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := s.shopService.ListProducts(r.Context())
	if err != nil {
		s.respondWithAppError(w, r, err)
		return
	}
	s.respondWithData(w, http.StatusOK, products)
}

func (s *ShopServer) getProductHandler(w http.ResponseWriter, r *http.Request) {
	product, err := s.shopService.GetProductBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		s.respondWithAppError(w, r, err)
		return
	}
	if product == nil {
		s.respondWithData(w, http.StatusOK, nil)
		return
	}
	s.respondWithData(w, http.StatusOK, product)
}

func (s *ShopServer) getCartHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.shopService.GetCart(r.Context(), r.URL.Query().Get("sessionId"))
	if err != nil {
		s.respondWithAppError(w, r, err)
		return
	}
	s.respondWithData(w, http.StatusOK, items)
}

func (s *ShopServer) addToCartHandler(w http.ResponseWriter, r *http.Request) {
	var req service.AddToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondWithAppError(w, r, err)
		return
	}

	if err := s.shopService.AddToCart(r.Context(), req); err != nil {
		s.respondWithAppError(w, r, err)
		return
	}
	s.respondWithJSON(w, http.StatusOK, ackResponse{Success: true})
}

func (s *ShopServer) removeFromCartHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "cartId"), 10, 64)
	if err != nil {
		s.respondWithAppError(w, r, apperror.Validation("Invalid cart item id"))
		return
	}

	if err := s.shopService.RemoveFromCart(r.Context(), uint(id)); err != nil {
		s.respondWithAppError(w, r, err)
		return
	}
	s.respondWithJSON(w, http.StatusOK, ackResponse{Success: true})
}

func (s *ShopServer) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req service.CreateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondWithAppError(w, r, err)
		return
	}

	id, err := s.shopService.CreateOrder(r.Context(), req)
	if err != nil {
		s.respondWithAppError(w, r, err)
		return
	}
	s.respondWithJSON(w, http.StatusOK, ackResponse{Success: true, OrderID: &id})
}

func (s *ShopServer) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.shopService.Stats(r.Context())
	if err != nil {
		s.respondWithAppError(w, r, err)
		return
	}
	s.respondWithData(w, http.StatusOK, stats)
}
