package service

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/Tomlord1122/storefront-backend/internal/apperror"
	"github.com/Tomlord1122/storefront-backend/internal/domain"
	"github.com/Tomlord1122/storefront-backend/internal/repository"
)

// AddToCartRequest is the body of POST /api/cart.
type AddToCartRequest struct {
	SessionID string `json:"sessionId" validate:"max=255"`
	ProductID uint   `json:"productId" validate:"required"`
	// Quantity defaults to 1 when omitted.
	Quantity int    `json:"quantity" validate:"min=1"`
	Size     string `json:"size" validate:"max=10"`
	Color    string `json:"color" validate:"max=50"`
}

// CreateOrderRequest is the body of POST /api/orders. Any status sent by the
// client is ignored.
type CreateOrderRequest struct {
	CustomerName  string          `json:"customerName" validate:"required,max=255"`
	CustomerEmail string          `json:"customerEmail" validate:"required,email,max=255"`
	CustomerPhone string          `json:"customerPhone" validate:"max=20"`
	Address       string          `json:"address"`
	Total         decimal.Decimal `json:"total"`
}

// ShopService defines the storefront operations behind the shop API.
type ShopService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	// GetProductBySlug returns (nil, nil) for an unknown slug.
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	GetCart(ctx context.Context, sessionID string) ([]domain.CartLine, error)
	AddToCart(ctx context.Context, req AddToCartRequest) error
	RemoveFromCart(ctx context.Context, cartID uint) error
	CreateOrder(ctx context.Context, req CreateOrderRequest) (uint, error)
	Stats(ctx context.Context) (*domain.ShopStats, error)
}

type shopService struct {
	repo   repository.ShopRepository
	logger *slog.Logger
}

func NewShopService(repo repository.ShopRepository, logger *slog.Logger) ShopService {
	return &shopService{repo: repo, logger: logger}
}

func (s *shopService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "listed products", slog.Int("count", len(products)))
	return products, nil
}

func (s *shopService) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return s.repo.GetProductBySlug(ctx, slug)
}

func (s *shopService) GetCart(ctx context.Context, sessionID string) ([]domain.CartLine, error) {
	return s.repo.ListCartItems(ctx, sessionID)
}

func (s *shopService) AddToCart(ctx context.Context, req AddToCartRequest) error {
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if err := validateRequest(req); err != nil {
		return err
	}

	item := &domain.CartItem{
		SessionID: req.SessionID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Size:      req.Size,
		Color:     req.Color,
	}
	if err := s.repo.AddCartItem(ctx, item); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "cart item added",
		slog.String("session_id", req.SessionID),
		slog.Uint64("product_id", uint64(req.ProductID)),
	)
	return nil
}

func (s *shopService) RemoveFromCart(ctx context.Context, cartID uint) error {
	return s.repo.RemoveCartItem(ctx, cartID)
}

func (s *shopService) CreateOrder(ctx context.Context, req CreateOrderRequest) (uint, error) {
	if err := validateRequest(req); err != nil {
		return 0, err
	}
	if req.Total.IsNegative() {
		return 0, apperror.Validation("field 'total' must be greater than or equal to 0")
	}

	order := &domain.Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Address:       req.Address,
		Total:         req.Total,
		Status:        domain.OrderStatusPending,
	}
	id, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return 0, err
	}

	s.logger.InfoContext(ctx, "order created", slog.Uint64("order_id", uint64(id)))
	return id, nil
}

func (s *shopService) Stats(ctx context.Context) (*domain.ShopStats, error) {
	products, err := s.repo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.CountOrders(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.ShopStats{
		TotalProducts: products,
		TotalOrders:   orders,
		CartItems:     0,
	}, nil
}
