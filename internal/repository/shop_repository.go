package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/Tomlord1122/storefront-backend/internal/apperror"
	"github.com/Tomlord1122/storefront-backend/internal/domain"
)

// SQLSTATE for foreign_key_violation.
const pgForeignKeyViolation = "23503"

// ShopRepository defines the relational store behind the shop API.
// Every method is a single round-trip through the connection pool.
type ShopRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	// GetProductBySlug returns (nil, nil) when no product has the slug.
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	ListCartItems(ctx context.Context, sessionID string) ([]domain.CartLine, error)
	AddCartItem(ctx context.Context, item *domain.CartItem) error
	RemoveCartItem(ctx context.Context, id uint) error
	CreateOrder(ctx context.Context, order *domain.Order) (uint, error)
	CountProducts(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
}

type gormShopRepository struct {
	db *gorm.DB
}

// NewGormShopRepository creates a ShopRepository backed by GORM.
func NewGormShopRepository(db *gorm.DB) ShopRepository {
	return &gormShopRepository{db: db}
}

func (r *gormShopRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products := make([]domain.Product, 0)
	result := r.db.WithContext(ctx).
		Select(domain.ProductPublicColumns).
		Order("id").
		Find(&products)
	if result.Error != nil {
		return nil, apperror.Storage(result.Error)
	}
	return products, nil
}

func (r *gormShopRepository) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	var products []domain.Product
	// Find with Limit instead of First so an empty result is not an error.
	result := r.db.WithContext(ctx).
		Select(domain.ProductPublicColumns).
		Where("slug = ?", slug).
		Limit(1).
		Find(&products)
	if result.Error != nil {
		return nil, apperror.Storage(result.Error)
	}
	if len(products) == 0 {
		return nil, nil
	}
	return &products[0], nil
}

func (r *gormShopRepository) ListCartItems(ctx context.Context, sessionID string) ([]domain.CartLine, error) {
	lines := make([]domain.CartLine, 0)
	if sessionID == "" {
		return lines, nil
	}

	result := r.db.WithContext(ctx).
		Table("cart AS c").
		Select("c.id, c.session_id, c.product_id, c.quantity, c.size, c.color, c.added_at, p.name, p.price, p.category").
		Joins("JOIN products p ON c.product_id = p.id").
		Where("c.session_id = ?", sessionID).
		Order("c.id").
		Scan(&lines)
	if result.Error != nil {
		return nil, apperror.Storage(result.Error)
	}
	return lines, nil
}

func (r *gormShopRepository) AddCartItem(ctx context.Context, item *domain.CartItem) error {
	// Omit the association so GORM never tries to upsert the product.
	result := r.db.WithContext(ctx).Omit("Product").Create(item)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return apperror.Referential(result.Error)
		}
		return apperror.Storage(result.Error)
	}
	return nil
}

func (r *gormShopRepository) RemoveCartItem(ctx context.Context, id uint) error {
	// Zero rows affected is still success.
	result := r.db.WithContext(ctx).Delete(&domain.CartItem{}, id)
	if result.Error != nil {
		return apperror.Storage(result.Error)
	}
	return nil
}

func (r *gormShopRepository) CreateOrder(ctx context.Context, order *domain.Order) (uint, error) {
	order.ID = 0
	order.Status = domain.OrderStatusPending
	result := r.db.WithContext(ctx).Create(order)
	if result.Error != nil {
		return 0, apperror.Storage(result.Error)
	}
	return order.ID, nil
}

func (r *gormShopRepository) CountProducts(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&n).Error; err != nil {
		return 0, apperror.Storage(err)
	}
	return n, nil
}

func (r *gormShopRepository) CountOrders(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Order{}).Count(&n).Error; err != nil {
		return 0, apperror.Storage(err)
	}
	return n, nil
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
