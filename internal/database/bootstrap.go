package database

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Tomlord1122/storefront-backend/internal/domain"
)

// SampleProducts is the catalog inserted into an empty products table.
func SampleProducts() []domain.Product {
	p := func(name, slug, desc, price, rating string, reviews, stock int) domain.Product {
		return domain.Product{
			Name:        name,
			Slug:        slug,
			Description: desc,
			Price:       decimal.RequireFromString(price),
			Rating:      decimal.RequireFromString(rating),
			Reviews:     reviews,
			Stock:       stock,
			Category:    "Shoes",
		}
	}
	return []domain.Product{
		p("Nike Air Max 270", "nike-air-max-270", "Premium sneaker with Air Max technology", "290.00", "4.5", 60, 50),
		p("Premium Running Shoes", "premium-running-shoes", "High performance running shoe", "189.99", "4.3", 45, 30),
		p("Classic Leather Sneaker", "classic-leather-sneaker", "Timeless design with comfort", "149.99", "4.7", 80, 40),
		p("Sports Basketball Shoe", "sports-basketball-shoe", "Perfect for court and street", "159.99", "4.4", 55, 25),
		p("Casual Canvas Shoe", "casual-canvas-shoe", "Everyday wear comfort", "89.99", "4.2", 35, 60),
		p("Athletic Running Shoe", "athletic-running-shoe", "Lightweight and responsive", "129.99", "4.6", 72, 35),
	}
}

// Bootstrap creates the shop schema and seeds the sample catalog when the
// products table is empty. The count-then-insert is not safe against two
// instances starting at once.
func Bootstrap(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(&domain.Product{}, &domain.CartItem{}, &domain.Order{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	var count int64
	if err := db.Model(&domain.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	products := SampleProducts()
	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	return nil
}
