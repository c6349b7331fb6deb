package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line in a session's cart.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"size:255;index" json:"session_id"`
	ProductID uint      `gorm:"not null" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-"`
	Quantity  int       `gorm:"default:1" json:"quantity"`
	Size      string    `gorm:"size:10" json:"size"`
	Color     string    `gorm:"size:50" json:"color"`
	AddedAt   time.Time `gorm:"autoCreateTime" json:"added_at"`
}

func (CartItem) TableName() string {
	return "cart"
}

// CartLine is a cart row joined with the product fields shown in the cart.
type CartLine struct {
	ID        uint            `json:"id"`
	SessionID string          `json:"session_id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	AddedAt   time.Time       `json:"added_at"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category"`
}
