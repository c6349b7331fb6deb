package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// Order is created once at checkout and never changed afterwards.
type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CustomerName  string          `gorm:"size:255;not null" json:"customer_name"`
	CustomerEmail string          `gorm:"size:255;not null" json:"customer_email"`
	CustomerPhone string          `gorm:"size:20" json:"customer_phone"`
	Address       string          `gorm:"type:text" json:"address"`
	Total         decimal.Decimal `gorm:"type:numeric(10,2)" json:"total"`
	Status        OrderStatus     `gorm:"size:20;check:status IN ('pending','confirmed','shipped','delivered')" json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}
