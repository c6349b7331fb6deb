package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Products are only created by bootstrap and are
// read-only through the API.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Slug        string          `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Rating      decimal.Decimal `gorm:"type:numeric(3,2);default:4.5" json:"rating"`
	Reviews     int             `gorm:"default:0" json:"reviews"`
	Stock       int             `gorm:"default:0" json:"stock"`
	Image       []byte          `gorm:"type:bytea" json:"-"`
	ImageMime   string          `gorm:"size:50" json:"-"`
	Category    string          `gorm:"size:100" json:"category"`
	CreatedAt   time.Time       `json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// ProductPublicColumns are the columns exposed by listings and slug lookups.
// The image blob is never part of them.
var ProductPublicColumns = []string{
	"id", "name", "slug", "description", "price", "rating", "reviews", "stock", "category",
}
