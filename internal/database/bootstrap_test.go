package database

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSampleProducts(t *testing.T) {
	products := SampleProducts()
	assert.Len(t, products, 6)

	slugs := make(map[string]bool, len(products))
	for _, p := range products {
		assert.False(t, slugs[p.Slug], "duplicate slug %s", p.Slug)
		slugs[p.Slug] = true

		assert.True(t, p.Price.IsPositive(), p.Slug)
		assert.True(t, p.Rating.GreaterThanOrEqual(decimal.Zero) && p.Rating.LessThanOrEqual(decimal.NewFromInt(5)), p.Slug)
		assert.GreaterOrEqual(t, p.Stock, 0)
		assert.Zero(t, p.ID, "ids are assigned by the database")
	}
	assert.True(t, slugs["nike-air-max-270"])
}
