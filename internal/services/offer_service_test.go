// internal/services/offer_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"productshop/internal/models"
)

func testProducts(n int) []models.Product {
	products := make([]models.Product, n)
	for i := range products {
		products[i] = models.Product{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Price:     decimal.NewFromInt(int64((i + 1) * 10)),
		}
	}
	return products
}

// sequenceRand replays a fixed list of draw indices.
func sequenceRand(seq []int) func(n int) int {
	i := 0
	return func(n int) int {
		v := seq[i%len(seq)] % n
		i++
		return v
	}
}

func TestPickOffersEmptyCatalog(t *testing.T) {
	offers := PickOffers(nil, sequenceRand([]int{0}))
	assert.Nil(t, offers)
}

func TestPickOffersDistinctDraws(t *testing.T) {
	products := testProducts(10)

	offers := PickOffers(products, sequenceRand([]int{0, 1, 2, 3, 4}))

	assert.Len(t, offers, 5)
	for i, offer := range offers {
		assert.Equal(t, products[i].ID, offer.ProductID)
	}
}

func TestPickOffersSkipsDuplicateDraws(t *testing.T) {
	products := testProducts(10)

	// Five draws, two of them repeats: repeats are skipped, not
	// redrawn, so the run ends with three offers.
	offers := PickOffers(products, sequenceRand([]int{0, 1, 0, 2, 1}))

	assert.Len(t, offers, 3)
	assert.Equal(t, products[0].ID, offers[0].ProductID)
	assert.Equal(t, products[1].ID, offers[1].ProductID)
	assert.Equal(t, products[2].ID, offers[2].ProductID)
}

func TestPickOffersSingleProduct(t *testing.T) {
	products := testProducts(1)

	offers := PickOffers(products, sequenceRand([]int{0}))

	assert.Len(t, offers, 1)
}

func TestPickOffersPriceIsEightyPercent(t *testing.T) {
	products := []models.Product{{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Price:     decimal.NewFromInt(100),
	}}

	offers := PickOffers(products, sequenceRand([]int{0}))

	assert.Len(t, offers, 1)
	assert.True(t, offers[0].Price.Equal(decimal.NewFromInt(80)),
		"expected 80, got %s", offers[0].Price)
}

func TestPickOffersNeverExceedsFive(t *testing.T) {
	products := testProducts(100)

	offers := PickOffers(products, sequenceRand([]int{7, 13, 21, 34, 55, 89}))

	assert.LessOrEqual(t, len(offers), 5)
}
