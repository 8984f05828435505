// internal/services/offer_service.go
package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"productshop/internal/database"
	"productshop/internal/models"
)

// offerDraws is how many random draws each rotation makes. Draws are
// with replacement; a duplicate draw is skipped, not resampled, so a
// run can end with fewer offers.
const offerDraws = 5

type OfferService struct {
	db   *gorm.DB
	intn func(n int) int
}

func NewOfferService(db *gorm.DB) *OfferService {
	return &OfferService{
		db:   db,
		intn: rand.Intn,
	}
}

// NewOfferServiceWithRand injects the randomness source, used by
// tests to make draws deterministic.
func NewOfferServiceWithRand(db *gorm.DB, intn func(n int) int) *OfferService {
	return &OfferService{db: db, intn: intn}
}

func (s *OfferService) GetOffers() ([]models.Offer, error) {
	var offers []models.Offer
	if err := s.db.Preload("Product").Find(&offers).Error; err != nil {
		return nil, fmt.Errorf("failed to load offers: %w", err)
	}
	return offers, nil
}

// Rotate replaces the entire active offer set: clear everything, then
// draw from the full catalog. Requests reading offers concurrently
// may observe a transient empty or partial set; that is accepted.
func (s *OfferService) Rotate() error {
	return database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Offer{}).Error; err != nil {
			return fmt.Errorf("failed to clear offers: %w", err)
		}

		var products []models.Product
		if err := tx.Find(&products).Error; err != nil {
			return fmt.Errorf("failed to load products: %w", err)
		}

		offers := PickOffers(products, s.intn)
		if len(offers) == 0 {
			return nil
		}

		if err := tx.Create(&offers).Error; err != nil {
			return fmt.Errorf("failed to save offers: %w", err)
		}

		return nil
	})
}

// PickOffers draws offerDraws times uniformly at random from the
// catalog, with replacement. An iteration whose product was already
// selected in this run is skipped. Each offer is priced at exactly
// 80% of the product's current price.
func PickOffers(products []models.Product, intn func(n int) int) []models.Offer {
	if len(products) == 0 {
		return nil
	}

	var offers []models.Offer
	for i := 0; i < offerDraws; i++ {
		product := products[intn(len(products))]

		duplicate := false
		for _, offer := range offers {
			if offer.ProductID == product.ID {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		offers = append(offers, models.Offer{
			ProductID: product.ID,
			Price:     models.DiscountedPrice(product.Price),
		})
	}

	return offers
}

// Run rotates on a fixed interval until the context is cancelled. It
// runs independently of request handling.
func (s *OfferService) Run(ctx context.Context, interval time.Duration) {
	// Populate offers immediately on startup rather than waiting a
	// full interval.
	if err := s.Rotate(); err != nil {
		logrus.WithError(err).Error("Offer rotation failed")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Rotate(); err != nil {
				logrus.WithError(err).Error("Offer rotation failed")
			} else {
				logrus.Debug("Offer rotation completed")
			}
		}
	}
}
