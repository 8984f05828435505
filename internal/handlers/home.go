// internal/handlers/home.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"productshop/internal/services"
	"productshop/internal/utils"
)

type HomeHandler struct {
	categoryService *services.CategoryService
	offerService    *services.OfferService
}

func NewHomeHandler(categoryService *services.CategoryService, offerService *services.OfferService) *HomeHandler {
	return &HomeHandler{
		categoryService: categoryService,
		offerService:    offerService,
	}
}

// GET /home
//
// The storefront landing feed: categories to browse plus the current
// offer set. A rotation running concurrently may briefly leave the
// offers empty or partial; that is accepted.
func (h *HomeHandler) Home(c *gin.Context) {
	categories, err := h.categoryService.GetCategories()
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	offers, err := h.offerService.GetOffers()
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"categories": categories,
		"offers":     offers,
	})
}

// GET /offers
func (h *HomeHandler) GetOffers(c *gin.Context) {
	offers, err := h.offerService.GetOffers()
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"offers": offers})
}
