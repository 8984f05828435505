// internal/handlers/cart.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"productshop/internal/cart"
	"productshop/internal/services"
	"productshop/internal/utils"
)

type CartHandler struct {
	carts          *cart.Store
	productService *services.ProductService
	orderService   *services.OrderService
}

func NewCartHandler(carts *cart.Store, productService *services.ProductService, orderService *services.OrderService) *CartHandler {
	return &CartHandler{
		carts:          carts,
		productService: productService,
		orderService:   orderService,
	}
}

type addToCartRequest struct {
	ID       uuid.UUID `json:"id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

type removeFromCartRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
}

// POST /cart/add-product
//
// Snapshots the product at its current price. When an offer is active
// the discounted price is the unit price, matching what the caller
// saw on the product page.
func (h *CartHandler) AddProduct(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	product, err := h.productService.GetProduct(req.ID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	unitPrice := product.Price
	if product.DiscountedPrice != nil {
		unitPrice = *product.DiscountedPrice
	}

	h.carts.Update(userID, func(cr *cart.Cart) {
		cr.Add(cart.Item{
			ProductID: product.ID,
			Name:      product.Name,
			ImageURL:  product.ImageURL,
			UnitPrice: unitPrice,
			Quantity:  req.Quantity,
		})
	})

	utils.SuccessResponse(c, gin.H{"message": "Product added to cart"})
}

// DELETE /cart/remove-product
func (h *CartHandler) RemoveProduct(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req removeFromCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	h.carts.Update(userID, func(cr *cart.Cart) {
		cr.Remove(req.ID)
	})

	utils.SuccessResponse(c, gin.H{"message": "Product removed from cart"})
}

// GET /cart/details
func (h *CartHandler) Details(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	cr := h.carts.Get(userID)

	utils.SuccessResponse(c, gin.H{
		"items":       cr.Items(),
		"total_price": cr.Total(),
	})
}

// POST /cart/checkout
func (h *CartHandler) Checkout(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}
	username, _ := utils.GetUsernameFromContext(c)

	items := h.carts.Get(userID).Items()

	order, err := h.orderService.Checkout(items, username)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	// The cart is discarded only after the order persisted.
	h.carts.Discard(userID)

	utils.CreatedResponse(c, gin.H{
		"message": "Order created",
		"order":   order,
	})
}
