// internal/handlers/product.go
package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"productshop/internal/services"
	"productshop/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
	storageService *services.StorageService
}

func NewProductHandler(productService *services.ProductService, storageService *services.StorageService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		storageService: storageService,
	}
}

// POST /products
//
// Accepts multipart form data so the product image can ride along
// with the fields: name, description, price, category_ids (JSON
// array), image (file, optional).
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	req, err := h.bindProductForm(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	product, err := h.productService.CreateProduct(req)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"product": product})
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.productService.GetProducts()
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"products": products})
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"product": product})
}

// PUT /products/:id
func (h *ProductHandler) EditProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	req, err := h.bindProductForm(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	product, err := h.productService.EditProduct(id, (*services.EditProductRequest)(req))
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"product": product})
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Product deleted"})
}

// GET /products/fetch/:category
//
// Returns all products when category is "all", mirroring the original
// fetch endpoint backing the home page.
func (h *ProductHandler) FetchByCategory(c *gin.Context) {
	category := c.Param("category")

	if category == "all" {
		products, err := h.productService.GetProducts()
		if err != nil {
			utils.DomainErrorResponse(c, err)
			return
		}
		utils.SuccessResponse(c, gin.H{"products": products})
		return
	}

	products, err := h.productService.GetProductsByCategory(category)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"products": products})
}

func (h *ProductHandler) bindProductForm(c *gin.Context) (*services.CreateProductRequest, error) {
	req := &services.CreateProductRequest{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
	}

	price, err := decimal.NewFromString(c.PostForm("price"))
	if err != nil {
		return nil, err
	}
	req.Price = price

	if raw := c.PostForm("category_ids"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.CategoryIDs); err != nil {
			return nil, err
		}
	}

	// The image is optional on edit; when present it goes through the
	// storage service and only the resulting URL is kept.
	file, header, err := c.Request.FormFile("image")
	if err == nil {
		defer file.Close()
		result, err := h.storageService.UploadImage(file, header)
		if err != nil {
			return nil, err
		}
		req.ImageURL = result.URL
	}

	return req, nil
}
