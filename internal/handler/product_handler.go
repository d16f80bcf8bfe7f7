package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rso-shop/stock-service/internal/domain"
	"github.com/rso-shop/stock-service/internal/service"
	"github.com/rso-shop/stock-service/internal/store"
)

type ProductHandler struct {
	productService *service.ProductService
	logger         *zap.Logger
}

func NewProductHandler(productService *service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// GetProduct returns the catalog record for a product, or 404 when the
// product has never been inserted.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	tenant := c.Param("tenant")
	productID := c.Param("product_id")

	rec, err := h.productService.GetProduct(c.Request.Context(), tenant, productID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, store.ErrInvalidTenant):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant"})
		default:
			h.logger.Error("Failed to get product",
				zap.String("product_id", productID),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get product"})
		}
		return
	}

	c.JSON(http.StatusOK, rec)
}

// AddProduct inserts a new catalog record, rejecting duplicates.
func (h *ProductHandler) AddProduct(c *gin.Context) {
	tenant := c.Param("tenant")

	var req domain.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid product payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rec, err := h.productService.AddProduct(c.Request.Context(), tenant, req.ToRecord())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Product already exists"})
		case errors.Is(err, store.ErrInvalidTenant):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant"})
		default:
			h.logger.Error("Failed to add product",
				zap.String("product_id", req.ProductID),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
		}
		return
	}

	c.JSON(http.StatusOK, rec)
}
