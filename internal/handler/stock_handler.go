package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rso-shop/stock-service/internal/service"
	"github.com/rso-shop/stock-service/internal/store"
)

type StockHandler struct {
	stockService *service.StockService
	logger       *zap.Logger
}

func NewStockHandler(stockService *service.StockService, logger *zap.Logger) *StockHandler {
	return &StockHandler{
		stockService: stockService,
		logger:       logger,
	}
}

// Status reports that the API is reachable.
func (h *StockHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Stock API online"})
}

// ListIDs returns every product id with a stock record.
func (h *StockHandler) ListIDs(c *gin.Context) {
	tenant := c.Param("tenant")

	ids, err := h.stockService.ListProductIDs(c.Request.Context(), tenant)
	if err != nil {
		if errors.Is(err, store.ErrInvalidTenant) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant"})
			return
		}

		h.logger.Error("Failed to list product ids", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list product ids"})
		return
	}

	c.JSON(http.StatusOK, ids)
}

// GetStock returns the stock record for a product. Products without a
// stored record report a stock amount of zero.
func (h *StockHandler) GetStock(c *gin.Context) {
	tenant := c.Param("tenant")
	productID := c.Param("product_id")

	rec, err := h.stockService.GetStock(c.Request.Context(), tenant, productID)
	if err != nil {
		if errors.Is(err, store.ErrInvalidTenant) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant"})
			return
		}

		h.logger.Error("Failed to get stock",
			zap.String("product_id", productID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get stock"})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// SetStock overwrites a product's stock amount with the path value.
func (h *StockHandler) SetStock(c *gin.Context) {
	tenant := c.Param("tenant")
	productID := c.Param("product_id")
	newValue := c.Param("new_value")

	rec, err := h.stockService.SetStock(c.Request.Context(), tenant, productID, newValue)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStockValue):
			c.JSON(http.StatusBadRequest, gin.H{"error": "New value must be a non-negative integer"})
		case errors.Is(err, service.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, store.ErrInvalidTenant):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant"})
		default:
			h.logger.Error("Failed to set stock",
				zap.String("product_id", productID),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set stock"})
		}
		return
	}

	c.JSON(http.StatusOK, rec)
}
