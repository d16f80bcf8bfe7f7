package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rso-shop/stock-service/internal/service"
	"github.com/rso-shop/stock-service/internal/store"
)

type SeedHandler struct {
	seedService *service.SeedService
	logger      *zap.Logger
}

func NewSeedHandler(seedService *service.SeedService, logger *zap.Logger) *SeedHandler {
	return &SeedHandler{
		seedService: seedService,
		logger:      logger,
	}
}

// GenerateTestData populates the tenant's collections with demo records.
// TODO protect this endpoint once authentication lands.
func (h *SeedHandler) GenerateTestData(c *gin.Context) {
	tenant := c.Param("tenant")

	if err := h.seedService.Generate(c.Request.Context(), tenant); err != nil {
		if errors.Is(err, store.ErrInvalidTenant) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant"})
			return
		}

		h.logger.Error("Failed to generate test data", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate test data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Test data generated!"})
}
