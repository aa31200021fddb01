package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/AndreHordd/Zlagoda/internal/apierror"
	"github.com/AndreHordd/Zlagoda/internal/dto"
	"github.com/AndreHordd/Zlagoda/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const priceCacheTTL = 15 * time.Minute

// PriceCheckHandler serves the public price lookup endpoint. No
// authentication, no side effects; responses are cached in Redis.
type PriceCheckHandler struct {
	svc service.StoreProductService
	rdb *redis.Client
}

func NewPriceCheckHandler(svc service.StoreProductService, rdb *redis.Client) *PriceCheckHandler {
	return &PriceCheckHandler{svc: svc, rdb: rdb}
}

// GetByUPC godoc
// @Summary Price lookup by UPC (no authentication)
// @Tags price
// @Produce json
// @Param upc path string true "UPC"
// @Success 200 {object} dto.PriceCheckResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/price/{upc} [get]
func (h *PriceCheckHandler) GetByUPC(c *gin.Context) {
	upc := c.Param("upc")
	ctx := c.Request.Context()
	cacheKey := "price:" + upc

	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.PriceCheckResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	resp, err := h.svc.PriceCheck(ctx, upc)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("product not found"))
		return
	}

	// Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, priceCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
