package handler

import (
	"net/http"
	"time"

	"github.com/AndreHordd/Zlagoda/internal/service"

	"github.com/gin-gonic/gin"
)

type PromotionsHandler struct{ svc service.PromoService }

func NewPromotionsHandler(svc service.PromoService) *PromotionsHandler {
	return &PromotionsHandler{svc: svc}
}

// Sweep runs one promotion pass immediately instead of waiting for the
// background ticker.
func (h *PromotionsHandler) Sweep(c *gin.Context) {
	res, err := h.svc.RunSweep(c.Request.Context(), time.Now())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, res)
}
