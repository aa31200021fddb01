package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AndreHordd/Zlagoda/internal/apierror"
	"github.com/AndreHordd/Zlagoda/internal/service"

	"github.com/gin-gonic/gin"
)

// Defaults mirror the thresholds the reports were designed around.
const (
	defaultMinUnits = 0
	defaultBigStock = 100
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

func (h *ReportsHandler) CategoriesByCashier(c *gin.Context) {
	resp, err := h.svc.CategoriesByCashier(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) CategoryPriceStats(c *gin.Context) {
	minUnits := defaultMinUnits
	if raw := c.Query("min_units"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("min_units must be an integer"))
			return
		}
		minUnits = n
	}
	resp, err := h.svc.CategoryPriceStats(c.Request.Context(), minUnits)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) CashiersEveryReceiptHasCategory(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, apierror.New("category is required"))
		return
	}
	resp, err := h.svc.CashiersEveryReceiptHasCategory(c.Request.Context(), category)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) CategoriesWithoutPromos(c *gin.Context) {
	bigStock := defaultBigStock
	if raw := c.Query("big_stock"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("big_stock must be an integer"))
			return
		}
		bigStock = n
	}
	resp, err := h.svc.CategoriesWithoutPromos(c.Request.Context(), bigStock)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Preview dumps up to 100 rows of one allow-listed table.
func (h *ReportsHandler) Preview(c *gin.Context) {
	resp, err := h.svc.Preview(c.Request.Context(), c.Param("table"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownTable) {
			c.JSON(http.StatusNotFound, apierror.New("unknown table"))
			return
		}
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
