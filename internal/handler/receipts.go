package handler

import (
	"errors"
	"net/http"

	"github.com/AndreHordd/Zlagoda/internal/apierror"
	"github.com/AndreHordd/Zlagoda/internal/dto"
	"github.com/AndreHordd/Zlagoda/internal/infra"
	"github.com/AndreHordd/Zlagoda/internal/middleware"
	"github.com/AndreHordd/Zlagoda/internal/model"
	"github.com/AndreHordd/Zlagoda/internal/service"

	"github.com/gin-gonic/gin"
)

type ReceiptsHandler struct{ svc service.ReceiptService }

func NewReceiptsHandler(svc service.ReceiptService) *ReceiptsHandler {
	return &ReceiptsHandler{svc: svc}
}

// Checkout godoc
// @Summary Create a receipt and decrement stock atomically
// @Tags receipts
// @Accept json
// @Produce json
// @Param body body dto.CheckoutRequest true "Requested lines"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 422 {object} apierror.CheckoutError
// @Router /v1/receipts [post]
func (h *ReceiptsHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Checkout(c.Request.Context(), claims.EmployeeID, req)
	if err != nil {
		var cve *service.CheckoutValidationError
		if errors.As(err, &cve) {
			c.JSON(http.StatusUnprocessableEntity, apierror.NewCheckout(cve.Problems))
			return
		}
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List pins cashiers to their own receipts; managers may filter freely.
func (h *ReceiptsHandler) List(c *gin.Context) {
	var filter dto.ReceiptFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	claims := middleware.GetClaims(c)
	if claims.Role != model.RoleManager {
		filter.EmployeeID = claims.EmployeeID
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReceiptsHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if claims := middleware.GetClaims(c); claims.Role != model.RoleManager && resp.EmployeeID != claims.EmployeeID {
		c.JSON(http.StatusForbidden, apierror.New("insufficient permissions"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PDF streams the printable slip for one receipt.
func (h *ReceiptsHandler) PDF(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if claims := middleware.GetClaims(c); claims.Role != model.RoleManager && resp.EmployeeID != claims.EmployeeID {
		c.JSON(http.StatusForbidden, apierror.New("insufficient permissions"))
		return
	}
	b, err := infra.ReceiptPDF(resp)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="receipt_`+resp.Number+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", b)
}

func (h *ReceiptsHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("number")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReceiptsHandler) DeleteSale(c *gin.Context) {
	if err := h.svc.DeleteSale(c.Request.Context(), c.Param("number"), c.Param("upc")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// TotalForPeriod reports the payable sum over a date range, optionally for
// one cashier. Cashiers only ever see their own figure.
func (h *ReceiptsHandler) TotalForPeriod(c *gin.Context) {
	employeeID := c.Query("employee_id")
	claims := middleware.GetClaims(c)
	if claims.Role != model.RoleManager {
		employeeID = claims.EmployeeID
	}
	resp, err := h.svc.TotalForPeriod(c.Request.Context(), employeeID, c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReceiptsHandler) UnitsSold(c *gin.Context) {
	resp, err := h.svc.UnitsSold(c.Request.Context(), c.Param("upc"), c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
