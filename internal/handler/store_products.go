package handler

import (
	"net/http"

	"github.com/AndreHordd/Zlagoda/internal/apierror"
	"github.com/AndreHordd/Zlagoda/internal/dto"
	"github.com/AndreHordd/Zlagoda/internal/service"

	"github.com/gin-gonic/gin"
)

type StoreProductsHandler struct{ svc service.StoreProductService }

func NewStoreProductsHandler(svc service.StoreProductService) *StoreProductsHandler {
	return &StoreProductsHandler{svc: svc}
}

// Create godoc
// @Summary Put a catalog product on the shelf
// @Tags store-products
// @Accept json
// @Produce json
// @Param body body dto.CreateStoreProductRequest true "Shelf item"
// @Success 201 {object} dto.StoreProductResponse
// @Router /v1/store-products [post]
func (h *StoreProductsHandler) Create(c *gin.Context) {
	var req dto.CreateStoreProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *StoreProductsHandler) List(c *gin.Context) {
	var filter dto.StoreProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StoreProductsHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), c.Param("upc"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StoreProductsHandler) Update(c *gin.Context) {
	var req dto.UpdateStoreProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), c.Param("upc"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StoreProductsHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("upc")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
