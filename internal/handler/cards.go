package handler

import (
	"net/http"

	"github.com/AndreHordd/Zlagoda/internal/apierror"
	"github.com/AndreHordd/Zlagoda/internal/dto"
	"github.com/AndreHordd/Zlagoda/internal/model"
	"github.com/AndreHordd/Zlagoda/internal/service"

	"github.com/gin-gonic/gin"
)

type CardsHandler struct{ svc service.CardService }

func NewCardsHandler(svc service.CardService) *CardsHandler {
	return &CardsHandler{svc: svc}
}

func (h *CardsHandler) Create(c *gin.Context) {
	var req dto.CreateCardRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List serves both roles. The discount range filter is a manager-only view;
// cashier requests silently ignore it.
func (h *CardsHandler) List(c *gin.Context) {
	var filter dto.CardFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if claims := claimsIfAny(c); claims != nil && claims.Role != model.RoleManager {
		filter.MinPercent = nil
		filter.MaxPercent = nil
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CardsHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CardsHandler) Update(c *gin.Context) {
	var req dto.UpdateCardRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), c.Param("number"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CardsHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("number")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
