package handler

import (
	"net/http"

	"github.com/AndreHordd/Zlagoda/internal/apierror"
	"github.com/AndreHordd/Zlagoda/internal/dto"
	"github.com/AndreHordd/Zlagoda/internal/service"

	"github.com/gin-gonic/gin"
)

type EmployeesHandler struct{ svc service.EmployeeService }

func NewEmployeesHandler(svc service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{svc: svc}
}

// Create godoc
// @Summary Hire an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param body body dto.CreateEmployeeRequest true "Employee"
// @Success 201 {object} dto.EmployeeResponse
// @Router /v1/employees [post]
func (h *EmployeesHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
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

func (h *EmployeesHandler) List(c *gin.Context) {
	var filter dto.EmployeeFilter
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

func (h *EmployeesHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EmployeesHandler) Update(c *gin.Context) {
	var req dto.UpdateEmployeeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EmployeesHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
