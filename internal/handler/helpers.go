package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/AndreHordd/Zlagoda/internal/apierror"
	"github.com/AndreHordd/Zlagoda/internal/middleware"
	"github.com/AndreHordd/Zlagoda/internal/repository"
	"github.com/AndreHordd/Zlagoda/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// claimsIfAny returns the caller's JWT claims, or nil on unauthenticated
// routes.
func claimsIfAny(c *gin.Context) *middleware.JWTClaims {
	v, ok := c.Get(middleware.ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*middleware.JWTClaims)
	return claims
}

// writeServiceError maps service sentinels onto HTTP statuses. Unknown errors
// are pushed onto the context for the ErrorHandler middleware.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New("not found"))
	case errors.Is(err, service.ErrReferenced):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, repository.ErrInsufficientStock):
		// A concurrent checkout won the stock between validation and the
		// guarded decrement. Report it like any other stock problem.
		c.JSON(http.StatusUnprocessableEntity, apierror.NewCheckout([]string{err.Error()}))
	case errors.Is(err, gorm.ErrDuplicatedKey):
		// A concurrently issued receipt took the number after ExistsNumber.
		c.JSON(http.StatusConflict, apierror.New("already exists"))
	default:
		_ = c.Error(err)
	}
}
