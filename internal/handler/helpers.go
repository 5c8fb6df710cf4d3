package handler

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/parvezislam45/inventory/internal/apierror"
	"github.com/parvezislam45/inventory/internal/money"
)

var validate = validator.New()

func init() {
	// Register the money wrapper types as numeric so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type money.Money").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(money.Money); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, money.Money{})
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(money.Percent); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, money.Percent{})
}

// bindAndValidate binds the request body — JSON or multipart form, negotiated
// on Content-Type — and runs go-playground/validator tags. Returns false and
// writes the error response if validation fails; the caller should return
// immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid request body: "+err.Error()))
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

// respondErr writes the error through the domain taxonomy mapping.
func respondErr(c *gin.Context, err error) {
	c.JSON(apierror.StatusFor(err), apierror.New(err.Error()))
}

// parseID parses the :id path param as a UUID, writing the 400 response
// itself on failure.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}
