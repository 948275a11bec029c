package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model2 "github.com/tidebank/tide/api/model"
	"github.com/tidebank/tide/internal/apierror"
)

func (a Api) CreateCustomer(c *gin.Context) {
	var newCustomer model2.CreateCustomer
	if err := c.ShouldBindJSON(&newCustomer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := newCustomer.ValidateCreateCustomer(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	resp, err := a.tide.CreateCustomer(c.Request.Context(), newCustomer.Name, newCustomer.Address)
	if err != nil {
		apiErr := apierror.FromDomain(err)
		c.JSON(apierror.MapErrorToHTTPStatus(apiErr), gin.H{"error": apiErr.Message})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (a Api) GetCustomer(c *gin.Context) {
	id, passed := c.Params.Get("id")
	if !passed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required. pass id in the route /:id"})
		return
	}

	resp, err := a.tide.GetCustomer(c.Request.Context(), id)
	if err != nil {
		apiErr := apierror.FromDomain(err)
		c.JSON(apierror.MapErrorToHTTPStatus(apiErr), gin.H{"error": apiErr.Message})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a Api) GetAllCustomers(c *gin.Context) {
	customers, err := a.tide.GetAllCustomers(c.Request.Context())
	if err != nil {
		apiErr := apierror.FromDomain(err)
		c.JSON(apierror.MapErrorToHTTPStatus(apiErr), gin.H{"error": apiErr.Message})
		return
	}

	c.JSON(http.StatusOK, customers)
}
