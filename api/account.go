package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model2 "github.com/tidebank/tide/api/model"
	"github.com/tidebank/tide/internal/apierror"
	"github.com/tidebank/tide/model"
)

func (a Api) CreateAccount(c *gin.Context) {
	var newAccount model2.CreateAccount
	if err := c.ShouldBindJSON(&newAccount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := newAccount.ValidateCreateAccount(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	initialBalance, interestRate, overdraftLimit := newAccount.Balances()
	resp, err := a.tide.CreateAccount(c.Request.Context(), newAccount.CustomerId, newAccount.Type(), initialBalance, interestRate, overdraftLimit)
	if err != nil {
		apiErr := apierror.FromDomain(err)
		c.JSON(apierror.MapErrorToHTTPStatus(apiErr), gin.H{"error": apiErr.Message})
		return
	}

	c.JSON(http.StatusCreated, resp.View())
}

func (a Api) GetAccount(c *gin.Context) {
	id, passed := c.Params.Get("id")
	if !passed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required. pass id in the route /:id"})
		return
	}

	resp, err := a.tide.GetAccount(c.Request.Context(), id)
	if err != nil {
		apiErr := apierror.FromDomain(err)
		c.JSON(apierror.MapErrorToHTTPStatus(apiErr), gin.H{"error": apiErr.Message})
		return
	}

	c.JSON(http.StatusOK, resp.View())
}

func (a Api) GetAllAccounts(c *gin.Context) {
	accounts, err := a.tide.GetAllAccounts(c.Request.Context())
	if err != nil {
		apiErr := apierror.FromDomain(err)
		c.JSON(apierror.MapErrorToHTTPStatus(apiErr), gin.H{"error": apiErr.Message})
		return
	}

	views := make([]model.AccountView, len(accounts))
	for i, account := range accounts {
		views[i] = account.View()
	}
	c.JSON(http.StatusOK, views)
}

func (a Api) GetTransactions(c *gin.Context) {
	id, passed := c.Params.Get("id")
	if !passed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required. pass id in the route /:id"})
		return
	}

	history, err := a.tide.GetTransactions(c.Request.Context(), id)
	if err != nil {
		apiErr := apierror.FromDomain(err)
		c.JSON(apierror.MapErrorToHTTPStatus(apiErr), gin.H{"error": apiErr.Message})
		return
	}

	c.JSON(http.StatusOK, history)
}
