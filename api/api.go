package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/tidebank/tide"
	"github.com/tidebank/tide/api/middleware"
	"github.com/tidebank/tide/config"
)

type Api struct {
	tide   *tide.Tide
	router *gin.Engine
}

func (a Api) Router() *gin.Engine {
	router := a.router
	router.POST("/customers", a.CreateCustomer)
	router.GET("/customers/:id", a.GetCustomer)
	router.GET("/customers", a.GetAllCustomers)

	router.POST("/accounts", a.CreateAccount)
	router.GET("/accounts/:id", a.GetAccount)
	router.GET("/accounts", a.GetAllAccounts)
	router.GET("/accounts/:id/transactions", a.GetTransactions)

	router.POST("/accounts/:id/deposit", a.Deposit)
	router.POST("/accounts/:id/withdraw", a.Withdraw)
	router.POST("/accounts/:id/interest", a.ApplyInterest)

	router.POST("/transfers", a.TransferFunds)
	return a.router
}

func NewAPI(t *tide.Tide) (*Api, error) {
	gin.SetMode(gin.ReleaseMode)
	conf, err := config.Fetch()
	if err != nil {
		return nil, err
	}
	r := gin.Default()
	r.Use(otelgin.Middleware(conf.ProjectName))
	r.Use(middleware.RateLimitMiddleware(conf))
	if conf.Server.Secure {
		r.Use(middleware.SecretKeyAuthMiddleware())
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, "server running...")
	})

	return &Api{tide: t, router: r}, nil
}
