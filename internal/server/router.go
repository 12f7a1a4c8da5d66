// Package server assembles the HTTP host around the debenture services.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "debenture/internal/docs" // Import swagger docs

	apperrors "debenture/internal/errors"
	"debenture/internal/handlers"
	"debenture/internal/middleware"
	"debenture/internal/services"
)

// Options configures the router.
type Options struct {
	IssuerAPIKey   string
	MetricsEnabled bool
}

// Services are the dependencies the routes dispatch to.
type Services struct {
	Contracts  services.ContractServicer
	Debentures services.DebentureServicer
}

// NewRouter builds the Gin engine with every route registered.
func NewRouter(svc Services, opts Options) *gin.Engine {
	contractHandler := handlers.NewContractHandler(svc.Contracts)
	debentureHandler := handlers.NewDebentureHandler(svc.Debentures)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.ErrNotFound)
	})
	if opts.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	v1 := router.Group("/api/v1")
	v1.GET("/frequencies", debentureHandler.ListFrequencies)

	debentures := v1.Group("/debentures")
	debentures.POST("", contractHandler.CreateContract)
	debentures.GET("", contractHandler.ListContracts)

	contract := debentures.Group("/:id")
	contract.GET("", debentureHandler.GetState)
	contract.POST("/issue", middleware.IssuerAuth(opts.IssuerAPIKey), debentureHandler.Issue)
	contract.GET("/maturity", debentureHandler.GetMaturity)
	contract.GET("/par_value", debentureHandler.GetParValue)
	contract.GET("/coupon_rate", debentureHandler.GetCouponRate)
	contract.GET("/coupon_payment_frequency", debentureHandler.GetCouponFrequency)
	contract.GET("/debenture_holder", debentureHandler.GetDebentureHolder)
	contract.GET("/coupon_payment", debentureHandler.GetCouponPayment)

	return router
}
