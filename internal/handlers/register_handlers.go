package handlers

import (
	"fmt"
	"regexp"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/pbialczyk/nbp_rates_app/cmd/docs"
	portssvc "github.com/pbialczyk/nbp_rates_app/internal/core/ports/services"
	"github.com/pbialczyk/nbp_rates_app/internal/middleware"
	"github.com/pbialczyk/nbp_rates_app/internal/platform/config"
)

// currencyPairPattern matches table column names like "EUR/PLN" or "CHF/USD".
var currencyPairPattern = regexp.MustCompile(`^[A-Z]{3}/[A-Z]{3}$`)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	registerCurrencyPairValidator()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Setup /api routes with CORS and rate limiting
	if err := setupAPIRoutes(r, cfg, services); err != nil {
		return err
	}

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)

	return nil
}

// setupAPIRoutes configures the /api group and delegates to the rate route registration
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	ipLimiter, err := middleware.NewIPRateLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("configure rate limiter: %w", err)
	}

	api := r.Group("/api", corsMiddleware(cfg), middleware.RateLimit(ipLimiter))

	registerRatesRoutes(api, services.RateQuery, services.RateExport)

	return nil
}

// corsMiddleware builds the CORS policy for the API group. With no configured
// origins every origin is allowed, matching the open frontend access of the
// rate endpoints.
func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	return cors.New(corsCfg)
}

// registerCurrencyPairValidator registers the "currencypair" binding tag on
// gin's validator engine.
func registerCurrencyPairValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currencypair", func(fl validator.FieldLevel) bool {
			return currencyPairPattern.MatchString(fl.Field().String())
		})
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
