package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tripfair/internal/handler/api"
	"tripfair/internal/handler/middleware"
	"tripfair/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	negotiationHandler *api.NegotiationHandler,
	providerHandler *api.ProviderHandler,
	availabilityHandler *api.AvailabilityHandler,
	cartHandler *api.CartHandler,
	adminHandler *api.AdminHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, negotiationHandler, providerHandler, availabilityHandler, cartHandler, adminHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.HandleMethodNotAllowed = true
}

func setupRoutes(
	engine *gin.Engine,
	negotiationHandler *api.NegotiationHandler,
	providerHandler *api.ProviderHandler,
	availabilityHandler *api.AvailabilityHandler,
	cartHandler *api.CartHandler,
	adminHandler *api.AdminHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		negotiations := apiGroup.Group("/negotiations")
		{
			addRoutes(negotiations, []route{
				{Method: http.MethodPost, Path: "", Handler: negotiationHandler.Negotiate},
				{Method: http.MethodPost, Path: "/validate", Handler: negotiationHandler.ValidateOffer},
			})
		}

		providers := apiGroup.Group("/providers")
		{
			addRoutes(providers, []route{
				{Method: http.MethodPost, Path: "/search", Handler: providerHandler.Search},
				{Method: http.MethodPost, Path: "/:id/quotes", Handler: providerHandler.Quote},
				{Method: http.MethodPost, Path: "/:id/coverage", Handler: providerHandler.Coverage},
			})
		}

		services := apiGroup.Group("/services")
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "/:id/availability", Handler: availabilityHandler.Calendar},
				{Method: http.MethodGet, Path: "/:id/availability/check", Handler: availabilityHandler.Check},
				{Method: http.MethodGet, Path: "/:id/price", Handler: availabilityHandler.DynamicPrice},
			})
		}

		cart := apiGroup.Group("/cart")
		{
			addRoutes(cart, []route{
				{Method: http.MethodPost, Path: "/evaluate", Handler: cartHandler.Evaluate},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/overrides/:propertyId", Handler: adminHandler.GetOverride},
				{Method: http.MethodPut, Path: "/overrides/:propertyId", Handler: adminHandler.SetOverride},
				{Method: http.MethodDelete, Path: "/overrides/:propertyId", Handler: adminHandler.DeleteOverride},
				{Method: http.MethodPost, Path: "/cache/invalidate", Handler: adminHandler.InvalidateCache},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
