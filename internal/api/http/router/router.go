package router

import (
	"context"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/dtroode/plantcare-server/internal/api/http/handler"
	"github.com/dtroode/plantcare-server/internal/api/http/middleware"
	"github.com/dtroode/plantcare-server/internal/logger"
	"github.com/dtroode/plantcare-server/internal/model"
)

// Options tunes the cross-cutting middleware.
type Options struct {
	CORSOrigins  []string
	MaxBodyBytes int64
	RateLimitRPS float64
	RateBurst    int
}

// Router represents the HTTP router for plant-care operations.
// It wires handlers and middleware onto a gin engine.
type Router struct {
	authService    handler.AuthService
	plantService   handler.PlantService
	tokenService   middleware.TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
	opts           Options
}

// New creates new Router instance.
//
// Parameters:
//   - authService: The authentication service
//   - plantService: The plant management service
//   - tokenService: Validates bearer tokens for protected routes
//   - contextManager: Carries caller claims through request contexts
//   - logger: The logger for request logging
//   - opts: Middleware settings
//
// Returns a pointer to the newly created Router instance.
func New(
	authService handler.AuthService,
	plantService handler.PlantService,
	tokenService middleware.TokenService,
	contextManager model.ContextManager,
	logger *logger.Logger,
	opts Options,
) *Router {
	return &Router{
		authService:    authService,
		plantService:   plantService,
		tokenService:   tokenService,
		contextManager: contextManager,
		logger:         logger,
		opts:           opts,
	}
}

// Register builds the gin engine with all routes and middleware. Idle rate
// limiter buckets are evicted in the background until ctx is done.
func (r *Router) Register(ctx context.Context) *gin.Engine {
	useJSONFieldNames()

	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	engine.Use(
		middleware.NewLogging(r.logger).Handle(),
		gin.Recovery(),
		middleware.SecurityHeaders(),
		middleware.CORS(r.opts.CORSOrigins),
	)
	if r.opts.MaxBodyBytes > 0 {
		engine.Use(middleware.RequestSizeLimiter(r.opts.MaxBodyBytes))
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})

	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger).Handle()
	rateLimiter := middleware.NewRateLimiter(r.opts.RateLimitRPS, r.opts.RateBurst, r.contextManager)
	go rateLimiter.Run(ctx, 0, 0)
	limiter := rateLimiter.Handle()

	api := engine.Group("/api")
	r.registerAuthRoutes(api, authenticate, limiter)
	r.registerPlantRoutes(api, authenticate, limiter)

	return engine
}

func (r *Router) registerAuthRoutes(api *gin.RouterGroup, authenticate, limiter gin.HandlerFunc) {
	h := handler.NewAuth(r.authService, r.contextManager, r.logger)

	auth := api.Group("/auth")
	auth.POST("/register", limiter, h.Register)
	auth.POST("/login", limiter, h.Login)

	protected := auth.Group("", authenticate, limiter)
	protected.GET("/profile", h.Profile)
	protected.POST("/refresh", h.Refresh)
	protected.POST("/logout", h.Logout)
}

func (r *Router) registerPlantRoutes(api *gin.RouterGroup, authenticate, limiter gin.HandlerFunc) {
	h := handler.NewPlant(r.plantService, r.contextManager, r.logger)

	api.GET("/plant/ping", h.Ping)

	plants := api.Group("/plant", authenticate, limiter)
	plants.GET("", h.List)
	plants.POST("", h.Create)
	plants.GET("/needing-water", h.NeedingWater)
	plants.GET("/needing-fertilizer", h.NeedingFertilizer)
	plants.GET("/:id", h.Get)
	plants.PUT("/:id", h.Update)
	plants.DELETE("/:id", h.Delete)
	plants.POST("/:id/water", h.Water)
	plants.POST("/:id/fertilize", h.Fertilize)
	plants.PUT("/:id/photo", h.UploadPhoto)
	plants.GET("/:id/photo", h.GetPhoto)
}

// useJSONFieldNames makes validation errors name fields as clients send them.
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
}
