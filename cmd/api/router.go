package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"libreria-storefront/internal/shared/middleware"
	"libreria-storefront/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(nil),
		middleware.Session(c.Tokens),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupCatalogRoutes(v1, c)
		setupBookRoutes(v1, c)
		setupCartRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", c.SessionHandler.SignUp)
		auth.POST("/login", c.SessionHandler.SignIn)
		auth.POST("/logout", middleware.RequireSession(), c.SessionHandler.SignOut)
		auth.GET("/session", c.SessionHandler.Current)
	}
}

func setupCatalogRoutes(v1 *gin.RouterGroup, c *container.Container) {
	catalog := v1.Group("/catalogo")
	{
		catalog.GET("", c.CatalogHandler.List)
		catalog.GET("/categorias", c.CatalogHandler.Categories)
	}
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/libros")
	{
		books.GET("/:id", c.BookHandler.GetByID)

		// Mutations are admin-only. The web UI hides these actions from
		// non-admins; the gateway enforces the role regardless.
		books.PUT("/:id", middleware.RequireSession(), middleware.RequireAdmin(), c.BookHandler.Update)
		books.DELETE("/:id", middleware.RequireSession(), middleware.RequireAdmin(), c.BookHandler.Delete)
	}
}

func setupCartRoutes(v1 *gin.RouterGroup, c *container.Container) {
	cart := v1.Group("/carrito")
	{
		cart.POST("/items", c.CartHandler.AddItem)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		health := gin.H{
			"status":  "ok",
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
		}

		if err := c.Redis.Ping(ctx.Request.Context()); err != nil {
			health["status"] = "degraded"
			health["redis"] = err.Error()
			ctx.JSON(http.StatusServiceUnavailable, health)
			return
		}

		ctx.JSON(http.StatusOK, health)
	}
}
