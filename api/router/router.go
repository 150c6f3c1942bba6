package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"blogging-api/api/handlers"
	"blogging-api/api/middleware"
	"blogging-api/auth"
	"blogging-api/db"
	_ "blogging-api/docs"
	"blogging-api/services"
)

// New wires the HTTP surface: public listing and single-blog reads,
// authenticated blog mutations, and the signup/signin endpoints.
func New(blogSvc *services.BlogService, userSvc *services.UserService, jwt *auth.JWTManager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogging())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		users := api.Group("/users")
		users.POST("/signup", handlers.SignupHandler(userSvc))
		users.POST("/signin", handlers.SigninHandler(userSvc))

		blogs := api.Group("/blogs")
		blogs.GET("/my-blogs", middleware.RequireAuth(jwt), handlers.ListOwnBlogsHandler(blogSvc))
		blogs.GET("/:id", handlers.GetBlogHandler(blogSvc))
		blogs.GET("", handlers.ListBlogsHandler(blogSvc))

		blogs.POST("", middleware.RequireAuth(jwt), handlers.CreateBlogHandler(blogSvc))
		blogs.PUT("/:id/publish", middleware.RequireAuth(jwt), handlers.PublishBlogHandler(blogSvc))
		blogs.PUT("/:id", middleware.RequireAuth(jwt), handlers.EditBlogHandler(blogSvc))
		blogs.DELETE("/:id", middleware.RequireAuth(jwt), handlers.DeleteBlogHandler(blogSvc))
	}

	return r
}
