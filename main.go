package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/cors"

	"blogging-api/api/router"
	"blogging-api/auth"
	"blogging-api/config"
	"blogging-api/db"
	_ "blogging-api/docs" // swag will generate this package
	"blogging-api/logger"
	"blogging-api/repositories"
	"blogging-api/services"
)

// @title           Blogging API
// @version         1.0
// @description     Blogging platform backend: accounts, drafts and published posts
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		logger.Log.Errorf("database init failed: %v", err)
		os.Exit(1)
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWTSecret)
	if err != nil {
		logger.Log.Errorf("auth init failed: %v", err)
		os.Exit(1)
	}

	database := db.Database()
	blogRepo := repositories.NewBlogRepository(database)
	userRepo := repositories.NewUserRepository(database)

	blogSvc := services.NewBlogService(blogRepo, userRepo)
	userSvc := services.NewUserService(userRepo, jwtManager)

	r := router.New(blogSvc, userSvc, jwtManager)
	handler := cors.Default().Handler(r)

	port := cfg.Server.Port
	if port == "" {
		port = "5000"
	}
	logger.Log.Infof("Server running on port %s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil && err != http.ErrServerClosed {
		logger.Log.Errorf("server stopped: %v", err)
		os.Exit(1)
	}
}
