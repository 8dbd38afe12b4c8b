package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"dokser_echo/internal/handlers"
	appMiddleware "dokser_echo/internal/middleware"
	"dokser_echo/internal/routes"
	"dokser_echo/internal/services"
)

// serverDeps holds the optional backends; any of them may be nil
type serverDeps struct {
	authClient   *auth.Client
	db           *gorm.DB
	cache        *services.RedisCache
	githubURL    string
	editorEmails []string
}

func newServer(deps serverDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = appMiddleware.CustomErrorHandler

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Pre(middleware.RemoveTrailingSlash())

	content := services.NewContentService(deps.db, deps.cache)

	homeHandler := handlers.NewHomeHandler(deps.githubURL)
	docsHandler := handlers.NewDocsHandler(content)
	blogHandler := handlers.NewBlogHandler(content)
	authHandler := handlers.NewAuthHandler(deps.authClient, deps.editorEmails)
	adminHandler := handlers.NewAdminHandler(content)

	// Public routes
	e.GET("/", homeHandler.Home)
	e.GET(routes.DocsPrefix, docsHandler.Index)
	e.GET(routes.DocsPrefix+"/*", docsHandler.Show)
	e.GET("/blog", blogHandler.Index)
	e.GET("/blog/:slug", blogHandler.Show)

	api := e.Group("/api")
	api.GET("/routes", docsHandler.ListRoutes)
	api.GET("/sections", docsHandler.ListSections)

	e.GET("/login", authHandler.LoginPage)
	e.POST("/auth/login", authHandler.HandleLogin)
	e.POST("/auth/logout", authHandler.HandleLogout)

	// Protected routes
	admin := e.Group("/admin")
	admin.Use(appMiddleware.RequireAuth(deps.authClient))
	admin.GET("/docs", adminHandler.ListDocs)
	admin.GET("/docs/edit", adminHandler.EditDocPage)
	admin.POST("/docs/edit", adminHandler.UpdateDoc)

	return e
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	log.Printf("Loaded %d documentation pages, default entry %s", len(routes.PageRoutes), routes.GetStartedHref())

	deps := serverDeps{
		githubURL:    getEnv("SITE_GITHUB_URL", "https://github.com/kunalatmosoft/Dokser"),
		editorEmails: splitList(os.Getenv("EDITOR_EMAILS")),
	}

	// Initialize Firebase
	credPath := getEnv("FIREBASE_CREDENTIALS_PATH", "./firebase-service-account.json")
	authClient, err := services.InitFirebase(context.Background(), credPath)
	if err != nil {
		log.Printf("Warning: Firebase initialization failed: %v", err)
		log.Println("The content editor will not work until valid credentials are provided")
	} else {
		deps.authClient = authClient
	}

	// Initialize Database
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := services.InitDB(databaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := services.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
		deps.db = db
	} else {
		log.Println("Warning: DATABASE_URL not set, pages render without stored content")
	}

	// Initialize Redis
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cache, err := services.NewRedisCache(redisURL)
		if err != nil {
			log.Printf("Warning: Redis unavailable, content caching disabled: %v", err)
		} else {
			deps.cache = cache
			defer cache.Close()
		}
	}

	e := newServer(deps)

	port := getEnv("PORT", "8080")

	go func() {
		log.Printf("Server starting on port %s", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
