// @title           Kosmos Backend API
// @version         1.0.0
// @description     Backend API for the Kosmos personal productivity app. Handles workspaces, tasks with an ordered status workflow, notes, blog posts, Web Push subscriptions, and sermon note image uploads with AI text extraction and markdown formatting.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"log"
	"net/http"
	"net/url"

	"kosmos-backend/docs"
	"kosmos-backend/internal/config"
	"kosmos-backend/internal/database"
	"kosmos-backend/internal/handlers"
	"kosmos-backend/internal/middleware"
	"kosmos-backend/internal/services"
	"kosmos-backend/internal/supabase"
	"kosmos-backend/internal/vision"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	dbURL := cfg.DatabaseURL
	if dbURL == "" {
		log.Println("Warning: DATABASE_URL not set. Migrations will be skipped.")
		log.Println("Please set DATABASE_URL environment variable with your Supabase PostgreSQL connection string")
	}

	// Initialize Supabase clients
	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}

	realtimeClient := supabase.NewRealtimeClient(supabaseClient.Supabase)

	// Initialize the Vertex AI vision client (OCR + markdown formatting)
	visionClient, err := vision.NewClient(context.Background(), cfg.GCPProjectID, cfg.VertexAIRegion, cfg.VisionModel)
	if err != nil {
		log.Fatalf("Failed to initialize vision client: %v", err)
	}
	defer visionClient.Close()

	// Create database client for direct queries
	var dbClient *supabase.DatabaseClient
	if dbURL != "" {
		var err error
		dbClient, err = supabase.NewDatabaseClient(dbURL)
		if err != nil {
			log.Printf("Warning: Failed to initialize database client: %v", err)
			log.Println("Database operations will be limited. Please configure DATABASE_URL properly.")
		} else {
			defer dbClient.Close()

			// Run migrations
			migrator, err := database.NewMigrator(dbURL)
			if err != nil {
				log.Printf("Warning: Failed to initialize migrator: %v", err)
			} else {
				defer migrator.Close()
				if err := migrator.Run(); err != nil {
					log.Printf("Warning: Migration failed: %v", err)
				} else {
					log.Println("Migrations completed successfully")
				}
			}
		}
	}

	// Initialize services (dbClient might be nil, handlers guard for this)
	var sermonService *services.SermonService
	var taskService *services.TaskService
	if dbClient != nil {
		sermonService = services.NewSermonService(dbClient, storageClient, visionClient, realtimeClient)
		taskService, err = services.NewTaskService(dbClient)
		if err != nil {
			log.Fatalf("Failed to initialize task service: %v", err)
		}
	}

	uploadValidator := services.NewUploadValidator(cfg.MaxUploadBytes)

	// Initialize handlers
	workspacesHandler := handlers.NewWorkspacesHandler(dbClient, taskService)
	tasksHandler := handlers.NewTasksHandler(dbClient, taskService)
	tagsHandler := handlers.NewTagsHandler(dbClient, taskService)
	taskTypesHandler := handlers.NewTaskTypesHandler(dbClient, taskService)
	notesHandler := handlers.NewNotesHandler(dbClient, taskService)
	postsHandler := handlers.NewPostsHandler(dbClient)
	uploadHandler := handlers.NewUploadHandler(uploadValidator, dbClient, storageClient)
	sermonNotesHandler := handlers.NewSermonNotesHandler(dbClient, sermonService, taskService)
	notificationsHandler := handlers.NewNotificationsHandler(dbClient)

	// Setup router
	router := gin.Default()

	// Middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	// API routes
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))

	// Workspace routes
	api.POST("/workspaces", workspacesHandler.Create)
	api.GET("/workspaces", workspacesHandler.List)
	api.GET("/workspaces/:workspace_id", workspacesHandler.Get)
	api.PATCH("/workspaces/:workspace_id", workspacesHandler.Update)
	api.DELETE("/workspaces/:workspace_id", workspacesHandler.Delete)

	// Task routes
	api.POST("/tasks", tasksHandler.Create)
	api.GET("/tasks", tasksHandler.List)
	api.GET("/tasks/:task_id", tasksHandler.Get)
	api.PATCH("/tasks/:task_id", tasksHandler.Update)
	api.PATCH("/tasks/:task_id/status", tasksHandler.UpdateStatus)
	api.POST("/tasks/:task_id/move", tasksHandler.Move)
	api.DELETE("/tasks/:task_id", tasksHandler.Delete)

	// Tag routes
	api.POST("/tags", tagsHandler.Create)
	api.GET("/tags", tagsHandler.List)
	api.PATCH("/tags/:tag_id", tagsHandler.Update)
	api.DELETE("/tags/:tag_id", tagsHandler.Delete)

	// Task type routes
	api.POST("/task-types", taskTypesHandler.Create)
	api.GET("/task-types", taskTypesHandler.List)
	api.DELETE("/task-types/:task_type_id", taskTypesHandler.Delete)

	// Note routes
	api.POST("/notes", notesHandler.Create)
	api.GET("/notes", notesHandler.List)
	api.GET("/notes/:note_id", notesHandler.Get)
	api.PATCH("/notes/:note_id", notesHandler.Update)
	api.DELETE("/notes/:note_id", notesHandler.Delete)

	// Post routes
	api.POST("/posts", postsHandler.Create)
	api.GET("/posts", postsHandler.List)
	api.GET("/posts/:post_id", postsHandler.Get)
	api.PATCH("/posts/:post_id", postsHandler.Update)
	api.DELETE("/posts/:post_id", postsHandler.Delete)

	// Sermon note upload and processing
	api.POST("/uploads", uploadHandler.Upload)
	api.POST("/sermon-notes", sermonNotesHandler.Create)
	api.GET("/sermon-notes", sermonNotesHandler.List)
	api.GET("/sermon-notes/:sermon_note_id", sermonNotesHandler.Get)

	// Web Push subscriptions
	api.PUT("/notifications/subscription", notificationsHandler.SaveSubscription)
	api.GET("/notifications/subscriptions", notificationsHandler.ListSubscriptions)
	api.DELETE("/notifications/subscription", notificationsHandler.DeleteSubscription)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
