package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sahiti3636/finwise-ai/advisor"
	"github.com/sahiti3636/finwise-ai/books"
	"github.com/sahiti3636/finwise-ai/db"
	"github.com/sahiti3636/finwise-ai/handlers"
	"github.com/sahiti3636/finwise-ai/llm"
	"github.com/sahiti3636/finwise-ai/logger"
	"github.com/sahiti3636/finwise-ai/middleware"
	"github.com/sahiti3636/finwise-ai/mongodb"
)

func main() {
	envErr := godotenv.Load()

	development := os.Getenv("GIN_MODE") != "release"
	if err := logger.Init(development, logger.LogLevel(os.Getenv("LOG_LEVEL"))); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if envErr != nil {
		logger.Get().Warn(".env file not found")
	}

	if err := db.InitDB(); err != nil {
		logger.Get().Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.CloseDB()

	if err := mongodb.InitMongoDB(); err != nil {
		logger.Get().Fatal("failed to initialize MongoDB", zap.Error(err))
	}
	defer mongodb.CloseMongoDB()

	handlers.Advisor = advisor.New(llm.NewClient(os.Getenv("GEMINI_API_KEY")))

	if os.Getenv("SEED_BOOKS") == "true" {
		if err := books.Seed(books.NewCoverService()); err != nil {
			logger.Get().Error("failed to seed book catalog", zap.Error(err))
		}
	}

	router := gin.Default()
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})
	router.Use(middleware.CorsMiddleware)

	// Public routes
	router.POST("/api/register", handlers.HandleRegister)
	router.POST("/api/login", handlers.HandleLogin)

	// API routes
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware)
	{
		api.GET("/user", handlers.HandleGetCurrentUser)
		api.POST("/change-password", handlers.HandleChangePassword)

		api.GET("/profile", handlers.HandleGetProfile)
		api.PUT("/profile", handlers.HandleUpdateProfile)

		api.GET("/dashboard", handlers.HandleGetDashboard)
		api.GET("/tax-savings", handlers.HandleGetTaxSavings)
		api.GET("/benefits", handlers.HandleGetBenefits)

		api.POST("/chatbot", handlers.HandleChat)
		api.GET("/chatbot/history", handlers.HandleGetChatHistory)
		api.DELETE("/chatbot/history", handlers.HandleClearChatHistory)

		api.GET("/wisdom-library", handlers.HandleGetWisdomLibrary)
		api.GET("/books", handlers.HandleListBooks)
		api.GET("/books/filters", handlers.HandleGetBookFilters)
		api.GET("/books/:id", handlers.HandleGetBook)

		api.GET("/reading-history", handlers.HandleGetReadingHistory)
		api.POST("/reading-history", handlers.HandleUpdateReadingHistory)
		api.GET("/reading-preferences", handlers.HandleGetReadingPreferences)
		api.PUT("/reading-preferences", handlers.HandleUpdateReadingPreferences)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Get().Info("server starting", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Get().Fatal("failed to start server", zap.Error(err))
	}
}
