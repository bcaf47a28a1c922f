package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"personality_sessions_backend/internal/database"
	"personality_sessions_backend/internal/router"
	"personality_sessions_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	utils.InitLogger()

	dbPath := utils.Getenv("DB_PATH", "./personality_sessions.db")
	staticDir := utils.Getenv("STATIC_DIR", "./web")
	port := utils.Getenv("PORT", "3000")

	db, err := database.Open(dbPath)
	if err != nil {
		utils.LogError(err, "Failed to initialize database")
		os.Exit(1)
	}
	utils.LogInfo("Connected to SQLite database", map[string]interface{}{"path": dbPath})

	engine := gin.New()
	engine.Use(utils.GinLogger())

	// Catch-all fault handler: any unhandled panic during request processing
	// becomes a generic 500 JSON body.
	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.LogInfo("Recovered from panic in request handler", map[string]interface{}{
			"path":  c.Request.URL.Path,
			"panic": recovered,
		})
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Internal server error", ""))
	}))

	corsConfig := cors.DefaultConfig()
	if originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS"); originsEnv != "" {
		corsConfig.AllowOrigins = strings.Split(originsEnv, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	engine.Use(cors.New(corsConfig))

	router.Setup(engine, db, staticDir)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: engine,
	}

	go func() {
		utils.LogInfo("Server starting", map[string]interface{}{"port": port})
		utils.LogInfo("Visit the website", map[string]interface{}{"url": "http://localhost:" + port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.LogError(err, "Failed to start server")
			os.Exit(1)
		}
	}()

	// Graceful shutdown: stop accepting requests, then close the store.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.LogInfo("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		utils.LogError(err, "Server forced to shutdown")
	}

	if err := db.Close(); err != nil {
		utils.LogError(err, "Error closing database")
	} else {
		utils.LogInfo("Database connection closed")
	}
}
