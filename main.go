package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"gallery-app/config"
	"gallery-app/database"
	adminapi "gallery-app/internal/api/admin"
	cartapi "gallery-app/internal/api/cart"
	routes "gallery-app/internal/app/http"
	"gallery-app/internal/infra/notify"
	"gallery-app/internal/infra/storage"
	"gallery-app/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	hub := notify.NewHub()

	sessions := session.NewManager(config.SESSION_DIR, session.DBSource{DB: database.DB})
	hub.Subscribe(sessions)
	if err := sessions.RefreshCatalog(context.Background()); err != nil {
		fmt.Println("⚠️ initial catalog fetch failed:", err)
	}

	cartapi.Sessions = sessions
	adminapi.Notifier = hub

	uploader, err := storage.NewUploader()
	if err != nil {
		fmt.Println("⚠️ object storage disabled:", err)
	} else {
		if err := uploader.EnsureBucket(context.Background()); err != nil {
			fmt.Println("⚠️ bucket check failed:", err)
		}
		adminapi.Uploads = uploader
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("CORS_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, hub)

	r.Run(":" + config.PORT)
}
