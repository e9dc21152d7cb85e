package connection

import (
	"log"

	"lostandfound/config"
	"lostandfound/controller/auth"
	"lostandfound/controller/report"
	"lostandfound/controller/teams"
	"lostandfound/livefeed"
	"lostandfound/logger"
	"lostandfound/scheduler"
	"lostandfound/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	cfg := config.Load()

	appLog, err := logger.New(cfg.Mode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLog.Sync()

	router := gin.Default()

	DB, err := DBConnection(cfg)
	if err != nil {
		appLog.Fatal("Failed to connect to database", "error", err)
	}

	FS, FCM, err := FBConnection(cfg)
	if err != nil {
		appLog.Fatal("Failed to initialize Firebase clients", "error", err)
	}
	if FS == nil {
		appLog.Warn("Firebase credentials not configured, live feed disabled")
	}

	reports := store.NewReportStore(DB, appLog)
	feed := livefeed.New(FS, FCM, cfg.FeedCollection, cfg.AlertTopic, appLog)

	directory, err := config.LoadTeams(cfg.TeamsFile)
	if err != nil {
		appLog.Fatal("Failed to load volunteer team directory", "error", err)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	auth.AuthController(router, cfg, appLog)
	report.ReportController(router, reports, feed, appLog)
	teams.TeamsController(router, directory)

	scheduler.Start(reports, feed, cfg, appLog)

	if err := router.Run(":" + cfg.Port); err != nil {
		appLog.Fatal("Server stopped", "error", err)
	}
}
