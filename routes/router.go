package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/jagdish-cm/cricketora-sub000/config"
	"github.com/jagdish-cm/cricketora-sub000/internal/live"
	"github.com/jagdish-cm/cricketora-sub000/internal/match"
)

func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>Cricketora</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>Cricketora scoring API 🏏</h1>
					<p><a href="/swagger/index.html">swagger</a></p>
				</body>
			</html>
		`))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")

	hub := live.NewHub()
	matchService := match.MatchRoutes(api, db, appConfig, hub)
	live.LiveRoutes(api, hub, matchService)

	return r
}
