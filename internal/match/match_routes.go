package match

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jagdish-cm/cricketora-sub000/config"
	mw "github.com/jagdish-cm/cricketora-sub000/internal/middleware"
)

// MatchRoutes sets up all match-related routes.
func MatchRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, broadcaster Broadcaster) *MatchService {
	matchRepo := NewGormMatchRepository(db)
	matchService := NewMatchService(matchRepo, broadcaster, appConfig.Match.AccessCodeLength)
	matchController := NewMatchController(matchService, appConfig)

	matches := router.Group("/matches")
	{
		// Open endpoints: creation, credential exchange, viewer state.
		matches.POST("", matchController.CreateMatch)
		matches.POST("/resume", matchController.ResumeMatch)
		matches.GET("/:id", matchController.GetMatch)
	}

	// Scorer endpoints require a session token for the match in the route.
	scorer := router.Group("/matches")
	scorer.Use(mw.ScorerAuthMiddleware(appConfig.JWT.AccessTokenSecret))
	{
		scorer.PUT("/:id/setup", matchController.SetupMatch)
		scorer.POST("/:id/start", matchController.StartMatch)
		scorer.POST("/:id/openers", matchController.SelectOpeners)
		scorer.POST("/:id/balls", matchController.RecordBall)
		scorer.POST("/:id/batsman", matchController.SelectBatsman)
		scorer.POST("/:id/bowler", matchController.SelectBowler)
	}

	return matchService
}
