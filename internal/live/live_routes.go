package live

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/jagdish-cm/cricketora-sub000/internal/match"
	"github.com/jagdish-cm/cricketora-sub000/pkg/responses"
)

// LiveRoutes exposes the viewer WebSocket endpoint. The handshake must
// name an existing match or the connection is rejected before upgrade.
func LiveRoutes(router *gin.RouterGroup, hub *Hub, matchService *match.MatchService) {
	router.GET("/matches/:id/ws", func(c *gin.Context) {
		matchID := c.Param("id")
		if _, err := matchService.GetMatch(matchID); err != nil {
			if errors.Is(err, match.ErrNotFound) {
				responses.NotFound(c, "Match")
				return
			}
			responses.InternalServerError(c, err.Error())
			return
		}
		hub.Join(matchID, c.Writer, c.Request)
	})
}
