package teams

import (
	"lostandfound/config"
	"lostandfound/middleware"

	"github.com/gin-gonic/gin"
)

// TeamsController serves the volunteer team directory the bot shows to
// people asking who to call.
func TeamsController(router *gin.Engine, directory []config.VolunteerTeam) {
	router.GET("/teams", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		c.JSON(200, gin.H{"teams": directory, "count": len(directory)})
	})
}
