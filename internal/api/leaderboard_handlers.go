package api

import (
	"github.com/Ashish-Code-01/internshp-project/internal/service"
	"github.com/gin-gonic/gin"
)

func GetLeaderboard(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ranked, err := service.Leaderboard(c.Request.Context(), app.InternRepo())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to load leaderboard")
			return
		}
		HandleSuccess(c, app.Logger(), ranked)
	}
}

func GetLeaderboardSummary(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ranked, err := service.Leaderboard(c.Request.Context(), app.InternRepo())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to load leaderboard")
			return
		}
		HandleSuccess(c, app.Logger(), service.Summarize(ranked))
	}
}
