package api

import (
	"net/http"

	"github.com/Ashish-Code-01/internshp-project/internal/auth"
	"github.com/Ashish-Code-01/internshp-project/internal/response"
	"github.com/gin-gonic/gin"
)

func NewRouter(app App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(app.Logger()))
	r.Use(CORSMiddleware(app.Config().CORSOrigins))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World!")
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, response.OK())
	})

	api := r.Group("/api")
	api.Use(auth.CurrentInternMiddleware(app.Auth(), app.Config().CurrentInternID))
	api.GET("/intern", GetCurrentIntern(app))
	api.GET("/intern/:id", GetIntern(app))
	api.GET("/intern/:id/achievements", GetInternAchievements(app))
	api.GET("/leaderboard", GetLeaderboard(app))
	api.GET("/leaderboard/summary", GetLeaderboardSummary(app))
	api.GET("/achievements", GetAchievements(app))
	api.POST("/login", PostLogin(app))
	api.POST("/signup", PostSignup(app))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.Error("Not found"))
	})
	return r
}
