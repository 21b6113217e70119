package api

import (
	"strconv"

	"github.com/Ashish-Code-01/internshp-project/internal"
	"github.com/Ashish-Code-01/internshp-project/internal/auth"
	"github.com/Ashish-Code-01/internshp-project/internal/service"
	"github.com/Ashish-Code-01/internshp-project/internal/storage"
	"github.com/gin-gonic/gin"
)

const internNotFound = "Intern not found"

func GetCurrentIntern(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := auth.CurrentInternID(c, app.Config().CurrentInternID)
		intern, err := service.RankedIntern(c.Request.Context(), app.InternRepo(), id)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to load current intern")
			return
		}
		HandleSuccess(c, app.Logger(), intern)
	}
}

func GetIntern(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			HandleError(c, app.Logger(), internal.WrapAppError(404, internNotFound, storage.ErrNotFound), 404, internNotFound)
			return
		}
		intern, err := service.RankedIntern(c.Request.Context(), app.InternRepo(), id)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to load intern")
			return
		}
		HandleSuccess(c, app.Logger(), intern)
	}
}

func GetInternAchievements(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			HandleError(c, app.Logger(), internal.WrapAppError(404, internNotFound, storage.ErrNotFound), 404, internNotFound)
			return
		}
		achievements, err := service.AchievementsFor(c.Request.Context(), app.InternRepo(), app.AchievementRepo(), id)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to load achievements")
			return
		}
		HandleSuccess(c, app.Logger(), achievements)
	}
}

func GetAchievements(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := auth.CurrentInternID(c, app.Config().CurrentInternID)
		achievements, err := service.AchievementsFor(c.Request.Context(), app.InternRepo(), app.AchievementRepo(), id)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to load achievements")
			return
		}
		HandleSuccess(c, app.Logger(), achievements)
	}
}
