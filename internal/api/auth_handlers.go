package api

import (
	"github.com/Ashish-Code-01/internshp-project/internal/service"
	"github.com/gin-gonic/gin"
)

// PostLogin never rejects credentials. A body that fails to parse is
// treated as empty.
func PostLogin(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			app.Logger().Debugf("[request_id=%s] ignoring unreadable login body: %v", c.GetString(requestIDKey), err)
		}

		resp, err := service.Login(c.Request.Context(), authDeps(app), &req)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Login failed")
			return
		}
		HandleSuccess(c, app.Logger(), resp)
	}
}

func PostSignup(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid request body")
			return
		}

		resp, err := service.Signup(c.Request.Context(), authDeps(app), &req)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Signup failed")
			return
		}
		HandleSuccess(c, app.Logger(), resp)
	}
}
