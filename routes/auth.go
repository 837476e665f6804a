package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/MayBaraniKoKo/emperor-gold-catalogue/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", auth.SignUp(deps.DB))
		authGroup.POST("/signin", auth.SignIn(deps.DB))
		authGroup.GET("/session", auth.GetSession())

		// Anonymous session for cart scoping
		authGroup.POST("/guest", auth.CreateGuestSession())
	}
}
