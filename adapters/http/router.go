package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type RouterDeps struct {
	AuthHandler   *AuthHandler
	AboutHandler  *AboutHandler
	ResumeHandler *ResumeHandler
	JWTService    *auth.JWTService
	Logger        logger.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		CorrelationIDMiddleware(),
		RequestLogger(deps.Logger),
		MetricsMiddleware(),
		ErrorMiddleware(deps.Logger),
	)

	router.GET("/metrics", MetricsHandler())

	authMiddleware := AuthMiddleware(deps.JWTService, deps.Logger)
	adminOnly := RequireRole(auth.RoleAdmin)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			respond(c, http.StatusOK, "", gin.H{"status": "UP"})
		})
		api.POST("/auth/login", deps.AuthHandler.Login)

		about := api.Group("/about")
		{
			about.GET("", deps.AboutHandler.GetAbout)
			about.GET("/resume", deps.ResumeHandler.GetResume)
			about.GET("/resume/download", deps.ResumeHandler.DownloadResume)

			admin := about.Group("")
			admin.Use(authMiddleware, adminOnly)
			{
				admin.PUT("", deps.AboutHandler.UpdateAbout)
				admin.POST("/skills", deps.AboutHandler.AddSkill)
				admin.DELETE("/skills", deps.AboutHandler.DeleteSkill)
				admin.PUT("/resume", deps.ResumeHandler.UploadResume)
			}
		}
	}

	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "Route not found")
	})
	return router
}
