package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/crewdeck-dev/crewdeck/internal/handlers"
	"github.com/crewdeck-dev/crewdeck/internal/types"
)

func NewRouter(h *handlers.Handler) *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = types.MaxUploadSize

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", h.HealthCheck)
		api.GET("/dashboard", h.GetDashboard)

		members := api.Group("/team-members")
		{
			members.GET("", h.ListTeamMembers)
			members.POST("", h.CreateTeamMember)
			members.GET("/:id", h.GetTeamMember)
			members.PATCH("/:id", h.UpdateTeamMember)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", h.ListTasks)
			tasks.POST("", h.CreateTask)
			tasks.PATCH("/:id", h.UpdateTask)
			tasks.DELETE("/:id", h.DeleteTask)
		}

		uploads := api.Group("/uploads")
		{
			uploads.GET("", h.ListUploads)
			uploads.POST("", h.CreateUpload)
			uploads.DELETE("/:id", h.DeleteUpload)
			uploads.GET("/:id/download", h.DownloadUpload)
		}
	}

	return r
}
