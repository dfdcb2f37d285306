// router/router.go

package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/controller"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/middleware"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/realtime"
)

func SetupRouter(
	controllers *controller.Controllers,
	hub *realtime.Hub,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/ws", hub.HandleConnection)

	api := router.Group("/api/v1")
	controllers.Auth.RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.Authenticate())

	controllers.Company.RegisterRoutes(protected)
	controllers.User.RegisterRoutes(protected)
	controllers.Role.RegisterRoutes(protected)
	controllers.Permission.RegisterRoutes(protected)
	controllers.Module.RegisterRoutes(protected)
	controllers.Dept.RegisterRoutes(protected)
	controllers.Task.RegisterRoutes(protected)
	controllers.Iteration.RegisterRoutes(protected)
	controllers.Assignment.RegisterRoutes(protected)
	controllers.Comment.RegisterRoutes(protected)
	controllers.Document.RegisterRoutes(protected)
	controllers.Notification.RegisterRoutes(protected)
	controllers.Audit.RegisterRoutes(protected)

	return router
}
