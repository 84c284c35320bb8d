package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sidd-coder1/Fullstack-LMS/config"
	"github.com/sidd-coder1/Fullstack-LMS/internal/api/handler"
	"github.com/sidd-coder1/Fullstack-LMS/internal/api/middleware"
	"github.com/sidd-coder1/Fullstack-LMS/pkg/jwt"
	"github.com/sidd-coder1/Fullstack-LMS/pkg/redis"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// Setup initialises and returns the Gin engine with all routes mounted.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// auth (no token required)
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 20, time.Minute))
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// routes behind authentication
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// auth (token required)
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.POST("/auth/password", h.Auth.ChangePassword)

			// users
			users := authorized.Group("/users")
			{
				users.GET("/me", h.Auth.Me)
				users.GET("", middleware.RoleAuth("admin", "staff"), h.User.List)
				users.GET("/:id", h.User.Get)
				users.PATCH("/:id", h.User.Update) // admin or self (enforced in service)
				users.PUT("/:id/role", middleware.RoleAuth("admin"), h.User.AssignRole)
				users.DELETE("/:id", middleware.RoleAuth("admin"), h.User.Delete)
			}

			// labs
			labs := authorized.Group("/labs")
			{
				labs.GET("", h.Lab.List)
				labs.GET("/:id", h.Lab.Get)
				labs.POST("", middleware.RoleAuth("admin", "staff"), h.Lab.Create)
				labs.PATCH("/:id", middleware.RoleAuth("admin", "staff"), h.Lab.Update)
				labs.DELETE("/:id", middleware.RoleAuth("admin"), h.Lab.Delete)

				// PCs scoped to a lab
				labs.GET("/:id/pcs", h.PC.ListByLab)
				labs.POST("/:id/pcs", middleware.RoleAuth("admin", "staff"), h.PC.Create)

				// class periods scoped to a lab
				labs.GET("/:id/periods", h.ClassPeriod.ListByLab)
				labs.POST("/:id/periods", middleware.RoleAuth("admin", "staff"), h.ClassPeriod.Create)

				// timetable exports
				labs.GET("/:id/timetable.xlsx", h.Export.Timetable)
				labs.GET("/:id/timetable.ics", h.Export.Calendar)
			}

			// PCs
			pcs := authorized.Group("/pcs")
			{
				pcs.GET("/:id", h.PC.Get)
				pcs.PATCH("/:id", middleware.RoleAuth("admin", "staff"), h.PC.Update)
				pcs.DELETE("/:id", middleware.RoleAuth("admin"), h.PC.Delete)
			}

			// bookings
			bookings := authorized.Group("/bookings")
			{
				bookings.GET("", h.Booking.List)
				bookings.GET("/:id", h.Booking.Get)
				bookings.POST("", h.Booking.Create)
				bookings.POST("/:id/cancel", h.Booking.Cancel) // owner or admin (enforced in service)
			}

			// class periods
			periods := authorized.Group("/periods")
			{
				periods.GET("/:id", h.ClassPeriod.Get)
				periods.GET("/:id/availability", h.ClassPeriod.ListAvailability)
				periods.DELETE("/:id", middleware.RoleAuth("admin", "staff"), h.ClassPeriod.Delete)
			}

			// maintenance requests
			maintenance := authorized.Group("/maintenance")
			{
				maintenance.GET("", h.Maintenance.List)
				maintenance.GET("/:id", h.Maintenance.Get)
				maintenance.POST("", h.Maintenance.Create)
				maintenance.PATCH("/:id", middleware.RoleAuth("admin", "staff"), h.Maintenance.Update)
			}
		}
	}

	return r
}
