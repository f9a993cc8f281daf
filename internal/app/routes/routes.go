package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bkaya/studentportal/internal/app/controllers"
	"github.com/bkaya/studentportal/internal/app/models"
	"github.com/bkaya/studentportal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	dashboardController *controllers.DashboardController,
	announcementController *controllers.AnnouncementController,
	materialController *controllers.MaterialController,
	chatController *controllers.ChatController,
	timetableController *controllers.TimetableController,
	leaveController *controllers.LeaveController,
	notificationController *controllers.NotificationController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/dashboard", dashboardController.GetDashboard)
		authenticated.GET("/timetable", timetableController.Get)
		authenticated.GET("/notifications", notificationController.List)

		// Announcements: every role reads, admins and faculty post
		announcements := authenticated.Group("/announcements")
		{
			announcements.GET("", announcementController.GetAll)

			announcementsProtected := announcements.Group("")
			announcementsProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleFaculty))
			{
				announcementsProtected.POST("", announcementController.Create)
			}
		}

		// Study materials: every role reads and downloads, admins and faculty upload
		materials := authenticated.Group("/materials")
		{
			materials.GET("", materialController.List)
			materials.GET("/:id/download", materialController.Download)

			materialsProtected := materials.Group("")
			materialsProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleFaculty))
			{
				materialsProtected.POST("", materialController.Upload)
			}
		}

		// Chat: view is role-shaped, any role may send
		chat := authenticated.Group("/chat")
		{
			chat.GET("", chatController.GetView)
			chat.POST("/messages", chatController.Send)
		}

		// Leave: students apply, admins and faculty review
		leave := authenticated.Group("/leave")
		{
			leaveStudent := leave.Group("")
			leaveStudent.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				leaveStudent.POST("", leaveController.Apply)
			}

			leaveReview := leave.Group("")
			leaveReview.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleFaculty))
			{
				leaveReview.GET("/pending", leaveController.ListPending)
				leaveReview.POST("/:id/:decision", leaveController.Decide)
			}
		}

		// Admin-only user management and maintenance
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.GET("/users", adminController.ListUsers)
			admin.DELETE("/users/:id", adminController.DeleteUser)
			admin.POST("/reset", adminController.Reset)
		}
	}
}
