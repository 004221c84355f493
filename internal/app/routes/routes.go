package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/victoriayuechen/tarecruit/internal/app/controllers"
	"github.com/victoriayuechen/tarecruit/internal/app/models"
	"github.com/victoriayuechen/tarecruit/internal/app/models/dto"
	"github.com/victoriayuechen/tarecruit/internal/config"
	"github.com/victoriayuechen/tarecruit/internal/middleware"
)

// SetupRouter mounts the route groups of the enabled services. In a single
// deployment all five groups are mounted; in a split deployment each binary
// enables its own group and the others are reached over HTTP.
func SetupRouter(
	router *gin.Engine,
	cfg *config.Config,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	applicationController *controllers.ApplicationController,
	taController *controllers.TaController,
	notificationController *controllers.NotificationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	if cfg.ServiceEnabled(config.ServiceIdentity) {
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
		}

		authProtected := v1.Group("/auth")
		authProtected.Use(authMiddleware.JWTAuth())
		{
			authProtected.GET("/users/:username", authController.GetUser)

			// Only lecturers and admins may grant the ta role; the
			// application service calls this with the lecturer's token.
			grant := authProtected.Group("")
			grant.Use(authMiddleware.RolesRequired(models.AuthorityLecturer, models.AuthorityAdmin))
			{
				grant.PUT("/add-role-ta/:username", authController.GrantTARole)
			}
		}
	}

	if cfg.ServiceEnabled(config.ServiceCourse) {
		courses := v1.Group("/courses")
		courses.Use(authMiddleware.JWTAuth())
		{
			courses.GET("", courseController.ListCourses)
			courses.GET("/:code", courseController.GetCourse)
			courses.GET("/course/averageWorkload/:code", courseController.AverageWorkload)

			coursesLecturer := courses.Group("")
			coursesLecturer.Use(authMiddleware.RolesRequired(models.AuthorityLecturer, models.AuthorityAdmin))
			{
				coursesLecturer.POST("", courseController.CreateCourse)
				coursesLecturer.PUT("/:code", courseController.UpdateCourse)
				coursesLecturer.PUT("/:code/increment-tas", courseController.IncrementTAs)
			}
		}
	}

	if cfg.ServiceEnabled(config.ServiceApplication) {
		applications := v1.Group("/applications")
		applications.Use(authMiddleware.JWTAuth())
		{
			applications.GET("/:id", applicationController.Get)
			applications.GET("/mine", applicationController.Mine)

			applicationsStudent := applications.Group("")
			applicationsStudent.Use(authMiddleware.RolesRequired(models.AuthorityStudent))
			{
				applicationsStudent.POST("", applicationController.Submit)
				applicationsStudent.PUT("/:id/withdraw", applicationController.Withdraw)
			}

			applicationsLecturer := applications.Group("")
			applicationsLecturer.Use(authMiddleware.RolesRequired(models.AuthorityLecturer, models.AuthorityAdmin))
			{
				applicationsLecturer.GET("", applicationController.List)
				applicationsLecturer.PUT("/:id/decide", applicationController.Decide)
			}
		}
	}

	if cfg.ServiceEnabled(config.ServiceTA) {
		ta := v1.Group("/ta")
		ta.Use(authMiddleware.JWTAuth())
		{
			ta.GET("/countTa/:code", taController.CountTAs)
			ta.GET("/workload-hours/:code", taController.WorkloadHours)
			ta.GET("/reviews", taController.GetReviews)

			taOnly := ta.Group("")
			taOnly.Use(authMiddleware.RolesRequired(models.AuthorityTA))
			{
				taOnly.GET("/contracts", taController.GetContracts)
				taOnly.PUT("/contracts/:code/sign", taController.SignContract)
				taOnly.POST("/workloads", taController.DeclareWorkload)
			}

			taLecturer := ta.Group("")
			taLecturer.Use(authMiddleware.RolesRequired(models.AuthorityLecturer, models.AuthorityAdmin))
			{
				taLecturer.POST("/contracts", taController.CreateContract)
				taLecturer.POST("/reviews", taController.CreateReview)
			}
		}
	}

	if cfg.ServiceEnabled(config.ServiceNotification) {
		notifications := v1.Group("/notifications")
		notifications.Use(authMiddleware.JWTAuth())
		{
			// Enqueueing is for deciders only; students would otherwise be
			// able to plant forged status updates in any inbox.
			notificationsDecider := notifications.Group("")
			notificationsDecider.Use(authMiddleware.RolesRequired(models.AuthorityAdmin, models.AuthorityLecturer))
			{
				notificationsDecider.POST("/create_notification", notificationController.Create)
			}

			notifications.GET("/get_notifications/:username", notificationController.Get)
		}
	}

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
}
