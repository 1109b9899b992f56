// Package router assembles the HTTP surface.
package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/eduverse-api/api/swagger"
	"github.com/noah-isme/eduverse-api/internal/handler"
	"github.com/noah-isme/eduverse-api/internal/middleware"
	"github.com/noah-isme/eduverse-api/internal/models"
	"github.com/noah-isme/eduverse-api/internal/service"
	"github.com/noah-isme/eduverse-api/pkg/config"
	"github.com/noah-isme/eduverse-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/eduverse-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/eduverse-api/pkg/middleware/requestid"
)

// Handlers groups the endpoint handlers mounted by New.
type Handlers struct {
	Users         *handler.UserHandler
	Tasks         *handler.TaskHandler
	Habits        *handler.HabitHandler
	Timetable     *handler.TimetableHandler
	Export        *handler.ExportHandler
	Messages      *handler.MessageHandler
	Announcements *handler.AnnouncementHandler
	Coach         *handler.CoachHandler
	Metrics       *handler.MetricsHandler
}

// Options carries the cross-cutting settings of the engine.
type Options struct {
	Env            string
	APIPrefix      string
	AllowedOrigins []string
	Logger         *zap.Logger
	Metrics        *service.MetricsService
}

// New builds the gin engine with middleware and every route.
func New(opts Options, h Handlers) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.APIPrefix == "" {
		opts.APIPrefix = "/api/v1"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(opts.Logger))
	r.Use(corsmiddleware.New(opts.AllowedOrigins))
	r.Use(middleware.Metrics(opts.Metrics))

	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)
	if opts.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(opts.APIPrefix)
	api.Use(middleware.WithResponseMeta(), middleware.ActingUser())
	teacherOnly := middleware.RequireRoles(models.RoleTeacher)
	anyUser := middleware.RequireRoles(models.RoleStudent, models.RoleParent, models.RoleTeacher)

	api.GET("/users", h.Users.List)
	api.GET("/achievements", h.Users.Achievements)

	users := api.Group("/users/:id")
	users.GET("", h.Users.Get)
	users.GET("/mood", h.Users.GetMood)
	users.PUT("/mood", h.Users.SaveMood)

	users.GET("/tasks", h.Tasks.List)
	users.POST("/tasks", teacherOnly, h.Tasks.Create)
	users.GET("/tasks/export", h.Export.Tasks)
	users.PUT("/tasks/:taskId", h.Tasks.Update)

	users.GET("/habits", h.Habits.List)
	users.PUT("/habits/:habitId", h.Habits.Update)
	users.POST("/habits/:habitId/complete", h.Habits.Complete)

	users.GET("/timetable", h.Timetable.List)
	users.POST("/timetable", h.Timetable.Create)
	users.GET("/timetable/export", h.Export.Timetable)

	users.GET("/conversations", h.Messages.Conversations)
	api.GET("/conversations/:id/messages", h.Messages.Messages)
	api.POST("/conversations/:id/messages", anyUser, h.Messages.Send)

	api.GET("/announcements", h.Announcements.List)
	api.POST("/announcements", teacherOnly, h.Announcements.Create)

	coach := api.Group("/coach")
	coach.POST("/explain", h.Coach.Explain)
	coach.POST("/hint", h.Coach.Hint)
	coach.POST("/study-plan", h.Coach.StudyPlan)
	coach.POST("/roadmap", h.Coach.Roadmap)
	coach.POST("/quiz", h.Coach.Quiz)
	coach.POST("/sessions/:id/messages", h.Coach.Chat)
	coach.GET("/sessions/:id", h.Coach.Transcript)

	return r
}
