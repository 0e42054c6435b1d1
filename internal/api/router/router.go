package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"synergysphere/internal/api/handler"
	"synergysphere/internal/api/middleware"
	"synergysphere/internal/pkg/config"
	"synergysphere/internal/pkg/jwt"
	"synergysphere/internal/repository"
	"synergysphere/internal/service"
)

// Setup 设置路由
func Setup(cfg *config.Config, db *gorm.DB, jwtMgr *jwt.Manager) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware())

	// Swagger API 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	assigneeRepo := repository.NewAssigneeRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	threadRepo := repository.NewThreadRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	notifyRepo := repository.NewNotificationRepository(db)

	// 初始化Service
	accessService := service.NewAccessService(projectRepo, memberRepo, taskRepo, threadRepo)
	notifyService := service.NewNotificationService(notifyRepo)
	authService := service.NewAuthService(userRepo, jwtMgr)
	userService := service.NewUserService(userRepo)
	projectService := service.NewProjectService(projectRepo, accessService)
	memberService := service.NewMemberService(memberRepo, userRepo, accessService, notifyService)
	taskService := service.NewTaskService(taskRepo, memberRepo, accessService, notifyService)
	assigneeService := service.NewAssigneeService(assigneeRepo, memberRepo, projectRepo, accessService, notifyService)
	commentService := service.NewCommentService(commentRepo, projectRepo, accessService, notifyService)
	threadService := service.NewThreadService(threadRepo, accessService)
	messageService := service.NewMessageService(messageRepo, projectRepo, accessService, notifyService)

	// 初始化Handler
	healthHandler := handler.NewHealthHandler(db)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService)
	memberHandler := handler.NewMemberHandler(memberService)
	taskHandler := handler.NewTaskHandler(taskService)
	assigneeHandler := handler.NewAssigneeHandler(assigneeService)
	commentHandler := handler.NewCommentHandler(commentService)
	threadHandler := handler.NewThreadHandler(threadService)
	messageHandler := handler.NewMessageHandler(messageService)
	notifyHandler := handler.NewNotificationHandler(notifyService)

	// 健康检查
	r.GET("/health", healthHandler.Check)

	// 公开路由
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// 认证路由
	authed := r.Group("")
	authed.Use(middleware.AuthMiddleware(jwtMgr))
	{
		authed.GET("/auth/me", authHandler.Me)
		authed.PATCH("/auth/password", authHandler.ChangePassword)

		authed.GET("/users", userHandler.List)
		authed.PATCH("/users/me", userHandler.UpdateProfile)
		authed.GET("/users/:id", userHandler.GetByID)

		authed.POST("/projects", projectHandler.Create)
		authed.GET("/projects", projectHandler.List)
		authed.GET("/projects/:projectId", projectHandler.GetByID)
		authed.PATCH("/projects/:projectId", projectHandler.Update)
		authed.DELETE("/projects/:projectId", projectHandler.Delete)

		authed.GET("/projects/:projectId/members", memberHandler.List)
		authed.POST("/projects/:projectId/members", memberHandler.Add)
		authed.GET("/projects/:projectId/members/:userId", memberHandler.Get)
		authed.PATCH("/projects/:projectId/members/:userId", memberHandler.UpdateRole)
		authed.DELETE("/projects/:projectId/members/:userId", memberHandler.Remove)

		authed.GET("/projects/:projectId/tasks", taskHandler.List)
		authed.POST("/projects/:projectId/tasks", taskHandler.Create)
		authed.GET("/tasks/:taskId", taskHandler.GetByID)
		authed.PATCH("/tasks/:taskId", taskHandler.Update)
		authed.DELETE("/tasks/:taskId", taskHandler.Delete)
		authed.GET("/me/tasks", taskHandler.ListMine)

		authed.GET("/tasks/:taskId/assignees", assigneeHandler.List)
		authed.POST("/tasks/:taskId/assignees", assigneeHandler.Add)
		authed.DELETE("/tasks/:taskId/assignees/:userId", assigneeHandler.Remove)

		authed.GET("/tasks/:taskId/comments", commentHandler.List)
		authed.POST("/tasks/:taskId/comments", commentHandler.Create)
		authed.PATCH("/task-comments/:commentId", commentHandler.Update)
		authed.DELETE("/task-comments/:commentId", commentHandler.Delete)

		authed.GET("/projects/:projectId/threads", threadHandler.List)
		authed.POST("/projects/:projectId/threads", threadHandler.Create)
		authed.GET("/threads/:threadId", threadHandler.GetByID)
		authed.PATCH("/threads/:threadId", threadHandler.Update)
		authed.DELETE("/threads/:threadId", threadHandler.Delete)

		authed.GET("/threads/:threadId/messages", messageHandler.List)
		authed.POST("/threads/:threadId/messages", messageHandler.Create)
		authed.PATCH("/messages/:messageId", messageHandler.Update)
		authed.DELETE("/messages/:messageId", messageHandler.Delete)

		authed.GET("/notifications", notifyHandler.List)
		authed.PATCH("/notifications/:id/read", notifyHandler.MarkRead)
		authed.POST("/notifications/read-all", notifyHandler.MarkAllRead)
	}

	return r
}
