// internal/api/router.go
package api

import (
	"fmt"

	"github.com/WriteCraft/StoryBuilder/internal/di"
	"github.com/WriteCraft/StoryBuilder/internal/services"
	"github.com/gin-gonic/gin"
)

// SetupRouter 配置HTTP路由
// 只从容器获取服务，不创建新实例
func SetupRouter() (*gin.Engine, error) {
	container := di.GetContainer()

	projectService, ok := container.Get("project").(*services.ProjectService)
	if !ok {
		return nil, fmt.Errorf("项目服务未正确初始化")
	}

	exportService, ok := container.Get("export").(*services.ExportService)
	if !ok {
		return nil, fmt.Errorf("导出服务未正确初始化")
	}

	aiService, ok := container.Get("ai").(*services.AIService)
	if !ok {
		return nil, fmt.Errorf("AI服务未正确初始化")
	}

	proxyService, ok := container.Get("proxy").(*services.ProxyService)
	if !ok {
		return nil, fmt.Errorf("代理服务未正确初始化")
	}

	handler := NewHandler(projectService, exportService, aiService, proxyService)

	r := gin.Default()
	registerRoutes(r, handler)

	return r, nil
}

// registerRoutes 注册所有路由和中间件
func registerRoutes(r *gin.Engine, handler *Handler) {
	r.Use(corsMiddleware())
	r.Use(requestIDMiddleware())
	r.Use(metricsMiddleware())

	// WebSocket 支持
	r.GET("/ws/generate", handler.GenerateWebSocket)

	// ===============================
	// API路由组
	// ===============================
	api := r.Group("/api")
	{
		// ===============================
		// 项目相关路由
		// ===============================
		projectsGroup := api.Group("/projects")
		{
			projectsGroup.GET("", handler.GetProjects)
			projectsGroup.POST("", handler.CreateProject)
			projectsGroup.GET("/:id", handler.GetProject)
			projectsGroup.PUT("/:id", handler.UpdateProject)
			projectsGroup.DELETE("/:id", handler.DeleteProject)
			projectsGroup.GET("/:id/export", handler.ExportProject)
		}

		// ===============================
		// AI相关路由
		// ===============================
		aiGroup := api.Group("/ai")
		{
			aiGroup.POST("/generate", handler.GenerateContent)
			aiGroup.GET("/providers", handler.GetProviders)
		}

		// ===============================
		// 本地LLM代理
		// ===============================
		api.POST("/llm/proxy", handler.ProxyLocalLLM)

		// ===============================
		// 运行状态
		// ===============================
		api.GET("/stats", handler.GetStats)
		api.GET("/ws/status", handler.GetWebSocketStatus)
	}
}
