// internal/app/app.go
package app

import (
	"github.com/WriteCraft/StoryBuilder/internal/config"
	"github.com/WriteCraft/StoryBuilder/internal/di"
	"github.com/WriteCraft/StoryBuilder/internal/services"
)

// 关键服务名称，启动健康检查使用
var CriticalServices = []string{"project", "export", "ai", "proxy"}

// InitServices 按依赖顺序初始化所有服务并注册到容器
func InitServices(cfg *config.Config) error {
	container := di.GetContainer()

	projectService := services.NewProjectService()
	container.Register("project", projectService)

	exportService := services.NewExportService(projectService)
	container.Register("export", exportService)

	aiService := services.NewAIService()
	container.Register("ai", aiService)

	proxyService := services.NewProxyServiceWithTimeout(cfg.LocalLLMTimeout)
	container.Register("proxy", proxyService)

	return nil
}
