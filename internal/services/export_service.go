// internal/services/export_service.go
package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/WriteCraft/StoryBuilder/internal/errors"
	"github.com/WriteCraft/StoryBuilder/internal/models"
	"github.com/WriteCraft/StoryBuilder/internal/utils"
)

// ExportService 将项目渲染为可下载的文本格式
type ExportService struct {
	projectService *ProjectService
	metrics        *utils.MetricsCollector
	logger         *utils.Logger
}

// NewExportService 创建导出服务
func NewExportService(projectService *ProjectService) *ExportService {
	return &ExportService{
		projectService: projectService,
		metrics:        utils.GetMetricsCollector(),
		logger:         utils.GetLogger(),
	}
}

// ExportProject 导出指定项目
// 支持 txt 和 json 两种格式，其余格式返回文件错误
// 导出是只读操作，任何失败都不会修改存储
func (s *ExportService) ExportProject(projectID, format string) (*models.ExportResult, error) {
	project, err := s.projectService.GetProject(projectID)
	if err != nil {
		return nil, err
	}

	var content string
	switch format {
	case models.ExportFormatTXT:
		content = s.renderText(project)
	case models.ExportFormatJSON:
		data, err := json.MarshalIndent(project, "", "  ")
		if err != nil {
			return nil, errors.NewFileError("JSON转换错误", err)
		}
		content = string(data)
	default:
		return nil, errors.NewFileError("不支持的导出格式: "+format, nil)
	}

	s.metrics.IncrementCounter("project.export." + format)
	s.logger.Infof("项目已导出: %s 格式=%s 长度=%d", projectID, format, len(content))

	return &models.ExportResult{
		ProjectID:   project.ID,
		Title:       project.Title,
		Format:      format,
		Content:     content,
		GeneratedAt: time.Now().UTC(),
		FileName:    exportFileName(project.Title, format),
	}, nil
}

// renderText 渲染纯文本导出
// 章节按存储顺序输出，不按 Order 字段排序
func (s *ExportService) renderText(project *models.Project) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("标题: %s\n", project.Title))
	if project.Description != "" {
		sb.WriteString(fmt.Sprintf("简介: %s\n", project.Description))
	}

	for _, chapter := range project.Chapters {
		sb.WriteString(fmt.Sprintf("\n## %s\n", chapter.Title))
		sb.WriteString(chapter.Content)
	}

	return sb.String()
}

// exportFileName 根据标题生成下载文件名
func exportFileName(title, format string) string {
	name := strings.TrimSpace(title)
	if name == "" {
		name = "project"
	}
	// 避免标题中的路径分隔符出现在文件名里
	name = strings.NewReplacer("/", "_", "\\", "_").Replace(name)
	return name + "." + format
}
