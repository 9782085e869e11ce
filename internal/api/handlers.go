// internal/api/handlers.go
package api

import (
	"errors"
	"net/http"
	"time"

	apperrors "github.com/WriteCraft/StoryBuilder/internal/errors"
	"github.com/WriteCraft/StoryBuilder/internal/models"
	"github.com/WriteCraft/StoryBuilder/internal/services"
	"github.com/WriteCraft/StoryBuilder/internal/utils"
	"github.com/gin-gonic/gin"
)

// Handler 处理API请求
type Handler struct {
	ProjectService *services.ProjectService // 项目存储
	ExportService  *services.ExportService  // 导出服务
	AIService      *services.AIService      // AI内容生成
	ProxyService   *services.ProxyService   // 本地LLM代理
	Response       *ResponseHelper          // 响应助手
}

// APIResponse 标准API响应格式
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Message   string      `json:"message,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id,omitempty"` // 用于调试和追踪
}

// APIError 标准错误格式
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NewHandler 创建API处理器
func NewHandler(
	projectService *services.ProjectService,
	exportService *services.ExportService,
	aiService *services.AIService,
	proxyService *services.ProxyService,
) *Handler {
	return &Handler{
		ProjectService: projectService,
		ExportService:  exportService,
		AIService:      aiService,
		ProxyService:   proxyService,
		Response:       NewResponseHelper(),
	}
}

// respondServiceError 将服务层错误映射为HTTP响应
// 所有错误在边界处转换为可展示的文本
func (h *Handler) respondServiceError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			h.Response.Error(c, http.StatusNotFound, appErr.Code, appErr.Message)
		case apperrors.ErrorTypeAIConfig, apperrors.ErrorTypeFile:
			h.Response.Error(c, http.StatusBadRequest, appErr.Code, appErr.Message)
		default:
			h.Response.Error(c, http.StatusInternalServerError, appErr.Code, appErr.Message)
		}
		return
	}

	h.Response.InternalError(c, err.Error())
}

// ------------------------------------------------
// 项目 CRUD
// ------------------------------------------------

// GetProjects 获取所有项目列表
func (h *Handler) GetProjects(c *gin.Context) {
	projects := h.ProjectService.ListProjects()
	h.Response.Success(c, projects, "项目列表获取成功")
}

// CreateProject 创建新项目
func (h *Handler) CreateProject(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "请求参数错误", err.Error())
		return
	}

	project, err := h.ProjectService.CreateProject(req.Title, req.Description)
	if err != nil {
		h.Response.InternalError(c, "创建项目失败", err.Error())
		return
	}

	h.Response.Created(c, project, "项目创建成功")
}

// GetProject 获取指定项目详情
func (h *Handler) GetProject(c *gin.Context) {
	projectID := c.Param("id")

	project, err := h.ProjectService.GetProject(projectID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	h.Response.Success(c, project, "项目数据获取成功")
}

// UpdateProject 整体替换指定项目
func (h *Handler) UpdateProject(c *gin.Context) {
	projectID := c.Param("id")

	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		h.Response.BadRequest(c, "请求参数错误", err.Error())
		return
	}

	updated, err := h.ProjectService.UpdateProject(projectID, &project)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	h.Response.Success(c, updated, "项目更新成功")
}

// DeleteProject 删除指定项目
func (h *Handler) DeleteProject(c *gin.Context) {
	projectID := c.Param("id")

	if err := h.ProjectService.DeleteProject(projectID); err != nil {
		h.respondServiceError(c, err)
		return
	}

	h.Response.Success(c, gin.H{"id": projectID}, "项目删除成功")
}

// ExportProject 导出指定项目
func (h *Handler) ExportProject(c *gin.Context) {
	projectID := c.Param("id")
	format := c.DefaultQuery("format", models.ExportFormatTXT)

	result, err := h.ExportService.ExportProject(projectID, format)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	h.Response.ExportResponse(c, result)
}

// ------------------------------------------------
// AI 内容生成
// ------------------------------------------------

// GenerateContent 生成内容
func (h *Handler) GenerateContent(c *gin.Context) {
	var req struct {
		Prompt string          `json:"prompt" binding:"required"`
		Config models.AIConfig `json:"config"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "请求参数错误", err.Error())
		return
	}

	content, err := h.AIService.GenerateContent(c.Request.Context(), req.Prompt, req.Config)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	h.Response.Success(c, gin.H{"content": content}, "内容生成成功")
}

// GetProviders 获取可用的AI提供者列表
func (h *Handler) GetProviders(c *gin.Context) {
	h.Response.Success(c, h.AIService.ListProviders())
}

// ------------------------------------------------
// 本地LLM代理
// ------------------------------------------------

// ProxyLocalLLM 转发本地LLM请求
// 代理错误按纯文本返回，UI直接展示
func (h *Handler) ProxyLocalLLM(c *gin.Context) {
	var req struct {
		Endpoint string            `json:"endpoint" binding:"required"`
		Body     string            `json:"body"`
		Headers  map[string]string `json:"headers"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "请求参数错误", err.Error())
		return
	}

	result, err := h.ProxyService.Forward(c.Request.Context(), req.Endpoint, req.Body, req.Headers)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	h.Response.Success(c, gin.H{"response": result})
}

// ------------------------------------------------
// 运行状态
// ------------------------------------------------

// GetStats 返回指标快照
func (h *Handler) GetStats(c *gin.Context) {
	snapshot := utils.GetMetricsCollector().Snapshot()
	snapshot["project_count"] = h.ProjectService.Count()

	h.Response.Success(c, snapshot)
}
