// internal/models/export.go
package models

import (
	"time"
)

// 支持的导出格式
const (
	ExportFormatTXT  = "txt"
	ExportFormatJSON = "json"
)

// ExportResult 导出结果
type ExportResult struct {
	ProjectID   string    `json:"project_id"`
	Title       string    `json:"title"`
	Format      string    `json:"format"`
	Content     string    `json:"content"`
	GeneratedAt time.Time `json:"generated_at"`
	FileName    string    `json:"file_name"` // 建议的下载文件名
}
