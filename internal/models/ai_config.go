// internal/models/ai_config.go
package models

// AI提供者名称常量
const (
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
	ProviderLocal  = "local"
)

// AIConfig 表示一次内容生成调用的AI配置
// 仅作为参数传递，不做持久化
type AIConfig struct {
	Provider    string  `json:"provider"`
	APIKey      string  `json:"api_key,omitempty"`
	Model       string  `json:"model"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}
