// internal/llm/providers/local/local.go
package local

import (
	"context"

	"github.com/WriteCraft/StoryBuilder/internal/llm"
)

func init() {
	llm.Register("local", func() llm.Provider {
		return &Provider{
			endpoint: "http://localhost:11434/api/generate",
		}
	})
}

// Provider 本地模型提供者
// 不要求API密钥，请求经由本地LLM代理转发
type Provider struct {
	endpoint     string
	defaultModel string
}

func (p *Provider) Initialize(config map[string]string) error {
	if endpoint, exists := config["endpoint"]; exists && endpoint != "" {
		p.endpoint = endpoint
	}

	if model, exists := config["default_model"]; exists && model != "" {
		p.defaultModel = model
	}

	return nil
}

func (p *Provider) GetName() string {
	return "Local LLM"
}

// GenerateContent 当前返回占位内容
// 接入本地模型服务器时通过代理调用 p.endpoint
func (p *Provider) GenerateContent(ctx context.Context, req llm.GenerationRequest) (*llm.GenerationResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = p.defaultModel
	}

	return &llm.GenerationResponse{
		Text:         "本地AI生成内容: " + req.Prompt,
		ModelName:    model,
		ProviderName: p.GetName(),
	}, nil
}
