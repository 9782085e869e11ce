// internal/llm/providers/claude/claude.go
package claude

import (
	"context"
	"errors"

	"github.com/WriteCraft/StoryBuilder/internal/llm"
)

func init() {
	llm.Register("claude", func() llm.Provider {
		return &Provider{
			defaultModel: "claude-3-sonnet-20240229",
		}
	})
}

type Provider struct {
	apiKey       string
	defaultModel string
}

func (p *Provider) Initialize(config map[string]string) error {
	apiKey, exists := config["api_key"]
	if !exists || apiKey == "" {
		return errors.New("claude api密钥未提供")
	}
	p.apiKey = apiKey

	if model, exists := config["default_model"]; exists && model != "" {
		p.defaultModel = model
	}

	return nil
}

func (p *Provider) GetName() string {
	return "Claude"
}

// GenerateContent 当前返回占位内容
// 接入真实的 messages API 时替换此实现
func (p *Provider) GenerateContent(ctx context.Context, req llm.GenerationRequest) (*llm.GenerationResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = p.defaultModel
	}

	return &llm.GenerationResponse{
		Text:         "AI生成内容: " + req.Prompt,
		ModelName:    model,
		ProviderName: p.GetName(),
	}, nil
}
