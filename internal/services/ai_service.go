// internal/services/ai_service.go
package services

import (
	"context"

	"github.com/WriteCraft/StoryBuilder/internal/errors"
	"github.com/WriteCraft/StoryBuilder/internal/llm"
	"github.com/WriteCraft/StoryBuilder/internal/models"
	"github.com/WriteCraft/StoryBuilder/internal/utils"

	// 注册内容生成提供者
	_ "github.com/WriteCraft/StoryBuilder/internal/llm/providers/claude"
	_ "github.com/WriteCraft/StoryBuilder/internal/llm/providers/local"
	_ "github.com/WriteCraft/StoryBuilder/internal/llm/providers/openai"
)

// 流式输出的单帧最大长度（按rune计）
const streamChunkRunes = 64

// AIService 按配置的提供者分发内容生成请求
// 每次调用根据 AIConfig 构造提供者实例，服务本身无共享状态
type AIService struct {
	metrics *utils.MetricsCollector
	logger  *utils.Logger
}

// NewAIService 创建AI内容生成服务
func NewAIService() *AIService {
	return &AIService{
		metrics: utils.GetMetricsCollector(),
		logger:  utils.GetLogger(),
	}
}

// GenerateContent 生成内容
// 未知的提供者名称返回AI配置错误
func (s *AIService) GenerateContent(ctx context.Context, prompt string, config models.AIConfig) (string, error) {
	provider, err := s.resolveProvider(config)
	if err != nil {
		return "", err
	}

	response, err := provider.GenerateContent(ctx, llm.GenerationRequest{
		Prompt:      prompt,
		Model:       config.Model,
		Temperature: config.Temperature,
		MaxTokens:   config.MaxTokens,
	})
	if err != nil {
		return "", errors.WrapError(err, "内容生成失败", errors.ErrorTypeError)
	}

	s.metrics.IncrementCounter("ai.generate." + config.Provider)
	return response.Text, nil
}

// GenerateContentStream 生成内容并按片段推送
// 生成完成后按固定长度切分为 StreamChunk，最后一帧 Done 为 true
func (s *AIService) GenerateContentStream(ctx context.Context, prompt string, config models.AIConfig) (<-chan llm.StreamChunk, error) {
	text, err := s.GenerateContent(ctx, prompt, config)
	if err != nil {
		return nil, err
	}

	out := make(chan llm.StreamChunk, 8)
	go func() {
		defer close(out)

		runes := []rune(text)
		for start := 0; start < len(runes); start += streamChunkRunes {
			end := start + streamChunkRunes
			if end > len(runes) {
				end = len(runes)
			}

			chunk := llm.StreamChunk{
				Text: string(runes[start:end]),
				Done: end == len(runes),
			}

			select {
			case out <- chunk:
			case <-ctx.Done():
				return
			}
		}

		if len(runes) == 0 {
			select {
			case out <- llm.StreamChunk{Done: true}:
			case <-ctx.Done():
			}
		}
	}()

	return out, nil
}

// ListProviders 返回所有已注册的提供者名称
func (s *AIService) ListProviders() []string {
	return llm.ListProviders()
}

// resolveProvider 将 AIConfig 映射为已初始化的提供者实例
func (s *AIService) resolveProvider(config models.AIConfig) (llm.Provider, error) {
	providerConfig := map[string]string{
		"api_key":       config.APIKey,
		"default_model": config.Model,
	}

	provider, err := llm.GetProvider(config.Provider, providerConfig)
	if err != nil {
		if err == llm.ErrUnknownProvider {
			return nil, errors.NewAIConfigError("不支持的AI提供者: "+config.Provider, nil)
		}
		return nil, errors.NewAIConfigError("AI提供者初始化失败", err)
	}

	return provider, nil
}
