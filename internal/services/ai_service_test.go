package services

import (
	"context"
	"strings"
	"testing"

	apperrors "github.com/WriteCraft/StoryBuilder/internal/errors"
	"github.com/WriteCraft/StoryBuilder/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContent_Providers(t *testing.T) {
	s := NewAIService()
	ctx := context.Background()

	tests := []struct {
		provider string
		config   models.AIConfig
		want     string
	}{
		{
			provider: "openai",
			config:   models.AIConfig{Provider: "openai", APIKey: "sk-test", Model: "gpt-4o"},
			want:     "AI生成内容: 写一个开头",
		},
		{
			provider: "claude",
			config:   models.AIConfig{Provider: "claude", APIKey: "sk-ant", Model: "claude-3-sonnet-20240229"},
			want:     "AI生成内容: 写一个开头",
		},
		{
			provider: "local",
			config:   models.AIConfig{Provider: "local", Model: "qwen2.5"},
			want:     "本地AI生成内容: 写一个开头",
		},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			text, err := s.GenerateContent(ctx, "写一个开头", tt.config)
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestGenerateContent_UnknownProvider(t *testing.T) {
	s := NewAIService()

	_, err := s.GenerateContent(context.Background(), "hi", models.AIConfig{Provider: "gemini"})
	require.Error(t, err)
	assert.True(t, apperrors.IsAIConfigError(err))
	assert.Contains(t, err.Error(), "gemini")
}

func TestGenerateContent_MissingAPIKey(t *testing.T) {
	s := NewAIService()

	_, err := s.GenerateContent(context.Background(), "hi", models.AIConfig{Provider: "openai"})
	require.Error(t, err)
	assert.True(t, apperrors.IsAIConfigError(err))
}

func TestGenerateContentStream(t *testing.T) {
	s := NewAIService()

	prompt := strings.Repeat("星", 150)
	stream, err := s.GenerateContentStream(context.Background(), prompt,
		models.AIConfig{Provider: "local"})
	require.NoError(t, err)

	var full strings.Builder
	chunks := 0
	sawDone := false
	for chunk := range stream {
		chunks++
		full.WriteString(chunk.Text)
		if chunk.Done {
			sawDone = true
		}
	}

	assert.True(t, sawDone)
	assert.Greater(t, chunks, 1)
	assert.Equal(t, "本地AI生成内容: "+prompt, full.String())
}

func TestGenerateContentStream_UnknownProviderFailsEarly(t *testing.T) {
	s := NewAIService()

	_, err := s.GenerateContentStream(context.Background(), "hi", models.AIConfig{Provider: "nope"})
	require.Error(t, err)
	assert.True(t, apperrors.IsAIConfigError(err))
}

func TestListProviders(t *testing.T) {
	s := NewAIService()

	providers := s.ListProviders()
	assert.Contains(t, providers, "openai")
	assert.Contains(t, providers, "claude")
	assert.Contains(t, providers, "local")
}
