package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProjectNotFoundError(t *testing.T) {
	err := NewProjectNotFoundError("proj-123")

	assert.Equal(t, ErrorTypeNotFound, err.Type)
	assert.Equal(t, "PROJECT_NOT_FOUND", err.Code)
	assert.Contains(t, err.Error(), "proj-123")
	assert.True(t, IsNotFoundError(err))
	assert.False(t, IsAIConfigError(err))
}

func TestTypePredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"ai_config", NewAIConfigError("不支持的AI提供者", nil), IsAIConfigError},
		{"file", NewFileError("不支持的导出格式", nil), IsFileError},
		{"database", NewDatabaseError("连接失败", nil), IsDatabaseError},
		{"not_found", NewProjectNotFoundError("x"), IsNotFoundError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
		})
	}

	// 普通错误不匹配任何类型
	plain := errors.New("plain")
	assert.False(t, IsNotFoundError(plain))
	assert.False(t, IsFileError(plain))
}

func TestUnwrapChain(t *testing.T) {
	cause := errors.New("underlying")
	err := NewFileError("JSON转换错误", cause)

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "underlying")
}

func TestWrapError(t *testing.T) {
	// 包装普通错误得到指定类型
	wrapped := WrapError(errors.New("boom"), "导出失败", ErrorTypeFile)
	assert.True(t, IsFileError(wrapped))

	// 包装 AppError 保留原类型
	inner := NewProjectNotFoundError("p1")
	rewrapped := WrapError(inner, "查询失败", ErrorTypeError)
	assert.True(t, IsNotFoundError(rewrapped))
	assert.Contains(t, rewrapped.Error(), "p1")

	// nil 透传
	assert.NoError(t, WrapError(nil, "x", ErrorTypeError))
}

func TestWrapPredicatesThroughFmt(t *testing.T) {
	err := fmt.Errorf("handler: %w", NewAIConfigError("缺少API密钥", nil))
	assert.True(t, IsAIConfigError(err))
}
