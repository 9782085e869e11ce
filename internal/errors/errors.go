// internal/errors/errors.go
package errors

import (
	"errors"
	"fmt"
)

// ErrorType 定义错误类型
type ErrorType string

const (
	// 项目不存在
	ErrorTypeNotFound ErrorType = "not_found"
	// AI配置错误（未知提供者、缺少密钥等）
	ErrorTypeAIConfig ErrorType = "ai_config_error"
	// 文件/序列化错误（导出失败、不支持的格式）
	ErrorTypeFile ErrorType = "file_error"
	// 数据库错误（为未来的持久化层保留，当前操作不会产生）
	ErrorTypeDatabase ErrorType = "database_error"
	// 通用处理错误
	ErrorTypeError ErrorType = "processing_error"
)

// AppError 应用程序错误结构
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
	Code    string // 用户友好的错误代码
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap 实现错误链接
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError 创建新的 AppError
func NewAppError(errType ErrorType, message string, originalError error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     originalError,
		Code:    generateErrorCode(errType),
	}
}

// NewProjectNotFoundError 创建项目未找到错误，消息中携带项目ID
func NewProjectNotFoundError(projectID string) *AppError {
	return NewAppError(ErrorTypeNotFound, "项目不存在: "+projectID, nil)
}

// NewAIConfigError 创建AI配置错误
func NewAIConfigError(message string, originalError error) *AppError {
	return NewAppError(ErrorTypeAIConfig, message, originalError)
}

// NewFileError 创建文件操作错误
func NewFileError(message string, originalError error) *AppError {
	return NewAppError(ErrorTypeFile, message, originalError)
}

// NewDatabaseError 创建数据库错误
func NewDatabaseError(message string, originalError error) *AppError {
	return NewAppError(ErrorTypeDatabase, message, originalError)
}

// NewProcessingError 创建处理错误
func NewProcessingError(message string, originalError error) *AppError {
	return NewAppError(ErrorTypeError, message, originalError)
}

// IsNotFoundError 检查是否为未找到错误
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsAIConfigError 检查是否为AI配置错误
func IsAIConfigError(err error) bool {
	return isType(err, ErrorTypeAIConfig)
}

// IsFileError 检查是否为文件操作错误
func IsFileError(err error) bool {
	return isType(err, ErrorTypeFile)
}

// IsDatabaseError 检查是否为数据库错误
func IsDatabaseError(err error) bool {
	return isType(err, ErrorTypeDatabase)
}

func isType(err error, errType ErrorType) bool {
	var appError *AppError
	if errors.As(err, &appError) {
		return appError.Type == errType
	}
	return false
}

// generateErrorCode 根据错误类型生成错误代码
func generateErrorCode(errType ErrorType) string {
	switch errType {
	case ErrorTypeNotFound:
		return "PROJECT_NOT_FOUND"
	case ErrorTypeAIConfig:
		return "AI_CONFIG_ERROR"
	case ErrorTypeFile:
		return "FILE_ERROR"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	case ErrorTypeError:
		return "PROCESSING_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// WrapError 包装现有错误
func WrapError(err error, message string, errType ErrorType) error {
	if err == nil {
		return nil
	}

	var appError *AppError
	if errors.As(err, &appError) {
		// 如果已经是 AppError，只更新消息
		return &AppError{
			Type:    appError.Type,
			Message: fmt.Sprintf("%s: %s", message, appError.Message),
			Err:     appError,
			Code:    appError.Code,
		}
	}

	return NewAppError(errType, message, err)
}
