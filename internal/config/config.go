// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config 存储应用配置
type Config struct {
	Port            string
	DebugMode       bool
	LogDir          string
	LLMProvider     string
	LLMAPIKey       string
	LLMDefaultModel string
	LocalLLMTimeout time.Duration
}

// Load 从环境变量加载配置
func Load() (*Config, error) {
	// 尝试加载.env文件（可选）
	godotenv.Load()

	config := &Config{
		Port:            getEnv("PORT", "8080"),
		DebugMode:       getEnvBool("DEBUG_MODE", true),
		LogDir:          getEnv("LOG_DIR", "logs"),
		LLMProvider:     getEnv("LLM_PROVIDER", "local"),
		LLMAPIKey:       getEnv("LLM_API_KEY", ""),
		LLMDefaultModel: getEnv("LLM_DEFAULT_MODEL", ""),
		LocalLLMTimeout: getEnvDuration("LOCAL_LLM_TIMEOUT_SECONDS", 30) * time.Second,
	}

	return config, nil
}

// LLMConfig 返回传递给提供者的配置映射
func (c *Config) LLMConfig() map[string]string {
	return map[string]string{
		"api_key":       c.LLMAPIKey,
		"default_model": c.LLMDefaultModel,
	}
}

// getEnv 获取环境变量，如果不存在则返回默认值
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool 获取布尔类型环境变量
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value == "true" || value == "1" || value == "yes"
}

// getEnvDuration 获取以秒计的时长环境变量
func getEnvDuration(key string, defaultSeconds int) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return time.Duration(defaultSeconds)
	}

	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		return time.Duration(defaultSeconds)
	}
	return time.Duration(seconds)
}
