// internal/services/proxy_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/WriteCraft/StoryBuilder/internal/utils"
)

// 默认的发送/接收超时
const defaultProxyTimeout = 30 * time.Second

// 传输层错误的固定提示文案，调用方（UI）直接展示
const (
	MsgProxyTimeout = "本地LLM服务器连接超时，请确认服务器已启动"
	MsgProxyConnect = "无法连接本地LLM服务器，请确认服务器已启动且端点地址正确"
)

// ProxyService 将调用方构造的请求原样转发到本地LLM服务器
// 无共享状态，多个转发可以完全并行
// 错误只来自传输层：HTTP状态码不参与成功/失败判定
type ProxyService struct {
	client  *http.Client
	metrics *utils.MetricsCollector
	logger  *utils.Logger
}

// NewProxyService 创建本地LLM代理服务
func NewProxyService() *ProxyService {
	return newProxyServiceWithTimeout(defaultProxyTimeout)
}

// NewProxyServiceWithTimeout 创建指定超时的代理服务
func NewProxyServiceWithTimeout(timeout time.Duration) *ProxyService {
	if timeout <= 0 {
		timeout = defaultProxyTimeout
	}
	return newProxyServiceWithTimeout(timeout)
}

func newProxyServiceWithTimeout(timeout time.Duration) *ProxyService {
	return &ProxyService{
		client: &http.Client{
			Timeout: timeout,
		},
		metrics: utils.GetMetricsCollector(),
		logger:  utils.GetLogger(),
	}
}

// Forward 发送POST请求并返回响应体文本
// 4xx/5xx 响应同样视为成功，响应体原样返回
func (s *ProxyService) Forward(ctx context.Context, endpoint, body string, headers map[string]string) (string, error) {
	s.logger.Infof("本地LLM代理请求开始: %s", endpoint)
	s.metrics.IncrementCounter("proxy.forward")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body))
	if err != nil {
		s.metrics.IncrementCounter("proxy.error")
		return "", fmt.Errorf("请求构造错误: %v", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.metrics.IncrementCounter("proxy.error")
		s.logger.Errorf("请求发送错误: %v", err)
		return "", s.normalizeTransportError(err)
	}
	defer resp.Body.Close()

	// 状态码只记录，不用于判定失败
	s.logger.Infof("响应状态: %d", resp.StatusCode)

	responseBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		s.metrics.IncrementCounter("proxy.error")
		s.logger.Errorf("响应读取错误: %v", err)
		return "", fmt.Errorf("响应读取错误: %v", err)
	}

	s.logger.Infof("本地LLM代理请求完成，响应长度: %d", len(responseBytes))
	return string(responseBytes), nil
}

// normalizeTransportError 将传输层错误归一为可展示的文案
// 超时优先于连接失败判定
func (s *ProxyService) normalizeTransportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errors.New(MsgProxyTimeout)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.New(MsgProxyTimeout)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return errors.New(MsgProxyConnect)
	}

	return fmt.Errorf("请求发送错误: %v", err)
}
