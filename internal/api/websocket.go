// internal/api/websocket.go
package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/WriteCraft/StoryBuilder/internal/models"
	"github.com/WriteCraft/StoryBuilder/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WebSocket 升级器配置
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// 桌面端本地回环访问，不限制来源
		return true
	},
}

// WebSocketManager 管理所有流式生成连接
type WebSocketManager struct {
	connections map[*websocket.Conn]time.Time
	mutex       sync.RWMutex
	pingTimeout time.Duration
}

// 全局 WebSocket 管理器
var wsManager = &WebSocketManager{
	connections: make(map[*websocket.Conn]time.Time),
	pingTimeout: 60 * time.Second,
}

// track 登记一个新连接
func (m *WebSocketManager) track(conn *websocket.Conn) {
	m.mutex.Lock()
	m.connections[conn] = time.Now()
	count := len(m.connections)
	m.mutex.Unlock()

	utils.GetMetricsCollector().SetGauge("ws.active_connections", int64(count))
}

// untrack 注销一个连接
func (m *WebSocketManager) untrack(conn *websocket.Conn) {
	m.mutex.Lock()
	delete(m.connections, conn)
	count := len(m.connections)
	m.mutex.Unlock()

	utils.GetMetricsCollector().SetGauge("ws.active_connections", int64(count))
}

// GetStatus 返回连接管理器状态
func (m *WebSocketManager) GetStatus() map[string]interface{} {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return map[string]interface{}{
		"active_connections":   len(m.connections),
		"ping_timeout_seconds": int(m.pingTimeout.Seconds()),
	}
}

// generateRequest WebSocket 流式生成的请求帧
type generateRequest struct {
	Prompt string          `json:"prompt"`
	Config models.AIConfig `json:"config"`
}

// streamFrame 推送给客户端的帧
type streamFrame struct {
	Type    string `json:"type"` // chunk | error | done
	Text    string `json:"text,omitempty"`
	Done    bool   `json:"done,omitempty"`
	Message string `json:"message,omitempty"`
}

// GenerateWebSocket 处理流式内容生成连接
// 客户端发送一条 {prompt, config} 请求，服务端按片段推送生成结果
func (h *Handler) GenerateWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade 失败时已写入HTTP错误响应
		utils.GetLogger().Warnf("WebSocket升级失败: %v", err)
		return
	}

	wsManager.track(conn)
	defer func() {
		wsManager.untrack(conn)
		conn.Close()
	}()

	conn.SetReadDeadline(time.Now().Add(wsManager.pingTimeout))

	var req generateRequest
	if err := conn.ReadJSON(&req); err != nil {
		conn.WriteJSON(streamFrame{Type: "error", Message: "请求解析失败"})
		return
	}

	stream, err := h.AIService.GenerateContentStream(c.Request.Context(), req.Prompt, req.Config)
	if err != nil {
		conn.WriteJSON(streamFrame{Type: "error", Message: err.Error()})
		return
	}

	for chunk := range stream {
		conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		frame := streamFrame{Type: "chunk", Text: chunk.Text, Done: chunk.Done}
		if err := conn.WriteJSON(frame); err != nil {
			return
		}
	}

	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	conn.WriteJSON(streamFrame{Type: "done", Done: true})
}

// GetWebSocketStatus 获取 WebSocket 连接状态（调试用）
func (h *Handler) GetWebSocketStatus(c *gin.Context) {
	status := wsManager.GetStatus()
	status["timestamp"] = time.Now().Format(time.RFC3339)

	c.JSON(http.StatusOK, status)
}
