// internal/models/project.go
package models

import (
	"time"
)

// Project 表示一个完整的写作项目，包含角色、情节和章节
type Project struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Characters  []Character `json:"characters"`
	Plot        *Plot       `json:"plot,omitempty"`
	Synopsis    string      `json:"synopsis,omitempty"`
	Chapters    []Chapter   `json:"chapters"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Character 表示项目中的一个角色
type Character struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Age         *int   `json:"age,omitempty"`
	Description string `json:"description"`
	Role        string `json:"role"`
	Personality string `json:"personality"`
	Background  string `json:"background"`
}

// Plot 表示项目的整体情节设计
type Plot struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Genre      string `json:"genre"`
	Theme      string `json:"theme"`
	Setting    string `json:"setting"`
	Conflict   string `json:"conflict"`
	Resolution string `json:"resolution"`
	Acts       []Act  `json:"acts"`
}

// Act 表示情节中的一幕
// Order 由调用方维护，存储层不做唯一性校验
type Act struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// Chapter 表示项目中的一个章节
// WordCount 由调用方提供，不根据 Content 重新计算
type Chapter struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Order     int    `json:"order"`
	WordCount int    `json:"word_count"`
}
