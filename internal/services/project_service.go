// internal/services/project_service.go
package services

import (
	"sync"
	"time"

	"github.com/WriteCraft/StoryBuilder/internal/errors"
	"github.com/WriteCraft/StoryBuilder/internal/models"
	"github.com/WriteCraft/StoryBuilder/internal/utils"
	"github.com/google/uuid"
)

// ProjectService 提供项目的创建、查询、更新和删除
// 所有项目仅保存在内存中，随进程退出而丢弃
type ProjectService struct {
	mu       sync.Mutex
	projects map[string]*models.Project
	metrics  *utils.MetricsCollector
	logger   *utils.Logger
}

// NewProjectService 创建项目服务
func NewProjectService() *ProjectService {
	return &ProjectService{
		projects: make(map[string]*models.Project),
		metrics:  utils.GetMetricsCollector(),
		logger:   utils.GetLogger(),
	}
}

// CreateProject 创建一个新项目
// 生成全局唯一ID，角色和章节初始化为空
func (s *ProjectService) CreateProject(title, description string) (*models.Project, error) {
	now := time.Now().UTC()
	project := &models.Project{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Characters:  []models.Character{},
		Chapters:    []models.Chapter{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.projects[project.ID] = project
	count := len(s.projects)
	s.mu.Unlock()

	s.metrics.IncrementCounter("project.create")
	s.metrics.SetGauge("project.count", int64(count))
	s.logger.Infof("项目已创建: %s (%s)", project.Title, project.ID)

	return cloneProject(project), nil
}

// ListProjects 返回所有项目，顺序不保证
func (s *ProjectService) ListProjects() []*models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.IncrementCounter("project.list")

	result := make([]*models.Project, 0, len(s.projects))
	for _, project := range s.projects {
		result = append(result, cloneProject(project))
	}
	return result
}

// GetProject 返回指定ID的项目
func (s *ProjectService) GetProject(id string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, exists := s.projects[id]
	if !exists {
		return nil, errors.NewProjectNotFoundError(id)
	}

	s.metrics.IncrementCounter("project.get")
	return cloneProject(project), nil
}

// UpdateProject 用调用方提供的完整记录整体替换存储的项目
// 这是整体替换而非合并：调用方省略的字段会丢失
// ID 以路径参数为准，UpdatedAt 强制设为当前时间
func (s *ProjectService) UpdateProject(id string, project *models.Project) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, exists := s.projects[id]
	if !exists {
		return nil, errors.NewProjectNotFoundError(id)
	}

	updated := cloneProject(project)
	updated.ID = id

	// 更新时间戳单调不减，时钟回拨时沿用上一次的值
	now := time.Now().UTC()
	if now.Before(previous.UpdatedAt) {
		now = previous.UpdatedAt
	}
	updated.UpdatedAt = now

	s.projects[id] = updated

	s.metrics.IncrementCounter("project.update")
	s.logger.Infof("项目已更新: %s", id)

	return cloneProject(updated), nil
}

// DeleteProject 删除指定ID的项目
func (s *ProjectService) DeleteProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.projects[id]; !exists {
		return errors.NewProjectNotFoundError(id)
	}

	delete(s.projects, id)

	s.metrics.IncrementCounter("project.delete")
	s.metrics.SetGauge("project.count", int64(len(s.projects)))
	s.logger.Infof("项目已删除: %s", id)

	return nil
}

// Count 返回当前项目数量
func (s *ProjectService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.projects)
}

// cloneProject 复制项目记录，避免调用方与存储共享可变内部结构
func cloneProject(p *models.Project) *models.Project {
	clone := *p

	if p.Characters != nil {
		clone.Characters = make([]models.Character, len(p.Characters))
		copy(clone.Characters, p.Characters)
		for i, character := range p.Characters {
			if character.Age != nil {
				age := *character.Age
				clone.Characters[i].Age = &age
			}
		}
	}

	if p.Chapters != nil {
		clone.Chapters = make([]models.Chapter, len(p.Chapters))
		copy(clone.Chapters, p.Chapters)
	}

	if p.Plot != nil {
		plot := *p.Plot
		if p.Plot.Acts != nil {
			plot.Acts = make([]models.Act, len(p.Plot.Acts))
			copy(plot.Acts, p.Plot.Acts)
		}
		clone.Plot = &plot
	}

	return &clone
}
