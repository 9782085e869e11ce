package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	apperrors "github.com/WriteCraft/StoryBuilder/internal/errors"
	"github.com/WriteCraft/StoryBuilder/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProject(t *testing.T) {
	s := NewProjectService()

	project, err := s.CreateProject("长夜", "一部科幻小说")
	require.NoError(t, err)

	assert.NotEmpty(t, project.ID)
	assert.Equal(t, "长夜", project.Title)
	assert.Equal(t, "一部科幻小说", project.Description)
	assert.NotNil(t, project.Characters)
	assert.Empty(t, project.Characters)
	assert.NotNil(t, project.Chapters)
	assert.Empty(t, project.Chapters)
	assert.Nil(t, project.Plot)
	assert.Equal(t, project.CreatedAt, project.UpdatedAt)
	assert.False(t, project.CreatedAt.IsZero())
}

func TestCreateProject_UniqueIDs(t *testing.T) {
	s := NewProjectService()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		project, err := s.CreateProject(fmt.Sprintf("项目%d", i), "")
		require.NoError(t, err)
		assert.False(t, seen[project.ID], "重复的项目ID: %s", project.ID)
		seen[project.ID] = true
	}
	assert.Equal(t, 100, s.Count())
}

func TestListProjects(t *testing.T) {
	s := NewProjectService()
	assert.Empty(t, s.ListProjects())

	p1, _ := s.CreateProject("甲", "")
	p2, _ := s.CreateProject("乙", "")

	projects := s.ListProjects()
	require.Len(t, projects, 2)

	ids := []string{projects[0].ID, projects[1].ID}
	assert.ElementsMatch(t, []string{p1.ID, p2.ID}, ids)
}

func TestGetProject(t *testing.T) {
	s := NewProjectService()
	created, _ := s.CreateProject("甲", "描述")

	got, err := s.GetProject(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetProject_NotFound(t *testing.T) {
	s := NewProjectService()

	_, err := s.GetProject("no-such-id")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "no-such-id")
}

func TestUpdateProject_FullReplace(t *testing.T) {
	s := NewProjectService()
	created, _ := s.CreateProject("旧标题", "旧描述")

	age := 27
	replacement := &models.Project{
		ID:          created.ID,
		Title:       "新标题",
		Description: "", // 整体替换，省略的字段应丢失
		Synopsis:    "新的故事梗概",
		Characters: []models.Character{
			{ID: "c1", Name: "李青", Age: &age, Role: "主角", Personality: "沉静", Background: "山村出身"},
		},
		Plot: &models.Plot{
			ID:    "plot1",
			Title: "三幕结构",
			Genre: "科幻",
			Acts: []models.Act{
				{ID: "a2", Title: "第二幕", Order: 2},
				{ID: "a1", Title: "第一幕", Order: 1},
			},
		},
		Chapters: []models.Chapter{
			{ID: "ch1", Title: "第一章", Content: "夜色深沉。", Order: 1, WordCount: 5},
		},
		CreatedAt: created.CreatedAt,
	}

	before := time.Now().UTC()
	updated, err := s.UpdateProject(created.ID, replacement)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "新标题", updated.Title)
	assert.Empty(t, updated.Description)
	assert.Equal(t, replacement.Characters, updated.Characters)
	assert.Equal(t, replacement.Plot, updated.Plot)
	assert.Equal(t, replacement.Chapters, updated.Chapters)

	// UpdatedAt 被强制覆盖且单调不减
	assert.False(t, updated.UpdatedAt.Before(before))
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	got, err := s.GetProject(created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateProject_IgnoresCallerTimestampAndID(t *testing.T) {
	s := NewProjectService()
	created, _ := s.CreateProject("甲", "")

	replacement := &models.Project{
		ID:        "attacker-chosen-id",
		Title:     "甲",
		UpdatedAt: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	updated, err := s.UpdateProject(created.ID, replacement)
	require.NoError(t, err)

	// ID 不可变，调用方提供的 UpdatedAt 被忽略
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.UpdatedAt.After(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))

	_, err = s.GetProject("attacker-chosen-id")
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUpdateProject_NotFound(t *testing.T) {
	s := NewProjectService()

	_, err := s.UpdateProject("missing", &models.Project{Title: "x"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "missing")
}

func TestDeleteProject(t *testing.T) {
	s := NewProjectService()
	created, _ := s.CreateProject("甲", "")

	require.NoError(t, s.DeleteProject(created.ID))
	assert.Equal(t, 0, s.Count())

	// 删除后所有操作均返回未找到
	_, err := s.GetProject(created.ID)
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = s.UpdateProject(created.ID, &models.Project{Title: "x"})
	assert.True(t, apperrors.IsNotFoundError(err))

	err = s.DeleteProject(created.ID)
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.Contains(t, err.Error(), created.ID)
}

func TestReturnedRecordsDoNotAliasStore(t *testing.T) {
	s := NewProjectService()
	created, _ := s.CreateProject("甲", "")

	created.Title = "被篡改"
	created.Characters = append(created.Characters, models.Character{ID: "x"})

	got, err := s.GetProject(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "甲", got.Title)
	assert.Empty(t, got.Characters)

	// 修改读取结果的嵌套结构也不应影响存储
	_, err = s.UpdateProject(created.ID, &models.Project{
		Title:    "甲",
		Chapters: []models.Chapter{{ID: "ch1", Title: "第一章", Content: "正文"}},
	})
	require.NoError(t, err)

	first, _ := s.GetProject(created.ID)
	first.Chapters[0].Content = "被篡改"

	second, _ := s.GetProject(created.ID)
	assert.Equal(t, "正文", second.Chapters[0].Content)
}

func TestConcurrentOperations(t *testing.T) {
	s := NewProjectService()
	created, _ := s.CreateProject("共享", "")

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			switch n % 4 {
			case 0:
				s.CreateProject(fmt.Sprintf("并发%d", n), "")
			case 1:
				s.ListProjects()
			case 2:
				s.GetProject(created.ID)
			case 3:
				s.UpdateProject(created.ID, &models.Project{
					Title:    fmt.Sprintf("版本%d", n),
					Chapters: []models.Chapter{},
				})
			}
		}(i)
	}
	wg.Wait()

	// 读取到的永远是完整记录
	got, err := s.GetProject(created.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, got.Title)
	assert.Equal(t, 1+8, s.Count())
}
