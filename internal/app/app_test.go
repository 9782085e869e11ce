package app

import (
	"testing"

	"github.com/WriteCraft/StoryBuilder/internal/config"
	"github.com/WriteCraft/StoryBuilder/internal/di"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitServices(t *testing.T) {
	di.GetContainer().Clear()

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NoError(t, InitServices(cfg))

	container := di.GetContainer()
	for _, name := range CriticalServices {
		assert.True(t, container.Has(name), "服务未注册: %s", name)
	}
}
