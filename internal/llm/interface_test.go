package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	name        string
	initialized map[string]string
}

func (p *fakeProvider) Initialize(config map[string]string) error {
	p.initialized = config
	return nil
}

func (p *fakeProvider) GetName() string { return p.name }

func (p *fakeProvider) GenerateContent(ctx context.Context, req GenerationRequest) (*GenerationResponse, error) {
	return &GenerationResponse{Text: "fake: " + req.Prompt, ProviderName: p.name}, nil
}

func TestRegistry(t *testing.T) {
	Register("fake", func() Provider {
		return &fakeProvider{name: "Fake"}
	})

	provider, err := GetProvider("fake", map[string]string{"api_key": "k"})
	require.NoError(t, err)
	assert.Equal(t, "Fake", provider.GetName())

	resp, err := provider.GenerateContent(context.Background(), GenerationRequest{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "fake: hi", resp.Text)

	assert.Contains(t, ListProviders(), "fake")
}

func TestGetProvider_Unknown(t *testing.T) {
	_, err := GetProvider("does-not-exist", nil)
	require.Error(t, err)
	assert.Equal(t, ErrUnknownProvider, err)
}
