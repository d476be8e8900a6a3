package client

import (
	"context"
	"testing"

	ai "github.com/spetersoncode/switchboard"
	"github.com/spetersoncode/switchboard/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoBackend struct{}

func (echoBackend) Chat(_ context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	o := ai.ApplyOptions(opts...)
	return &ai.Response{Content: o.Model + ":" + messages[len(messages)-1].Content}, nil
}

func testHandle(t *testing.T, p ai.Provider) *Handle {
	t.Helper()
	cfg, ok := registry.Default().Lookup(p)
	require.True(t, ok)
	return NewHandle(cfg, echoBackend{})
}

func TestHandleChat(t *testing.T) {
	h := testHandle(t, ai.ProviderOpenAI)
	resp, err := h.Chat(context.Background(), []ai.Message{{Role: ai.RoleUser, Content: "ping"}}, ai.WithModel("gpt-4"))
	require.NoError(t, err)
	assert.Equal(t, "gpt-4:ping", resp.Content)
}

func TestNewSet(t *testing.T) {
	first := testHandle(t, ai.ProviderGoogle)
	set := NewSet(first, nil, testHandle(t, ai.ProviderOpenAI), testHandle(t, ai.ProviderGoogle))

	assert.Equal(t, []ai.Provider{ai.ProviderGoogle, ai.ProviderOpenAI}, set.Providers())

	got, ok := set.Get(ai.ProviderGoogle)
	require.True(t, ok)
	assert.Same(t, first, got)

	_, ok = set.Get(ai.ProviderAnthropic)
	assert.False(t, ok)

	providers := set.Providers()
	providers[0] = "mutated"
	assert.Equal(t, ai.ProviderGoogle, set.Providers()[0])
}
