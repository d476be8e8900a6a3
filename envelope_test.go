package switchboard

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSucceed(t *testing.T) {
	env := Succeed(Completion{Content: "Paris", FinishReason: FinishStop}, ProviderOpenRouter, "some/model")

	assert.True(t, env.Success)
	require.NotNil(t, env.Data)
	assert.Equal(t, "Paris", env.Data.Content)
	assert.Equal(t, "openrouter", env.ProviderName())
	assert.Equal(t, "some/model", env.Model)
	assert.Empty(t, env.Error)
	assert.Empty(t, env.Code)
	assert.False(t, env.Timestamp.IsZero())
	assert.True(t, strings.HasPrefix(env.ID, "env-"))
}

func TestFail(t *testing.T) {
	t.Run("with provider", func(t *testing.T) {
		env := Fail[Completion]("Rate limit exceeded.", ProviderOpenAI, CodeRateLimit)

		assert.False(t, env.Success)
		assert.Nil(t, env.Data)
		assert.Equal(t, "openai", env.ProviderName())
		assert.Equal(t, CodeRateLimit, env.Code)
		assert.False(t, env.Timestamp.IsZero())
	})

	t.Run("without provider", func(t *testing.T) {
		env := Fail[bool]("nothing configured", "", CodeProviderUnavailable)
		assert.Nil(t, env.Provider)
		assert.Equal(t, "", env.ProviderName())
	})

	t.Run("ids are unique", func(t *testing.T) {
		a := Fail[bool]("x", "", "")
		b := Fail[bool]("x", "", "")
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestEnvelopeJSON(t *testing.T) {
	t.Run("failure has null provider and no data", func(t *testing.T) {
		env := Fail[Completion]("No AI provider available.", "", CodeProviderUnavailable)
		data, err := json.Marshal(env)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, false, got["success"])
		assert.Nil(t, got["provider"])
		assert.NotContains(t, got, "data")
		assert.Equal(t, "PROVIDER_UNAVAILABLE", got["code"])
		assert.Contains(t, got, "timestamp")
	})

	t.Run("empty content failure has no code", func(t *testing.T) {
		env := Fail[Completion]("No content returned from AI service", ProviderOpenAI, "").WithModel("gpt-3.5-turbo")
		data, err := json.Marshal(env)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(data, &got))
		assert.NotContains(t, got, "code")
		assert.Equal(t, "openai", got["provider"])
		assert.Equal(t, "gpt-3.5-turbo", got["model"])
	})

	t.Run("success nests completion under data", func(t *testing.T) {
		env := Succeed(Completion{
			Content:      "hi",
			Usage:        &Usage{InputTokens: 3, OutputTokens: 1, TotalTokens: 4},
			FinishReason: FinishLength,
		}, ProviderAnthropic, "claude-haiku-4-5")
		data, err := json.Marshal(env)
		require.NoError(t, err)

		var got struct {
			Data struct {
				Content      string `json:"content"`
				FinishReason string `json:"finish_reason"`
				Usage        struct {
					TotalTokens int `json:"total_tokens"`
				} `json:"usage"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "hi", got.Data.Content)
		assert.Equal(t, "length", got.Data.FinishReason)
		assert.Equal(t, 4, got.Data.Usage.TotalTokens)
	})

	t.Run("validation data is a boolean", func(t *testing.T) {
		data, err := json.Marshal(Succeed(true, ProviderGoogle, "gemini-2.5-flash"))
		require.NoError(t, err)
		assert.Contains(t, string(data), `"data":true`)
	})
}
