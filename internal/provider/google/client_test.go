package google

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	ai "github.com/spetersoncode/switchboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat(t *testing.T) {
	var (
		path    string
		headers http.Header
		body    map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		headers = r.Header.Clone()
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "Hi from Gemini"}]}, "finishReason": "STOP"}],
			"usageMetadata": {"promptTokenCount": 4, "candidatesTokenCount": 3, "totalTokenCount": 7}
		}`)
	}))
	defer srv.Close()

	c, err := New(context.Background(), "g-test",
		WithBaseURL(srv.URL+"/"),
		WithHeaders(map[string]string{"X-Trace": "abc"}),
		WithModel("gemini-2.5-flash"),
	)
	require.NoError(t, err)

	resp, err := c.Chat(context.Background(), []ai.Message{
		{Role: ai.RoleSystem, Content: "Be brief."},
		{Role: ai.RoleUser, Content: "Hi"},
		{Role: ai.RoleAssistant, Content: "Hello"},
		{Role: ai.RoleUser, Content: "Again"},
	}, ai.WithMaxTokens(20))
	require.NoError(t, err)

	assert.Equal(t, "Hi from Gemini", resp.Content)
	assert.Equal(t, ai.FinishStop, resp.FinishReason)
	require.NotNil(t, resp.Usage)
	assert.Equal(t, 7, resp.Usage.TotalTokens)

	assert.True(t, strings.HasSuffix(path, "models/gemini-2.5-flash:generateContent"), path)
	assert.Equal(t, "g-test", headers.Get("X-Goog-Api-Key"))
	assert.Equal(t, "abc", headers.Get("X-Trace"))

	contents, ok := body["contents"].([]any)
	require.True(t, ok)
	require.Len(t, contents, 3)
	assert.Equal(t, "model", contents[1].(map[string]any)["role"])
	assert.Contains(t, body, "systemInstruction")
}

func TestConvertMessages(t *testing.T) {
	contents, system := convertMessages([]ai.Message{
		{Role: ai.RoleSystem, Content: "a"},
		{Role: ai.RoleSystem, Content: "b"},
		{Role: ai.RoleUser, Content: "hi"},
		{Role: ai.RoleAssistant, Content: "hello"},
	})
	require.NotNil(t, system)
	assert.Len(t, system.Parts, 2)
	require.Len(t, contents, 2)
	assert.Equal(t, "user", contents[0].Role)
	assert.Equal(t, "model", contents[1].Role)

	_, system = convertMessages([]ai.Message{{Role: ai.RoleUser, Content: "hi"}})
	assert.Nil(t, system)
}
