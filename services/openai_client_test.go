package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIClientRequestShape(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": `{"calories": 150}`}},
			},
		})
	}))
	defer srv.Close()

	client := NewOpenAIClient(srv.URL, "gpt-4o-mini")
	content, err := client.ChatCompletion(context.Background(), "sk-test", "macro prompt")
	require.NoError(t, err)

	assert.Equal(t, `{"calories": 150}`, content)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotBody["model"])

	msgs := gotBody["messages"].([]interface{})
	require.Len(t, msgs, 1)
	msg := msgs[0].(map[string]interface{})
	assert.Equal(t, "user", msg["role"])
	assert.Equal(t, "macro prompt", msg["content"])
}

func TestOpenAIClientBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewOpenAIClient(srv.URL, "gpt-4o-mini")
	_, err := client.ChatCompletion(context.Background(), "bad", "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestOpenAIClientNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient(srv.URL, "gpt-4o-mini")
	_, err := client.ChatCompletion(context.Background(), "sk", "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing choices")
}

func TestOpenAIClientDefaults(t *testing.T) {
	client := NewOpenAIClient("", "")
	assert.Equal(t, "https://api.openai.com/v1", client.BaseURL)
	assert.Equal(t, "gpt-4o-mini", client.Model)
}
