package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/CJR1981/Macro-Tracker/utils"
)

// ChatClient issues one chat-completion request and returns the reply text.
type ChatClient interface {
	ChatCompletion(ctx context.Context, apiKey, prompt string) (string, error)
}

// OpenAIClient implements ChatClient against an OpenAI-compatible endpoint.
// The bearer key comes from the caller, not the client: it is the active
// profile's stored credential.
type OpenAIClient struct {
	BaseURL string
	Model   string
	client  *http.Client
}

func NewOpenAIClient(baseURL, model string) *OpenAIClient {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIClient{
		BaseURL: baseURL,
		Model:   model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *OpenAIClient) ChatCompletion(ctx context.Context, apiKey, prompt string) (string, error) {
	type msg struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	body := struct {
		Model    string `json:"model"`
		Messages []msg  `json:"messages"`
	}{
		Model:    c.Model,
		Messages: []msg{{Role: "user", Content: prompt}},
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := strings.TrimRight(c.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	respRaw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("completion API error %d: %s", resp.StatusCode, string(respRaw))
	}

	var decoded struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respRaw, &decoded); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("completion response missing choices")
	}
	return decoded.Choices[0].Message.Content, nil
}

// MacroEstimate prefills the food-entry form. Logging it is a separate,
// explicit action.
type MacroEstimate struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// EstimatorService asks the completion API for macro values of a free-text
// food description. One request, no retry; every transport, status, or
// parse problem collapses into ErrEstimateFailed.
type EstimatorService struct {
	profiles *ProfileService
	chat     ChatClient
}

func NewEstimatorService(profiles *ProfileService, chat ChatClient) *EstimatorService {
	return &EstimatorService{profiles: profiles, chat: chat}
}

func (s *EstimatorService) Estimate(ctx context.Context, user, query string) (*MacroEstimate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	p, err := s.profiles.Get(user)
	if err != nil {
		return nil, err
	}
	if p.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	prompt := fmt.Sprintf(
		"Provide calories, protein, carbs, and fat for: %s. Respond in JSON with keys: calories, protein, carbs, fat.",
		query,
	)
	content, err := s.chat.ChatCompletion(ctx, p.APIKey, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEstimateFailed, err)
	}

	var macros map[string]interface{}
	if err := json.Unmarshal([]byte(utils.StripCodeFences(content)), &macros); err != nil {
		return nil, fmt.Errorf("%w: bad macro JSON: %v", ErrEstimateFailed, err)
	}

	return &MacroEstimate{
		Name:     query,
		Calories: utils.ToNumber(macros["calories"]),
		Protein:  utils.ToNumber(macros["protein"]),
		Carbs:    utils.ToNumber(macros["carbs"]),
		Fat:      utils.ToNumber(macros["fat"]),
	}, nil
}
