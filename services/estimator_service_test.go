package services

import (
	"context"
	"errors"
	"testing"

	"github.com/CJR1981/Macro-Tracker/models"
	"github.com/CJR1981/Macro-Tracker/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockChatClient struct {
	response string
	err      error
	calls    int
	lastKey  string
	lastMsg  string
}

func (m *mockChatClient) ChatCompletion(_ context.Context, apiKey, prompt string) (string, error) {
	m.calls++
	m.lastKey = apiKey
	m.lastMsg = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func newEstimatorFixture(t *testing.T, apiKey string, chat ChatClient) *EstimatorService {
	t.Helper()
	profiles := NewProfileService(storage.NewMemStore())
	p := models.NewProfile()
	p.APIKey = apiKey
	require.NoError(t, profiles.Set("alice", p))
	return NewEstimatorService(profiles, chat)
}

func TestEstimateSuccess(t *testing.T) {
	chat := &mockChatClient{response: `{"calories": 280, "protein": 34, "carbs": 0, "fat": 15}`}
	est := newEstimatorFixture(t, "sk-test", chat)

	got, err := est.Estimate(context.Background(), "alice", "Grilled salmon 150g")
	require.NoError(t, err)

	assert.Equal(t, "Grilled salmon 150g", got.Name)
	assert.Equal(t, 280.0, got.Calories)
	assert.Equal(t, 34.0, got.Protein)
	assert.Equal(t, 0.0, got.Carbs)
	assert.Equal(t, 15.0, got.Fat)

	assert.Equal(t, 1, chat.calls)
	assert.Equal(t, "sk-test", chat.lastKey)
	assert.Contains(t, chat.lastMsg, "Grilled salmon 150g")
	assert.Contains(t, chat.lastMsg, "Respond in JSON with keys: calories, protein, carbs, fat.")
}

func TestEstimateFencedAndStringyResponse(t *testing.T) {
	chat := &mockChatClient{response: "```json\n{\"calories\": \"95\", \"protein\": 0.5, \"carbs\": 25, \"fat\": \"n/a\"}\n```"}
	est := newEstimatorFixture(t, "sk-test", chat)

	got, err := est.Estimate(context.Background(), "alice", "apple")
	require.NoError(t, err)
	assert.Equal(t, 95.0, got.Calories)
	assert.Equal(t, 0.5, got.Protein)
	assert.Equal(t, 0.0, got.Fat, "unparsable numbers default to 0")
}

func TestEstimateWithoutAPIKeyMakesNoCall(t *testing.T) {
	chat := &mockChatClient{response: `{}`}
	est := newEstimatorFixture(t, "", chat)

	_, err := est.Estimate(context.Background(), "alice", "apple")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Zero(t, chat.calls, "precondition failure must not reach the network")
}

func TestEstimateEmptyQuery(t *testing.T) {
	chat := &mockChatClient{}
	est := newEstimatorFixture(t, "sk-test", chat)

	_, err := est.Estimate(context.Background(), "alice", "   ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
	assert.Zero(t, chat.calls)
}

func TestEstimateFailureClasses(t *testing.T) {
	// transport/status failures and malformed payloads all collapse into
	// the same failure class
	cases := map[string]*mockChatClient{
		"request error":  {err: errors.New("connection refused")},
		"non-JSON reply": {response: "I cannot help with that."},
		"truncated JSON": {response: `{"calories": 100,`},
	}
	for name, chat := range cases {
		t.Run(name, func(t *testing.T) {
			est := newEstimatorFixture(t, "sk-test", chat)
			_, err := est.Estimate(context.Background(), "alice", "apple")
			assert.ErrorIs(t, err, ErrEstimateFailed)
		})
	}
}

func TestEstimateMissingProfile(t *testing.T) {
	chat := &mockChatClient{}
	est := NewEstimatorService(NewProfileService(storage.NewMemStore()), chat)

	_, err := est.Estimate(context.Background(), "ghost", "apple")
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.Zero(t, chat.calls)
}
