package mistral

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nutrifit/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	cfg := &config.Config{}
	cfg.MealAgent.BaseURL = baseURL
	cfg.MealAgent.APIKey = "test-key"
	cfg.MealAgent.DishAgentID = "agent-dish"
	cfg.MealAgent.CaloriesAgentID = "agent-calories"
	cfg.MealAgent.Timeout = 2 * time.Second

	return NewClient(cfg).(*Client)
}

func agentAnswer(content string) string {
	payload := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	encoded, _ := json.Marshal(payload)

	return string(encoded)
}

func TestSuggestDish_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/agents/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req agentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "agent-dish", req.AgentID)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)
		require.Len(t, req.Messages, 1)
		assert.Contains(t, req.Messages[0].Content, "tomate")

		fmt.Fprint(w, agentAnswer(`{
			"Name": "Ratatouille",
			"Description": "Slow cooked vegetables",
			"Food": ["tomate", "courgette"],
			"ExtraFood": ["huile d'olive"],
			"PreparationStep": ["Cut the vegetables", "Simmer for an hour"],
			"CookTime": "60 min"
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	dish, err := client.SuggestDish(context.Background(), []string{"tomate", "courgette"})

	require.NoError(t, err)
	assert.NotEmpty(t, dish.ID)
	assert.Equal(t, "Ratatouille", dish.Name)
	assert.Equal(t, []string{"tomate", "courgette"}, dish.Food)
	assert.Len(t, dish.PreparationStep, 2)
}

func TestSuggestDish_NonJSONAnswer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, agentAnswer("I would recommend a nice ratatouille!"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.SuggestDish(context.Background(), []string{"tomate"})

	require.Error(t, err)
}

func TestSuggestDish_MissingRequiredFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, agentAnswer(`{"Description": "No name, no food"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.SuggestDish(context.Background(), []string{"tomate"})

	require.Error(t, err)
}

func TestSuggestDish_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.SuggestDish(context.Background(), []string{"tomate"})

	require.Error(t, err)
}

func TestEstimateCalories_Success(t *testing.T) {
	fixed := time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req agentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "agent-calories", req.AgentID)

		fmt.Fprint(w, agentAnswer(`{"calories": 195}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	client.now = func() time.Time { return fixed }

	estimate, err := client.EstimateCalories(context.Background(), "rice", 150)

	require.NoError(t, err)
	assert.Equal(t, "rice", estimate.Name)
	assert.InDelta(t, 150, estimate.Quantity, 1e-9)
	assert.InDelta(t, 195, estimate.Calories, 1e-9)
	assert.Equal(t, fixed, estimate.CreatedAt)
}

func TestEstimateCalories_MissingFigure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, agentAnswer(`{"note": "hard to say"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.EstimateCalories(context.Background(), "rice", 150)

	require.Error(t, err)
}

func TestComplete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices": []}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.SuggestDish(context.Background(), []string{"tomate"})

	require.Error(t, err)
}
