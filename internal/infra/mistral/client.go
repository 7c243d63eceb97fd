// Package mistral implements the meal agent gateway on the Mistral agents
// completion API. Two pre-configured agents are used: one that proposes a
// dish from a list of ingredients and one that estimates calories for a
// food and quantity. Both are instructed to answer with a single JSON
// object, which this client parses strictly.
package mistral

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nutrifit/config"
	"nutrifit/internal/domain/entity"
	"nutrifit/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const completionsPath = "/v1/agents/completions"

type agentRequest struct {
	AgentID        string         `json:"agent_id"`
	Messages       []agentMessage `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

type agentMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type agentResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client calls the Mistral agents API with a bounded request budget.
type Client struct {
	baseURL         string
	apiKey          string
	dishAgentID     string
	caloriesAgentID string
	httpClient      *http.Client
	now             func() time.Time
}

// NewClient builds the meal agent gateway from configuration.
func NewClient(cfg *config.Config) service.MealAgent {
	return &Client{
		baseURL:         cfg.MealAgent.BaseURL,
		apiKey:          cfg.MealAgent.APIKey,
		dishAgentID:     cfg.MealAgent.DishAgentID,
		caloriesAgentID: cfg.MealAgent.CaloriesAgentID,
		httpClient: &http.Client{
			Timeout: cfg.MealAgent.Timeout,
		},
		now: time.Now,
	}
}

// SuggestDish asks the dish agent for a recipe using the given ingredients.
func (c *Client) SuggestDish(ctx context.Context, ingredients []string) (*entity.DishInfo, error) {
	prompt := fmt.Sprintf("Voici les aliments: %s", strings.Join(ingredients, ", "))

	content, err := c.complete(ctx, c.dishAgentID, prompt)
	if err != nil {
		return nil, err
	}

	var dish entity.DishInfo
	if err := json.Unmarshal([]byte(content), &dish); err != nil {
		return nil, errors.Wrap(err, "agent answer is not valid dish JSON")
	}
	if dish.Name == "" || len(dish.Food) == 0 {
		return nil, errors.New("agent answer is missing required dish fields")
	}

	dish.ID = uuid.NewString()

	return &dish, nil
}

// EstimateCalories asks the calories agent for an estimate and shapes the
// answer like a loggable meal.
func (c *Client) EstimateCalories(ctx context.Context, food string, quantity float64) (*entity.CaloriesInfo, error) {
	prompt := fmt.Sprintf("Food: %s, Quantity: %g grams", food, quantity)

	content, err := c.complete(ctx, c.caloriesAgentID, prompt)
	if err != nil {
		return nil, err
	}

	var estimate struct {
		Calories float64 `json:"calories"`
	}
	if err := json.Unmarshal([]byte(content), &estimate); err != nil {
		return nil, errors.Wrap(err, "agent answer is not valid calories JSON")
	}
	if estimate.Calories <= 0 {
		return nil, errors.New("agent answer is missing a calorie figure")
	}

	return &entity.CaloriesInfo{
		Name:      food,
		Quantity:  quantity,
		Calories:  estimate.Calories,
		CreatedAt: c.now(),
	}, nil
}

func (c *Client) complete(ctx context.Context, agentID, prompt string) (string, error) {
	body, err := json.Marshal(agentRequest{
		AgentID: agentID,
		Messages: []agentMessage{
			{Role: "user", Content: prompt},
		},
		ResponseFormat: responseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to encode agent request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to build agent request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "agent request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return "", errors.Errorf("agent returned status %d: %s", resp.StatusCode, snippet)
	}

	var payload agentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", errors.Wrap(err, "failed to decode agent response")
	}
	if len(payload.Choices) == 0 {
		return "", errors.New("agent response has no choices")
	}

	return payload.Choices[0].Message.Content, nil
}
