package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"styleai/internal/logger"
	"styleai/internal/wardrobe"
)

const systemPrompt = `You are a personal stylist. You receive a closet as JSON and reply with outfit suggestions.
Respond with JSON only, no prose, in this shape:
{"outfit_suggestions":[{"outfit":"name","occasion":"occasion","reasoning":"why it works","item_ids":[1,2]}]}
Use only item ids that appear in the closet. Suggest up to three outfits.`

// Client talks to an OpenAI-compatible chat completions endpoint and turns
// closet state into outfit suggestions. It implements
// wardrobe.SuggestionClient.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateOutfitSuggestions sends the closet and user intent to the model and
// parses the JSON it returns. Model output is untrusted: anything that does
// not decode into the expected shape is an error, never a partial result.
func (c *Client) GenerateOutfitSuggestions(ctx context.Context, req wardrobe.SuggestionRequest) (*wardrobe.SuggestionResponse, error) {
	if c.apiKey == "" {
		return nil, errors.New("ai: api key not configured")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode closet: %w", err)
	}

	var user strings.Builder
	user.WriteString("Closet:\n")
	user.Write(payload)
	if req.Occasion != "" {
		fmt.Fprintf(&user, "\n\nOccasion: %s", req.Occasion)
	}
	if req.UserPreferences != "" {
		fmt.Fprintf(&user, "\n\nStyle preferences: %s", req.UserPreferences)
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: user.String()},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Warn("suggestion request failed", "status", resp.StatusCode)
		return nil, fmt.Errorf("model returned status %d: %s", resp.StatusCode, string(raw))
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if chat.Error != nil {
		return nil, fmt.Errorf("model error: %s", chat.Error.Message)
	}
	if len(chat.Choices) == 0 {
		return nil, errors.New("model returned no choices")
	}

	content := stripCodeFence(chat.Choices[0].Message.Content)
	var out wardrobe.SuggestionResponse
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("parse suggestions: %w", err)
	}
	return &out, nil
}

// stripCodeFence removes a ```json ... ``` wrapper when the model adds one.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
