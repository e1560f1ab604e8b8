package perplexity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/envirohealth-ai/platform/pkg/common/config"
	"github.com/envirohealth-ai/platform/pkg/common/httpclient"
)

// Client wraps the Perplexity chat completions API used for soil and water
// research queries. Responses are free text; the callers parse them.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: httpclient.New(cfg.ProviderTimeout),
		baseURL:    cfg.PerplexityBaseURL,
		apiKey:     cfg.PerplexityAPIKey,
		model:      cfg.PerplexityModel,
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Research sends one system/user prompt pair and returns the answer text.
func (c *Client) Research(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	})
	if err != nil {
		return "", err
	}

	var payload chatResponse
	err = httpclient.Retry(ctx, 3, 200*time.Millisecond, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return fmt.Errorf("perplexity returned status %d: %s", resp.StatusCode, string(snippet))
		}

		return json.NewDecoder(resp.Body).Decode(&payload)
	})
	if err != nil {
		return "", fmt.Errorf("perplexity research: %w", err)
	}

	if len(payload.Choices) == 0 {
		return "", fmt.Errorf("perplexity returned no choices")
	}
	return payload.Choices[0].Message.Content, nil
}
