package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/QUATTROMKT/info-sistema/internal/config"
	"github.com/pkg/errors"
)

type Client interface {
	ChatCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Configured() bool
}

type OpenAIClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &OpenAIClient{
		httpClient: &http.Client{
			Timeout: 60 * time.Second, // geração de texto pode demorar
		},
		config: cfg,
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
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (c *OpenAIClient) Configured() bool {
	return c.config.OpenAI.APIKey != ""
}

// ChatCompletion envia um par system/user para o modelo configurado e
// devolve o texto da primeira escolha.
func (c *OpenAIClient) ChatCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !c.Configured() {
		return "", errors.New("openai api key not configured")
	}

	payload := chatRequest{
		Model: c.config.OpenAI.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.7,
		MaxTokens:   1000,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/chat/completions", c.config.OpenAI.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.OpenAI.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to call openai")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", errors.Wrap(err, "failed to decode openai response")
	}

	if parsed.Error != nil {
		return "", errors.Errorf("openai error: %s", parsed.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("openai returned status %d", resp.StatusCode)
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
