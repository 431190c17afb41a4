package ai

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

type OllamaClient struct {
	client *openai.Client
}

// NewOllamaClient ходит в OpenAI-совместимый эндпоинт Ollama (/v1)
func NewOllamaClient() *OllamaClient {
	baseURL := os.Getenv("OLLAMA_URL")
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}

	cfg := openai.DefaultConfig("ollama") // ключ Ollama не проверяет, но клиент его требует
	cfg.BaseURL = strings.TrimRight(baseURL, "/") + "/v1"
	cfg.HTTPClient = &http.Client{Timeout: 120 * time.Second}

	return &OllamaClient{
		client: openai.NewClientWithConfig(cfg),
	}
}

func (c *OllamaClient) Generate(ctx context.Context, messages []openai.ChatCompletionMessage, model string, maxTokens int) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
	}
	if maxTokens > 0 {
		req.MaxTokens = maxTokens
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
