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
)

var ErrModelNotFound = errors.New("model not available")

type OllamaClient struct {
	baseURL     string
	model       string
	temperature float64
	httpClient  *http.Client
}

// NewOllamaClient creates a client for a local Ollama server
func NewOllamaClient(baseURL, model string, timeout time.Duration) *OllamaClient {
	return &OllamaClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		model:       model,
		temperature: 0.3, // low temperature for consistency
		httpClient:  &http.Client{Timeout: timeout},
	}
}

func (c *OllamaClient) Model() string {
	return c.model
}

type ollamaChatRequest struct {
	Model    string         `json:"model"`
	Messages []Message      `json:"messages"`
	Stream   bool           `json:"stream"`
	Options  map[string]any `json:"options,omitempty"`
}

type ollamaChatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
	Error string `json:"error,omitempty"`
}

type ollamaTagsResponse struct {
	Models []struct {
		Name  string `json:"name"`
		Model string `json:"model"`
	} `json:"models"`
}

// Chat sends one non-streaming chat request
func (c *OllamaClient) Chat(ctx context.Context, messages []Message) (string, error) {
	reqBody := ollamaChatRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   false,
		Options:  map[string]any{"temperature": c.temperature},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal ollama request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	bodyBytes, status, err := c.do(req)
	if err != nil {
		return "", err
	}

	var chatResp ollamaChatResponse
	if jsonErr := json.Unmarshal(bodyBytes, &chatResp); jsonErr != nil && status == http.StatusOK {
		return "", fmt.Errorf("failed to decode response: %w", jsonErr)
	}
	if chatResp.Error != "" {
		return "", fmt.Errorf("ollama error (status %d): %s", status, chatResp.Error)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("ollama returned status %d: %s", status, string(bodyBytes))
	}

	content := strings.TrimSpace(chatResp.Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty reply from model %s", c.model)
	}
	return content, nil
}

// CheckModel verifies the server is up and the configured model is pulled
func (c *OllamaClient) CheckModel(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}

	bodyBytes, status, err := c.do(req)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("ollama returned status %d: %s", status, string(bodyBytes))
	}

	var tags ollamaTagsResponse
	if err := json.Unmarshal(bodyBytes, &tags); err != nil {
		return fmt.Errorf("failed to decode model list: %w", err)
	}

	available := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		name := m.Name
		if name == "" {
			name = m.Model
		}
		if sameModel(name, c.model) {
			return nil
		}
		available = append(available, name)
	}
	return fmt.Errorf("%w: %s (available: %s)", ErrModelNotFound, c.model, strings.Join(available, ", "))
}

func (c *OllamaClient) do(req *http.Request) ([]byte, int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}
	return bodyBytes, resp.StatusCode, nil
}

// sameModel treats "llama3" and "llama3:latest" as the same model
func sameModel(a, b string) bool {
	return withTag(a) == withTag(b)
}

func withTag(name string) string {
	if strings.Contains(name, ":") {
		return name
	}
	return name + ":latest"
}
