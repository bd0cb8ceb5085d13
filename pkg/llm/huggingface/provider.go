package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ai-chartgen-be/pkg/llm"
)

const defaultRouterURL = "https://router.huggingface.co/v1"

// Provider speaks the OpenAI-compatible chat API exposed by the Hugging Face
// inference router.
type Provider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

var _ llm.LLMProvider = &Provider{}

func NewHuggingFaceProvider(apiKey, baseURL, model string) *Provider {
	if baseURL == "" {
		baseURL = defaultRouterURL
	}
	return &Provider{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []llm.Message `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	opts := &llm.Options{
		Model:       p.model,
		MaxTokens:   4096,
		Temperature: 0.2,
	}
	for _, o := range options {
		o(opts)
	}

	payload, err := json.Marshal(completionRequest{
		Model:       opts.Model,
		Messages:    history,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal huggingface request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create huggingface request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("huggingface request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read huggingface response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &llm.StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	var res completionResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return "", fmt.Errorf("unmarshal huggingface response: %w", err)
	}
	if res.Error != nil {
		return "", fmt.Errorf("huggingface api error: %s", res.Error.Message)
	}
	if len(res.Choices) == 0 {
		return "", llm.ErrEmptyResult
	}

	choice := res.Choices[0]
	if choice.FinishReason == "content_filter" {
		return "", llm.ErrSafetyBlocked
	}

	content := strings.TrimSpace(choice.Message.Content)
	if content == "" {
		return "", llm.ErrEmptyResult
	}
	return content, nil
}

func (p *Provider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}
