package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type completion struct {
	content          string
	promptTokens     int64
	completionTokens int64
}

type ollamaRequest struct {
	Model    string         `json:"model"`
	Stream   bool           `json:"stream"`
	Messages []message      `json:"messages"`
	Options  map[string]any `json:"options,omitempty"`
}

type ollamaResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
	PromptEvalCount int64  `json:"prompt_eval_count"`
	EvalCount       int64  `json:"eval_count"`
	Error           string `json:"error"`
}

type openAIRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int64 `json:"prompt_tokens"`
		CompletionTokens int64 `json:"completion_tokens"`
	} `json:"usage"`
}

type openAIErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (d *DecisionMaker) complete(ctx context.Context, messages []message) (completion, error) {
	switch d.cfg.Dialect {
	case DialectOpenAI:
		return d.completeOpenAI(ctx, messages)
	default:
		return d.completeOllama(ctx, messages)
	}
}

func (d *DecisionMaker) completeOllama(ctx context.Context, messages []message) (completion, error) {
	payload := ollamaRequest{
		Model:    d.cfg.Model,
		Stream:   false,
		Messages: messages,
		Options:  map[string]any{"temperature": d.cfg.Temperature},
	}

	body, err := d.post(ctx, "/api/chat", payload, "")
	if err != nil {
		return completion{}, err
	}

	var parsed ollamaResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return completion{}, fmt.Errorf("decode ollama response: %w", err)
	}
	if parsed.Error != "" {
		return completion{}, fmt.Errorf("ollama: %s", parsed.Error)
	}

	return completion{
		content:          parsed.Message.Content,
		promptTokens:     parsed.PromptEvalCount,
		completionTokens: parsed.EvalCount,
	}, nil
}

func (d *DecisionMaker) completeOpenAI(ctx context.Context, messages []message) (completion, error) {
	apiKey, err := d.apiKey(ctx)
	if err != nil {
		return completion{}, err
	}

	payload := openAIRequest{
		Model:       d.cfg.Model,
		Messages:    messages,
		Temperature: d.cfg.Temperature,
	}

	body, err := d.post(ctx, "/chat/completions", payload, apiKey)
	if err != nil {
		return completion{}, err
	}

	var parsed openAIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return completion{}, fmt.Errorf("decode chat completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return completion{}, fmt.Errorf("chat completion response has no choices")
	}

	return completion{
		content:          parsed.Choices[0].Message.Content,
		promptTokens:     parsed.Usage.PromptTokens,
		completionTokens: parsed.Usage.CompletionTokens,
	}, nil
}

func (d *DecisionMaker) post(ctx context.Context, path string, payload any, bearer string) ([]byte, error) {
	endpoint, err := buildURL(d.cfg.BaseURL, path)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode chat request: %w", err)
	}

	requestCtx, cancel := context.WithTimeout(ctx, d.cfg.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send chat request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read chat response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("chat request failed: http %d: %s", resp.StatusCode, describeError(body))
	}

	return body, nil
}

func describeError(body []byte) string {
	var parsed openAIErrorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}

	var ollama ollamaResponse
	if err := json.Unmarshal(body, &ollama); err == nil && ollama.Error != "" {
		return ollama.Error
	}

	text := strings.TrimSpace(string(body))
	if len(text) > 240 {
		text = text[:240] + "..."
	}
	if text == "" {
		return "empty response body"
	}
	return text
}

func buildURL(baseURL, path string) (string, error) {
	base, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return "", fmt.Errorf("parse llm base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("llm base url %q must be absolute", baseURL)
	}

	base.Path = strings.TrimRight(base.Path, "/") + path
	return base.String(), nil
}
